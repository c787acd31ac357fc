package sku

import (
	"fmt"
	"strings"
	"time"
)

// Generate builds a human-readable unique SKU from the product category and
// size: the first 3 letters of each category word uppercased and joined with
// dashes, the size abbreviation (UNI for sizeless items), and the last four
// digits of the current unix-millis timestamp for uniqueness.
// Example: category "clothing" sized "M" -> "CLO-M-4821".
func Generate(category, size string) string {
	words := strings.Fields(category)
	abbrs := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 3 {
			w = w[:3]
		}
		abbrs = append(abbrs, strings.ToUpper(w))
	}
	catAbbr := strings.Join(abbrs, "-")

	sizeAbbr := strings.ToUpper(size)
	if size == "" || strings.EqualFold(size, "Universal") {
		sizeAbbr = "UNI"
	}

	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	suffix := millis[len(millis)-4:]

	return fmt.Sprintf("%s-%s-%s", catAbbr, sizeAbbr, suffix)
}
