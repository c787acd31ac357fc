package handler

import (
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	product, err := h.service.Create(&req)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll()
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": product})
}

func (h *ProductHandler) GetProductBySKU(c *fiber.Ctx) error {
	product, err := h.service.GetBySKU(c.Params("sku"))
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": product})
}

func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetByCategory(c.Params("category"))
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.service.Search(c.Query("query"))
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) FilterProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Size:        c.Query("size"),
		Color:       c.Query("color"),
		SortBy:      c.Query("sortBy"),
	}

	products, err := h.service.Filter(filter)
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	product, err := h.service.Update(id, &req)
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	if err := h.service.Delete(id); err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product removed"})
}

// GetDashboardStats returns the product store overview for the dashboard.
func (h *ProductHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return failFromErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}
