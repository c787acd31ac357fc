package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abiral12/Stock-Management-system/internal/config"
	"github.com/Abiral12/Stock-Management-system/internal/handler"
	"github.com/Abiral12/Stock-Management-system/internal/middleware"
	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/internal/service"
	"github.com/Abiral12/Stock-Management-system/internal/ws"
	"github.com/Abiral12/Stock-Management-system/pkg/database"
	"github.com/Abiral12/Stock-Management-system/pkg/jwt"
	"github.com/Abiral12/Stock-Management-system/pkg/qr"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.Connect(cfg)
	db.AutoMigrate(&model.Product{}, &model.Sale{}, &model.Admin{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.TokenTTLHours)
	qrGen := qr.NewGenerator(cfg.QRDir)

	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	adminRepo := repository.NewAdminRepo(db)

	productService := service.NewProductService(productRepo, qrGen, wsHub)
	saleService := service.NewSaleService(saleRepo, wsHub)
	authService := service.NewAuthService(adminRepo, tokens)

	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Seed default admin account
	seedAdmin(adminRepo, cfg)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Management System v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// QR label images
	app.Static("/qrcodes", cfg.QRDir)

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(tokens, adminRepo))

	// Admin profile
	protected.Put("/auth/username", authHandler.UpdateUsername)
	protected.Put("/auth/password", authHandler.UpdatePassword)

	// Dashboard
	protected.Get("/dashboard/stats", productHandler.GetDashboardStats)

	// Products
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/search", productHandler.SearchProducts)
	protected.Get("/products/filter", productHandler.FilterProducts)
	protected.Get("/products/sku/:sku", productHandler.GetProductBySKU)
	protected.Get("/products/category/:category", productHandler.GetProductsByCategory)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Sales
	protected.Post("/sales", saleHandler.CreateSale)
	protected.Get("/sales/trends", saleHandler.GetSalesTrends)
	protected.Get("/sales/compare", saleHandler.GetSalesComparison)
	protected.Get("/sales/history", saleHandler.GetSalesHistory)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist yet
func seedAdmin(adminRepo repository.AdminRepository, cfg config.Config) {
	if _, err := adminRepo.FindByUsername(cfg.AdminUsername); err == nil {
		return
	}

	admin := &model.Admin{Username: cfg.AdminUsername}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := adminRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin account: %v", err)
	} else {
		log.Printf("Admin account created: %s", cfg.AdminUsername)
	}
}
