package main

import (
	"log"
	"os"
	"time"

	"github.com/franpopo/EasyStock/internal/database"
	"github.com/franpopo/EasyStock/internal/handlers"
	"github.com/franpopo/EasyStock/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	// Only opens if we explicitly allow it in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// CASHIER & ADMIN
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/scan/:barcode", handlers.ScanProduct)
		api.POST("/checkout", handlers.ProcessSale)
		api.GET("/sales", handlers.GetSales)
		api.GET("/sales/:id/items", handlers.GetSaleItems)
		api.GET("/branches", handlers.GetBranches)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/products", handlers.AddProduct)
			admin.PUT("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeleteProduct)
			admin.POST("/products/import", handlers.ImportProducts)

			admin.DELETE("/sales/:id", handlers.DeleteSale)

			admin.POST("/branches", handlers.AddBranch)
			admin.DELETE("/branches/:id", handlers.DeleteBranch)

			admin.GET("/reports", handlers.GetSalesReport)
			admin.GET("/reports/top", handlers.GetMonthlyTop)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("EasyStock server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
