package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cache"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cart"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/middleware"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/routes"
)

func main() {
	log.Println("✅ Starting HomeHarmony Appliances API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Seller{},
		&models.SellerProduct{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	seedDemoOrders(db)

	redisCache := cache.New()
	cartStore := cart.NewStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimit())

	// Health check with cache status
	r.GET("/health", func(c *gin.Context) {
		health := gin.H{
			"status":  "healthy",
			"service": "homeharmony-api",
		}
		if redisCache.Available() {
			health["cache"] = "redis connected"
		} else {
			health["cache"] = "redis unavailable"
		}
		c.JSON(200, health)
	})

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:            db,
		Carts:         cartStore,
		Cache:         redisCache,
		PaymentDelay:  envDuration("PAYMENT_DELAY_MS", 2000),
		TrackInterval: envDuration("TRACK_INTERVAL_MS", 5000),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func envDuration(key string, defaultMs int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defaultMs) * time.Millisecond
}

// seedDemoOrders loads the demo order book the seller panel starts with. Only
// runs against an empty orders table.
func seedDemoOrders(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	demo := []models.Order{
		{
			ID: "ORD-1234",
			Customer: models.Customer{
				FirstName: "Sita", LastName: "Adhikari",
				Email: "sita@example.com", Phone: "+977 9841234567",
				Address: "Baneshwor, Kathmandu", City: "Kathmandu",
			},
			Items:         []models.OrderLine{{ProductID: 101, Name: "LG Refrigerator 260L", Price: 45000, Quantity: 1}},
			PaymentMethod: models.PaymentKhalti,
			Subtotal:      45000, DeliveryFee: 0, Total: 45000,
			Status: models.TrackingConfirmed, SellerStatus: models.SellerOrderPending,
			TrackingNumber: "TRK-1234", CreatedAt: day("2025-10-11"),
		},
		{
			ID: "ORD-1233",
			Customer: models.Customer{
				FirstName: "Ram", LastName: "Karki",
				Email: "ram@example.com", Phone: "+977 9851234567",
				Address: "Lalitpur-3, Patan", City: "Lalitpur",
			},
			Items:         []models.OrderLine{{ProductID: 102, Name: "Samsung Washing Machine", Price: 38500, Quantity: 1}},
			PaymentMethod: models.PaymentEsewa,
			Subtotal:      38500, DeliveryFee: 0, Total: 38500,
			Status: models.TrackingShipped, SellerStatus: models.SellerOrderShipped,
			TrackingNumber: "TRK-1233", CreatedAt: day("2025-10-10"),
		},
		{
			ID: "ORD-1232",
			Customer: models.Customer{
				FirstName: "Maya", LastName: "Thapa",
				Email: "maya@example.com", Phone: "+977 9861234567",
				Address: "Chabahil, Kathmandu", City: "Kathmandu",
			},
			Items:         []models.OrderLine{{ProductID: 103, Name: "Panasonic Microwave", Price: 12800, Quantity: 1}},
			PaymentMethod: models.PaymentCOD,
			Subtotal:      12800, DeliveryFee: 0, Total: 12800,
			Status: models.TrackingDelivered, SellerStatus: models.SellerOrderDelivered,
			TrackingNumber: "TRK-1232", CreatedAt: day("2025-10-09"),
		},
		{
			ID: "ORD-1231",
			Customer: models.Customer{
				FirstName: "Hari", LastName: "Shrestha",
				Email: "hari@example.com", Phone: "+977 9871234567",
				Address: "Bhaktapur-5", City: "Bhaktapur",
			},
			Items:         []models.OrderLine{{ProductID: 104, Name: "Daikin AC 1.5 Ton", Price: 65000, Quantity: 1}},
			PaymentMethod: models.PaymentBank,
			Subtotal:      65000, DeliveryFee: 0, Total: 65000,
			Status: models.TrackingProcessing, SellerStatus: models.SellerOrderProcessing,
			TrackingNumber: "TRK-1231", CreatedAt: day("2025-10-09"),
		},
		{
			ID: "ORD-1230",
			Customer: models.Customer{
				FirstName: "Gita", LastName: "Maharjan",
				Email: "gita@example.com", Phone: "+977 9881234567",
				Address: "Sundhara, Kathmandu", City: "Kathmandu",
			},
			Items:         []models.OrderLine{{ProductID: 105, Name: "LG Microwave 20L", Price: 11500, Quantity: 2}},
			PaymentMethod: models.PaymentIMEPay,
			Subtotal:      23000, DeliveryFee: 0, Total: 23000,
			Status: models.TrackingConfirmed, SellerStatus: models.SellerOrderPending,
			TrackingNumber: "TRK-1230", CreatedAt: day("2025-10-08"),
		},
	}

	for _, order := range demo {
		if err := db.Create(&order).Error; err != nil {
			log.Printf("❌ Failed to seed demo order %s: %v", order.ID, err)
		}
	}
	log.Printf("✅ Seeded %d demo orders", len(demo))
}
