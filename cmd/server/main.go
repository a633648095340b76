package main

import (
	"log"
	"time"

	"utibu_health/internal/cache"
	"utibu_health/internal/config"
	"utibu_health/internal/database"
	"utibu_health/internal/handlers"
	"utibu_health/internal/repository"
	"utibu_health/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize the cart-view cache; the API works without it
	var cartCache services.CartViewCache
	if cacheClient, err := cache.Initialize(cfg.RedisURL); err != nil {
		log.Printf("Warning: cart cache disabled: %v", err)
	} else {
		cartCache = cacheClient
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	statementRepo := repository.NewStatementRepository(db)
	cartRepo := repository.NewCartItemRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	authService := services.NewAuthService(customerRepo, cfg.JWTSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	medicationService := services.NewMedicationService(medicationRepo, cartRepo, cartCache)
	orderService := services.NewOrderService(orderRepo)
	orderItemService := services.NewOrderItemService(orderItemRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	statementService := services.NewStatementService(statementRepo)
	cartService := services.NewCartService(cartRepo, customerRepo, medicationRepo, cartCache, time.Duration(cfg.CacheTTL)*time.Second)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, customerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	medicationHandler := handlers.NewMedicationHandler(medicationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	orderItemHandler := handlers.NewOrderItemHandler(orderItemService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	statementHandler := handlers.NewStatementHandler(statementService)
	cartHandler := handlers.NewCartHandler(cartService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.Default())

	router.POST("/customers", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/customers", customerHandler.ListCustomers)
	router.GET("/customers/:id", customerHandler.GetCustomer)
	router.PATCH("/customers/:id", customerHandler.UpdateCustomer)
	router.DELETE("/customers/:id", customerHandler.DeleteCustomer)

	router.POST("/medications", medicationHandler.CreateMedication)
	router.GET("/medications", medicationHandler.ListMedications)
	router.GET("/medications/:id", medicationHandler.GetMedication)
	router.PUT("/medications/:id", medicationHandler.UpdateMedication)
	router.DELETE("/medications/:id", medicationHandler.DeleteMedication)

	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.PUT("/orders/:id", orderHandler.UpdateOrder)
	router.DELETE("/orders/:id", orderHandler.DeleteOrder)

	router.POST("/order_items", orderItemHandler.CreateOrderItem)
	router.GET("/order_items", orderItemHandler.ListOrderItems)
	router.GET("/order_items/:id", orderItemHandler.GetOrderItem)
	router.PUT("/order_items/:id", orderItemHandler.UpdateOrderItem)
	router.DELETE("/order_items/:id", orderItemHandler.DeleteOrderItem)

	router.POST("/payments", paymentHandler.CreatePayment)
	router.GET("/payments", paymentHandler.ListPayments)
	router.GET("/payments/:id", paymentHandler.GetPayment)
	router.PUT("/payments/:id", paymentHandler.UpdatePayment)
	router.DELETE("/payments/:id", paymentHandler.DeletePayment)

	router.POST("/statements", statementHandler.CreateStatement)
	router.GET("/statements", statementHandler.ListStatements)
	router.GET("/statements/:id", statementHandler.GetStatement)
	router.PUT("/statements/:id", statementHandler.UpdateStatement)
	router.DELETE("/statements/:id", statementHandler.DeleteStatement)

	router.POST("/cart", cartHandler.AddToCart)
	router.GET("/cart", cartHandler.ListCartItems)
	router.GET("/cart/:id", cartHandler.GetCartItem)
	router.PUT("/cart/:id", cartHandler.UpdateCartItem)
	router.DELETE("/cart/:id", cartHandler.RemoveFromCart)
	router.GET("/cartitems/:customerId", cartHandler.GetCartForCustomer)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
