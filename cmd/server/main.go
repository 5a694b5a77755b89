package main

import (
	"log"
	"time"

	"restaurant_manager/internal/config"
	"restaurant_manager/internal/database"
	"restaurant_manager/internal/handlers"
	"restaurant_manager/internal/migrations"
	"restaurant_manager/internal/redis"
	"restaurant_manager/internal/repository"
	"restaurant_manager/internal/services"

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

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	tableService := services.NewTableService(tableRepo)
	reservationService := services.NewReservationService(db, reservationRepo, tableRepo)
	menuService := services.NewMenuService(menuRepo, redisClient, cacheTTL)
	inventoryService := services.NewInventoryService(inventoryRepo, menuRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	orderService := services.NewOrderService(db, orderRepo, orderItemRepo, menuRepo, inventoryRepo, cfg.TaxRate)
	paymentService := services.NewPaymentService(db, paymentRepo, orderRepo, tableRepo)

	// Initialize handlers
	tableHandler := handlers.NewTableHandler(tableService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	menuHandler := handlers.NewMenuHandler(menuService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Setup routes
	router := gin.Default()

	tables := router.Group("/tables")
	{
		tables.GET("", tableHandler.GetTables)
		tables.GET("/available", tableHandler.GetAvailableTables)
		tables.GET("/:table_id", tableHandler.GetTable)
		tables.POST("", tableHandler.CreateTable)
		tables.PUT("/:table_id", tableHandler.UpdateTable)
		tables.PUT("/:table_id/status", tableHandler.UpdateTableStatus)
	}

	reservations := router.Group("/reservations")
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("/:reservation_id", reservationHandler.GetReservation)
		reservations.GET("/date/:date", reservationHandler.GetReservationsByDate)
		reservations.PUT("/:reservation_id/status", reservationHandler.UpdateReservationStatus)
	}

	menu := router.Group("/menu")
	{
		menu.GET("", menuHandler.GetMenuItems)
		menu.GET("/:menu_item_id", menuHandler.GetMenuItem)
		menu.POST("", menuHandler.CreateMenuItem)
		menu.PUT("/:menu_item_id", menuHandler.UpdateMenuItem)
		menu.POST("/:menu_item_id/customizations", menuHandler.AddCustomization)
		menu.GET("/:menu_item_id/customizations", menuHandler.GetCustomizations)
	}

	inventory := router.Group("/inventory")
	{
		inventory.GET("", inventoryHandler.GetInventoryItems)
		inventory.GET("/:inventory_item_id", inventoryHandler.GetInventoryItem)
		inventory.POST("", inventoryHandler.CreateInventoryItem)
		inventory.POST("/:inventory_item_id/adjust", inventoryHandler.AdjustInventoryLevel)
		inventory.POST("/recipe-requirements", inventoryHandler.LinkMenuItem)
	}

	employees := router.Group("/employees")
	{
		employees.GET("", employeeHandler.GetEmployees)
		employees.GET("/:employee_id", employeeHandler.GetEmployee)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.PUT("/:employee_id", employeeHandler.UpdateEmployee)
		employees.POST("/:employee_id/shifts", employeeHandler.CreateShift)
		employees.GET("/:employee_id/shifts", employeeHandler.GetShifts)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PUT("/:order_id/status", orderHandler.UpdateOrderStatus)
		orders.POST("/:order_id/items", orderHandler.AddItem)
		orders.GET("/:order_id/payments", orderHandler.GetOrderPayments)
	}
	router.POST("/order-items/:order_item_id/customizations", orderHandler.AddItemCustomization)

	payments := router.Group("/payments")
	{
		payments.POST("", paymentHandler.ProcessPayment)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}

	router.GET("/reports/sales", orderHandler.GetSalesSummary)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
