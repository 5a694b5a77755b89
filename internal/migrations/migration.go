package migrations

import (
	"log"

	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds default data on first run.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Table{},
		&models.Reservation{},
		&models.MenuItem{},
		&models.MenuItemCustomization{},
		&models.RecipeRequirement{},
		&models.InventoryItem{},
		&models.Employee{},
		&models.Shift{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemCustomization{},
		&models.Payment{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedDefaultData populates an empty database with a starter floor plan,
// menu and pantry so the API is usable out of the box.
func seedDefaultData(db *gorm.DB) error {
	var tableCount int64
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount > 0 {
		return nil
	}

	log.Println("Seeding default data...")

	tables := []models.Table{
		{TableNumber: 1, Capacity: 2, Section: "main", Status: string(models.TableAvailable), IsActive: true},
		{TableNumber: 2, Capacity: 2, Section: "main", Status: string(models.TableAvailable), IsActive: true},
		{TableNumber: 3, Capacity: 4, Section: "main", Status: string(models.TableAvailable), IsActive: true},
		{TableNumber: 4, Capacity: 4, Section: "patio", Status: string(models.TableAvailable), IsActive: true},
		{TableNumber: 5, Capacity: 6, Section: "patio", Status: string(models.TableAvailable), IsActive: true},
		{TableNumber: 6, Capacity: 8, Section: "private", Status: string(models.TableAvailable), IsActive: true},
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	employees := []models.Employee{
		{Name: "Maria Lopez", Role: "manager", ContactInfo: "maria@example.com", IsActive: true},
		{Name: "James Chen", Role: "server", ContactInfo: "james@example.com", IsActive: true},
		{Name: "Aisha Yusuf", Role: "chef", ContactInfo: "aisha@example.com", IsActive: true},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	inventory := []models.InventoryItem{
		{Name: "Ground Beef", Quantity: 40, Unit: "kg", CostPerUnit: 9.50, MinThreshold: 5},
		{Name: "Burger Buns", Quantity: 120, Unit: "pcs", CostPerUnit: 0.40, MinThreshold: 24},
		{Name: "Cheddar Cheese", Quantity: 15, Unit: "kg", CostPerUnit: 7.20, MinThreshold: 2},
		{Name: "Romaine Lettuce", Quantity: 20, Unit: "kg", CostPerUnit: 3.10, MinThreshold: 3},
		{Name: "Espresso Beans", Quantity: 10, Unit: "kg", CostPerUnit: 18.00, MinThreshold: 2},
	}
	if err := db.Create(&inventory).Error; err != nil {
		return err
	}

	burger := models.MenuItem{
		Name: "Classic Burger", Description: "Beef patty with lettuce on a toasted bun",
		Price: 12.50, Category: "mains", PrepTimeMinutes: 15, IsAvailable: true,
	}
	salad := models.MenuItem{
		Name: "Caesar Salad", Description: "Romaine, parmesan, house dressing",
		Price: 9.00, Category: "starters", PrepTimeMinutes: 10, IsAvailable: true,
	}
	espresso := models.MenuItem{
		Name: "Espresso", Price: 3.00, Category: "drinks", PrepTimeMinutes: 5, IsAvailable: true,
	}
	for _, item := range []*models.MenuItem{&burger, &salad, &espresso} {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}

	customizations := []models.MenuItemCustomization{
		{MenuItemID: burger.ID, Name: "Extra Cheese", Price: 1.50, IsActive: true},
		{MenuItemID: burger.ID, Name: "Double Patty", Price: 4.00, IsActive: true},
		{MenuItemID: salad.ID, Name: "Add Chicken", Price: 3.50, IsActive: true},
	}
	if err := db.Create(&customizations).Error; err != nil {
		return err
	}

	requirements := []models.RecipeRequirement{
		{MenuItemID: burger.ID, InventoryItemID: inventory[0].ID, Quantity: 0.20},
		{MenuItemID: burger.ID, InventoryItemID: inventory[1].ID, Quantity: 1},
		{MenuItemID: burger.ID, InventoryItemID: inventory[2].ID, Quantity: 0.05},
		{MenuItemID: salad.ID, InventoryItemID: inventory[3].ID, Quantity: 0.15},
		{MenuItemID: espresso.ID, InventoryItemID: inventory[4].ID, Quantity: 0.02},
	}
	if err := db.Create(&requirements).Error; err != nil {
		return err
	}

	log.Println("Default data created successfully!")
	return nil
}
