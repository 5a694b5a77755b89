package services

import (
	"fmt"
	"testing"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testTaxRate = 0.0825

type testEnv struct {
	db *gorm.DB

	tableRepo     repository.TableRepository
	inventoryRepo repository.InventoryRepository

	tables       TableService
	reservations ReservationService
	menu         MenuService
	inventory    InventoryService
	employees    EmployeeService
	orders       OrderService
	payments     PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	return &testEnv{
		db:            db,
		tableRepo:     tableRepo,
		inventoryRepo: inventoryRepo,
		tables:        NewTableService(tableRepo),
		reservations:  NewReservationService(db, reservationRepo, tableRepo),
		menu:          NewMenuService(menuRepo, nil, 0),
		inventory:     NewInventoryService(inventoryRepo, menuRepo),
		employees:     NewEmployeeService(employeeRepo),
		orders:        NewOrderService(db, orderRepo, orderItemRepo, menuRepo, inventoryRepo, testTaxRate),
		payments:      NewPaymentService(db, paymentRepo, orderRepo, tableRepo),
	}
}

func (e *testEnv) createTable(t *testing.T, number, capacity int) *models.Table {
	t.Helper()
	table, err := e.tables.CreateTable(number, capacity, "main", "")
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return table
}

func (e *testEnv) createMenuItem(t *testing.T, name string, price float64) *models.MenuItem {
	t.Helper()
	item, err := e.menu.CreateMenuItem(name, "", price, "mains", 10)
	if err != nil {
		t.Fatalf("failed to create menu item: %v", err)
	}
	return item
}

func (e *testEnv) createInventoryItem(t *testing.T, name string, quantity float64) *models.InventoryItem {
	t.Helper()
	item, err := e.inventory.CreateInventoryItem(name, quantity, "kg", 1.00, 0, "")
	if err != nil {
		t.Fatalf("failed to create inventory item: %v", err)
	}
	return item
}

func (e *testEnv) createEmployee(t *testing.T, name string) *models.Employee {
	t.Helper()
	employee, err := e.employees.CreateEmployee(name, "server", "", "")
	if err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	return employee
}

func (e *testEnv) tableStatus(t *testing.T, id uint) string {
	t.Helper()
	table, err := e.tableRepo.GetByID(id)
	if err != nil {
		t.Fatalf("failed to reload table %d: %v", id, err)
	}
	return table.Status
}

func (e *testEnv) inventoryQuantity(t *testing.T, id uint) float64 {
	t.Helper()
	item, err := e.inventoryRepo.GetByID(id)
	if err != nil {
		t.Fatalf("failed to reload inventory item %d: %v", id, err)
	}
	return item.Quantity
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
