package services

import (
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(orderType string, employeeID uint, tableID *uint) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetOrders(status, orderType string) ([]models.Order, error)
	AddItemToOrder(orderID, menuItemID uint, quantity int, specialInstructions string) (*models.OrderItem, error)
	AddCustomizationToOrderItem(orderItemID, customizationID uint) (*models.OrderItemCustomization, error)
	UpdateOrderStatus(orderID uint, status string) (*models.Order, error)
	GetSalesSummary(start, end time.Time) (*SalesSummary, error)
}

// SalesSummary aggregates paid orders over a date range.
type SalesSummary struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	OrderCount   int       `json:"order_count"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalTax     float64   `json:"total_tax"`
}

type orderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuRepo      repository.MenuRepository
	inventoryRepo repository.InventoryRepository
	taxRate       float64
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	menuRepo repository.MenuRepository,
	inventoryRepo repository.InventoryRepository,
	taxRate float64,
) OrderService {
	return &orderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		taxRate:       taxRate,
	}
}

func (s *orderService) CreateOrder(orderType string, employeeID uint, tableID *uint) (*models.Order, error) {
	if !models.ValidOrderType(orderType) {
		return nil, fmt.Errorf("%w: unknown order type %q", ErrInvalidInput, orderType)
	}
	if orderType == string(models.OrderDineIn) && tableID == nil {
		return nil, fmt.Errorf("%w: dine-in order requires a table", ErrInvalidInput)
	}
	if orderType != string(models.OrderDineIn) && tableID != nil {
		return nil, fmt.Errorf("%w: %s order must not reference a table", ErrInvalidInput, orderType)
	}

	order := &models.Order{
		OrderTime:  time.Now(),
		OrderType:  orderType,
		TableID:    tableID,
		EmployeeID: employeeID,
		Status:     string(models.OrderNew),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithItems(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return order, nil
}

func (s *orderService) GetOrders(status, orderType string) ([]models.Order, error) {
	return s.orderRepo.GetAll(status, orderType)
}

func (s *orderService) AddItemToOrder(orderID, menuItemID uint, quantity int, specialInstructions string) (*models.OrderItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	var orderItem *models.OrderItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetByID(orderID)
		if err != nil {
			return translateNotFound(err)
		}
		menuItem, err := s.menuRepo.GetItemByID(menuItemID)
		if err != nil {
			return translateNotFound(err)
		}

		orderItem = &models.OrderItem{
			OrderID:             order.ID,
			MenuItemID:          menuItem.ID,
			Quantity:            quantity,
			SpecialInstructions: specialInstructions,
			Price:               menuItem.Price,
		}
		if err := s.orderItemRepo.WithTx(tx).Create(orderItem); err != nil {
			return err
		}
		return s.recalculateTotals(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return orderItem, nil
}

func (s *orderService) AddCustomizationToOrderItem(orderItemID, customizationID uint) (*models.OrderItemCustomization, error) {
	var applied *models.OrderItemCustomization
	err := s.db.Transaction(func(tx *gorm.DB) error {
		itemRepo := s.orderItemRepo.WithTx(tx)
		orderItem, err := itemRepo.GetByID(orderItemID)
		if err != nil {
			return translateNotFound(err)
		}
		customization, err := s.menuRepo.GetCustomizationByID(customizationID)
		if err != nil {
			return translateNotFound(err)
		}

		// Each application is a distinct row; applying the same
		// customization twice charges twice.
		applied = &models.OrderItemCustomization{
			OrderItemID:     orderItem.ID,
			CustomizationID: customization.ID,
		}
		if err := itemRepo.CreateCustomization(applied); err != nil {
			return err
		}

		orderItem.Price += customization.Price
		if err := itemRepo.Update(orderItem); err != nil {
			return err
		}

		order, err := s.orderRepo.WithTx(tx).GetByID(orderItem.OrderID)
		if err != nil {
			return err
		}
		return s.recalculateTotals(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

func (s *orderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, status)
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.orderRepo.WithTx(tx).GetByID(orderID)
		if err != nil {
			return translateNotFound(err)
		}

		from := models.OrderStatus(order.Status)
		to := models.OrderStatus(status)
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: order cannot move from %s to %s", ErrInvalidInput, from, to)
		}

		// The transition table never allows re-entering preparing, so the
		// inventory decrement fires exactly once per order.
		if to == models.OrderPreparing {
			if err := s.decrementInventoryForOrder(tx, order.ID); err != nil {
				return err
			}
		}

		order.Status = status
		return s.orderRepo.WithTx(tx).Update(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// decrementInventoryForOrder consumes recipe requirements for every item on
// the order. Each decrement is a guarded relative update; any shortfall
// aborts the enclosing transaction so no partial consumption is ever
// committed.
func (s *orderService) decrementInventoryForOrder(tx *gorm.DB, orderID uint) error {
	invRepo := s.inventoryRepo.WithTx(tx)
	orderItems, err := s.orderItemRepo.WithTx(tx).GetByOrderID(orderID)
	if err != nil {
		return err
	}

	for _, orderItem := range orderItems {
		requirements, err := invRepo.GetRequirementsByMenuItem(orderItem.MenuItemID)
		if err != nil {
			return err
		}
		for _, requirement := range requirements {
			consumed := requirement.Quantity * float64(orderItem.Quantity)
			ok, err := invRepo.AdjustQuantity(requirement.InventoryItemID, -consumed)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: inventory item %d cannot cover %.2f units",
					ErrInsufficientStock, requirement.InventoryItemID, consumed)
			}
		}
	}
	return nil
}

// recalculateTotals recomputes subtotal, tax and total from scratch off the
// current item rows; totals are never patched incrementally.
func (s *orderService) recalculateTotals(tx *gorm.DB, order *models.Order) error {
	orderItems, err := s.orderItemRepo.WithTx(tx).GetByOrderID(order.ID)
	if err != nil {
		return err
	}

	subtotal := 0.0
	for _, orderItem := range orderItems {
		subtotal += orderItem.Price * float64(orderItem.Quantity)
	}
	order.Subtotal = subtotal
	order.Tax = subtotal * s.taxRate
	order.Total = order.Subtotal + order.Tax
	return s.orderRepo.WithTx(tx).Update(order)
}

func (s *orderService) GetSalesSummary(start, end time.Time) (*SalesSummary, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}

	orders, err := s.orderRepo.GetPaidByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{StartDate: start, EndDate: end, OrderCount: len(orders)}
	for _, order := range orders {
		summary.TotalRevenue += order.Total
		summary.TotalTax += order.Tax
	}
	return summary, nil
}
