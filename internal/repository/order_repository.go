package repository

import (
	"time"

	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	// GetByIDWithItems loads the order with its items and their
	// customization rows in one explicit fetch.
	GetByIDWithItems(id uint) (*models.Order, error)
	GetAll(status, orderType string) ([]models.Order, error)
	Update(order *models.Order) error
	GetPaidByDateRange(start, end time.Time) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("OrderItems.Customizations").Preload("OrderItems").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(status, orderType string) ([]models.Order, error) {
	var orders []models.Order
	query := r.db
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}
	err := query.Order("order_time desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) GetPaidByDateRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("status = ?", string(models.OrderPaid)).
		Where("order_time BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	return orders, err
}
