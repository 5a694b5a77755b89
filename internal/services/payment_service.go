package services

import (
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

type PaymentService interface {
	ProcessPayment(orderID uint, paymentMethod string, amount, tipAmount float64) (*models.Payment, error)
	GetPayment(id uint) (*models.Payment, error)
	GetPaymentsForOrder(orderID uint) ([]models.Payment, error)
}

type paymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	tableRepo   repository.TableRepository
}

func NewPaymentService(db *gorm.DB, paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, tableRepo repository.TableRepository) PaymentService {
	return &paymentService{
		db:          db,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
	}
}

func (s *paymentService) ProcessPayment(orderID uint, paymentMethod string, amount, tipAmount float64) (*models.Payment, error) {
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}
	if amount <= 0 || tipAmount < 0 {
		return nil, fmt.Errorf("%w: payment amounts must be positive", ErrInvalidInput)
	}

	var payment *models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return translateNotFound(err)
		}
		// Payment closes the order from any live state; a settled or
		// cancelled order cannot be paid again.
		if order.Status == string(models.OrderPaid) || order.Status == string(models.OrderCancelled) {
			return fmt.Errorf("%w: order %d is already %s", ErrInvalidInput, order.ID, order.Status)
		}

		payment = &models.Payment{
			OrderID:       order.ID,
			PaymentTime:   time.Now(),
			PaymentMethod: paymentMethod,
			Amount:        amount,
			TipAmount:     tipAmount,
			Status:        string(models.PaymentCompleted),
		}
		if err := s.paymentRepo.WithTx(tx).Create(payment); err != nil {
			return err
		}

		order.Status = string(models.OrderPaid)
		if err := orderRepo.Update(order); err != nil {
			return err
		}

		if order.OrderType == string(models.OrderDineIn) && order.TableID != nil {
			return s.tableRepo.WithTx(tx).SetStatus(*order.TableID, string(models.TableAvailable))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return payment, nil
}

func (s *paymentService) GetPaymentsForOrder(orderID uint) ([]models.Payment, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.paymentRepo.GetByOrderID(orderID)
}
