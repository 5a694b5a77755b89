package services

import (
	"errors"
	"testing"

	"restaurant_manager/internal/models"
)

func TestProcessPaymentClosesDineInOrder(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	table := env.createTable(t, 1, 4)
	if _, err := env.tables.UpdateTableStatus(table.ID, string(models.TableOccupied)); err != nil {
		t.Fatalf("UpdateTableStatus returned error: %v", err)
	}
	burger := env.createMenuItem(t, "Burger", 12.50)

	order, err := env.orders.CreateOrder("dine-in", employee.ID, &table.ID)
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if _, err := env.orders.AddItemToOrder(order.ID, burger.ID, 1, ""); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}

	payment, err := env.payments.ProcessPayment(order.ID, "credit", 13.53, 2.00)
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if payment.Status != string(models.PaymentCompleted) {
		t.Errorf("payment status = %s, want completed", payment.Status)
	}

	got, _ := env.orders.GetOrder(order.ID)
	if got.Status != string(models.OrderPaid) {
		t.Errorf("order status = %s, want paid", got.Status)
	}
	if status := env.tableStatus(t, table.ID); status != string(models.TableAvailable) {
		t.Errorf("table status = %s, want available", status)
	}
}

func TestProcessPaymentTakeoutLeavesTablesAlone(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	table := env.createTable(t, 1, 4)
	env.tables.UpdateTableStatus(table.ID, string(models.TableOccupied))

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	if _, err := env.payments.ProcessPayment(order.ID, "cash", 10.00, 0); err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if status := env.tableStatus(t, table.ID); status != string(models.TableOccupied) {
		t.Errorf("table status = %s, want untouched occupied", status)
	}
}

func TestProcessPaymentMissingOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.ProcessPayment(9999, "cash", 10.00, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProcessPaymentValidation(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)

	if _, err := env.payments.ProcessPayment(order.ID, "", 10.00, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing method: expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.payments.ProcessPayment(order.ID, "cash", 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero amount: expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.payments.ProcessPayment(order.ID, "cash", 10.00, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative tip: expected ErrInvalidInput, got %v", err)
	}
}

func TestProcessPaymentRejectsSettledOrder(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)

	if _, err := env.payments.ProcessPayment(order.ID, "cash", 10.00, 0); err != nil {
		t.Fatalf("first payment returned error: %v", err)
	}
	if _, err := env.payments.ProcessPayment(order.ID, "cash", 10.00, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("second payment: expected ErrInvalidInput, got %v", err)
	}
}

func TestGetPaymentsForOrder(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	payment, _ := env.payments.ProcessPayment(order.ID, "cash", 10.00, 1.50)

	payments, err := env.payments.GetPaymentsForOrder(order.ID)
	if err != nil {
		t.Fatalf("GetPaymentsForOrder returned error: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != payment.ID {
		t.Errorf("expected the recorded payment, got %+v", payments)
	}

	if _, err := env.payments.GetPaymentsForOrder(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing order: expected ErrNotFound, got %v", err)
	}

	got, err := env.payments.GetPayment(payment.ID)
	if err != nil {
		t.Fatalf("GetPayment returned error: %v", err)
	}
	if got.TipAmount != 1.50 {
		t.Errorf("tip = %v, want 1.50", got.TipAmount)
	}
}
