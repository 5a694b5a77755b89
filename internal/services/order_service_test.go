package services

import (
	"errors"
	"testing"

	"restaurant_manager/internal/models"
)

func TestCreateOrderDineInRequiresTable(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")

	_, err := env.orders.CreateOrder("dine-in", employee.ID, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateOrderTakeoutRejectsTable(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	table := env.createTable(t, 1, 4)

	_, err := env.orders.CreateOrder("takeout", employee.ID, &table.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateOrderUnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.CreateOrder("drive-thru", 1, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateOrderStartsEmpty(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")

	order, err := env.orders.CreateOrder("takeout", employee.ID, nil)
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if order.Status != string(models.OrderNew) {
		t.Errorf("expected status new, got %s", order.Status)
	}
	if order.Subtotal != 0 || order.Tax != 0 || order.Total != 0 {
		t.Errorf("expected zero totals, got subtotal=%v tax=%v total=%v", order.Subtotal, order.Tax, order.Total)
	}
}

func TestOrderTotalsInvariant(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	espresso := env.createMenuItem(t, "Espresso", 3.00)

	order, err := env.orders.CreateOrder("takeout", employee.ID, nil)
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	if _, err := env.orders.AddItemToOrder(order.ID, burger.ID, 2, ""); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}
	if _, err := env.orders.AddItemToOrder(order.ID, espresso.ID, 1, "extra hot"); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}

	got, err := env.orders.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("GetOrder returned error: %v", err)
	}

	wantSubtotal := 12.50*2 + 3.00
	if !almostEqual(got.Subtotal, wantSubtotal) {
		t.Errorf("subtotal = %v, want %v", got.Subtotal, wantSubtotal)
	}
	if !almostEqual(got.Tax, wantSubtotal*testTaxRate) {
		t.Errorf("tax = %v, want %v", got.Tax, wantSubtotal*testTaxRate)
	}
	if !almostEqual(got.Total, got.Subtotal+got.Tax) {
		t.Errorf("total = %v, want subtotal+tax = %v", got.Total, got.Subtotal+got.Tax)
	}
}

func TestAddItemSnapshotsMenuPrice(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	if _, err := env.orders.AddItemToOrder(order.ID, burger.ID, 1, ""); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}

	// A later menu price change must not touch placed items.
	newPrice := 99.00
	if _, err := env.menu.UpdateMenuItem(burger.ID, MenuItemUpdate{Price: &newPrice}); err != nil {
		t.Fatalf("UpdateMenuItem returned error: %v", err)
	}

	got, _ := env.orders.GetOrder(order.ID)
	if !almostEqual(got.Subtotal, 12.50) {
		t.Errorf("subtotal = %v, want 12.50 (snapshot price)", got.Subtotal)
	}
}

func TestAddItemToMissingOrder(t *testing.T) {
	env := newTestEnv(t)
	burger := env.createMenuItem(t, "Burger", 12.50)

	_, err := env.orders.AddItemToOrder(9999, burger.ID, 1, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddMissingMenuItem(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)

	_, err := env.orders.AddItemToOrder(order.ID, 9999, 1, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddCustomizationAddsPrice(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	cheese, err := env.menu.AddCustomizationOption(burger.ID, "Extra Cheese", 1.50)
	if err != nil {
		t.Fatalf("AddCustomizationOption returned error: %v", err)
	}

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	orderItem, _ := env.orders.AddItemToOrder(order.ID, burger.ID, 2, "")

	if _, err := env.orders.AddCustomizationToOrderItem(orderItem.ID, cheese.ID); err != nil {
		t.Fatalf("AddCustomizationToOrderItem returned error: %v", err)
	}

	got, _ := env.orders.GetOrder(order.ID)
	wantSubtotal := (12.50 + 1.50) * 2
	if !almostEqual(got.Subtotal, wantSubtotal) {
		t.Errorf("subtotal = %v, want %v", got.Subtotal, wantSubtotal)
	}
}

func TestAddCustomizationTwiceChargesTwice(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	cheese, _ := env.menu.AddCustomizationOption(burger.ID, "Extra Cheese", 1.50)

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	orderItem, _ := env.orders.AddItemToOrder(order.ID, burger.ID, 1, "")

	for i := 0; i < 2; i++ {
		if _, err := env.orders.AddCustomizationToOrderItem(orderItem.ID, cheese.ID); err != nil {
			t.Fatalf("AddCustomizationToOrderItem returned error: %v", err)
		}
	}

	got, _ := env.orders.GetOrder(order.ID)
	if !almostEqual(got.Subtotal, 12.50+1.50+1.50) {
		t.Errorf("subtotal = %v, want %v", got.Subtotal, 12.50+1.50+1.50)
	}
	if len(got.OrderItems) != 1 || len(got.OrderItems[0].Customizations) != 2 {
		t.Errorf("expected one item with two customization rows, got %+v", got.OrderItems)
	}
}

func TestAddCustomizationMissingSides(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	cheese, _ := env.menu.AddCustomizationOption(burger.ID, "Extra Cheese", 1.50)
	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	orderItem, _ := env.orders.AddItemToOrder(order.ID, burger.ID, 1, "")

	if _, err := env.orders.AddCustomizationToOrderItem(9999, cheese.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing order item: expected ErrNotFound, got %v", err)
	}
	if _, err := env.orders.AddCustomizationToOrderItem(orderItem.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing customization: expected ErrNotFound, got %v", err)
	}
}

func TestPreparingDecrementsInventoryOnce(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	beef := env.createInventoryItem(t, "Ground Beef", 10)
	if _, err := env.inventory.LinkMenuItemToInventory(burger.ID, beef.ID, 0.3); err != nil {
		t.Fatalf("LinkMenuItemToInventory returned error: %v", err)
	}

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	if _, err := env.orders.AddItemToOrder(order.ID, burger.ID, 2, ""); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}

	if _, err := env.orders.UpdateOrderStatus(order.ID, "preparing"); err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if got := env.inventoryQuantity(t, beef.ID); !almostEqual(got, 10-0.6) {
		t.Errorf("inventory = %v, want %v", got, 10-0.6)
	}

	// Re-entering preparing is not a legal transition, so the decrement
	// cannot fire twice.
	if _, err := env.orders.UpdateOrderStatus(order.ID, "preparing"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on repeated preparing, got %v", err)
	}
	if got := env.inventoryQuantity(t, beef.ID); !almostEqual(got, 10-0.6) {
		t.Errorf("inventory after repeat = %v, want unchanged %v", got, 10-0.6)
	}
}

func TestInsufficientStockRollsBackAllDecrements(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")
	burger := env.createMenuItem(t, "Burger", 12.50)
	beef := env.createInventoryItem(t, "Ground Beef", 10)
	buns := env.createInventoryItem(t, "Buns", 1)
	env.inventory.LinkMenuItemToInventory(burger.ID, beef.ID, 0.2)
	env.inventory.LinkMenuItemToInventory(burger.ID, buns.ID, 1)

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)
	if _, err := env.orders.AddItemToOrder(order.ID, burger.ID, 3, ""); err != nil {
		t.Fatalf("AddItemToOrder returned error: %v", err)
	}

	_, err := env.orders.UpdateOrderStatus(order.ID, "preparing")
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Neither ingredient may have been consumed, and the order stays new.
	if got := env.inventoryQuantity(t, beef.ID); !almostEqual(got, 10) {
		t.Errorf("beef = %v, want untouched 10", got)
	}
	if got := env.inventoryQuantity(t, buns.ID); !almostEqual(got, 1) {
		t.Errorf("buns = %v, want untouched 1", got)
	}
	got, _ := env.orders.GetOrder(order.ID)
	if got.Status != string(models.OrderNew) {
		t.Errorf("order status = %s, want new", got.Status)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	employee := env.createEmployee(t, "James")

	order, _ := env.orders.CreateOrder("takeout", employee.ID, nil)

	if _, err := env.orders.UpdateOrderStatus(order.ID, "served"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("new->served: expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(order.ID, "preparing"); err != nil {
		t.Fatalf("new->preparing: %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(order.ID, "served"); err != nil {
		t.Fatalf("preparing->served: %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(order.ID, "cancelled"); err != nil {
		t.Fatalf("served->cancelled: %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(order.ID, "new"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("cancelled is terminal: expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(order.ID, "eaten"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown status: expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.orders.UpdateOrderStatus(9999, "preparing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing order: expected ErrNotFound, got %v", err)
	}
}
