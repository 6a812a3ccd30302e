package service

import (
	"context"
	"testing"

	"dinehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() *fakeMenu {
	return &fakeMenu{items: map[int64]domain.MenuItem{
		7:  {ID: 7, Name: "Margherita", UnitPrice: 500, Available: true},
		9:  {ID: 9, Name: "Calzone", UnitPrice: 1200, Available: true},
		13: {ID: 13, Name: "Seasonal Special", UnitPrice: 900, Available: false},
	}}
}

func newCheckout(menu *fakeMenu, orders *fakeOrders, intents *fakeIntents, gw *fakeGateway) *CheckoutService {
	return NewCheckoutService(menu, &fakeCustomers{}, orders, intents, gw, NopPublisher{})
}

func TestCheckout_CashFreezesPrices(t *testing.T) {
	menu := testMenu()
	orders := newFakeOrders()
	svc := newCheckout(menu, orders, newFakeIntents(), &fakeGateway{})

	resp, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer:      domain.CustomerInfo{Email: "ada@example.com"},
		Items:         []domain.CartItem{{ItemID: 7, Quantity: 2}, {ItemID: 9, Quantity: 1}},
		PaymentMethod: PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2200, resp.TotalAmount)
	require.NotZero(t, resp.OrderID)

	// A later catalog price change must not touch the recorded order.
	it := menu.items[7]
	it.UnitPrice = 600
	menu.items[7] = it

	view, ok, err := orders.GetByID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 2200, view.TotalAmount)
	require.Len(t, view.Lines, 2)
	assert.EqualValues(t, 500, view.Lines[0].UnitPrice)
	assert.EqualValues(t, 1200, view.Lines[1].UnitPrice)
}

func TestCheckout_UnavailableItemWritesNothing(t *testing.T) {
	orders := newFakeOrders()
	svc := newCheckout(testMenu(), orders, newFakeIntents(), &fakeGateway{})

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer: domain.CustomerInfo{Email: "ada@example.com"},
		Items:    []domain.CartItem{{ItemID: 7, Quantity: 1}, {ItemID: 13, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "13")
	assert.Empty(t, orders.orders, "no order may exist after a failed checkout")
}

func TestCheckout_UnknownItemWritesNothing(t *testing.T) {
	orders := newFakeOrders()
	svc := newCheckout(testMenu(), orders, newFakeIntents(), &fakeGateway{})

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer: domain.CustomerInfo{Email: "ada@example.com"},
		Items:    []domain.CartItem{{ItemID: 999, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "999")
	assert.Empty(t, orders.orders)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := newCheckout(testMenu(), newFakeOrders(), newFakeIntents(), &fakeGateway{})

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer: domain.CustomerInfo{Email: "ada@example.com"},
	})
	assert.True(t, domain.IsValidation(err))
}

func TestCheckout_EmailRequired(t *testing.T) {
	svc := newCheckout(testMenu(), newFakeOrders(), newFakeIntents(), &fakeGateway{})

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Items: []domain.CartItem{{ItemID: 7, Quantity: 1}},
	})
	assert.True(t, domain.IsValidation(err))
}

func TestCheckout_NonPositiveQuantity(t *testing.T) {
	svc := newCheckout(testMenu(), newFakeOrders(), newFakeIntents(), &fakeGateway{})

	for _, qty := range []int{0, -1} {
		_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
			Customer: domain.CustomerInfo{Email: "ada@example.com"},
			Items:    []domain.CartItem{{ItemID: 7, Quantity: qty}},
		})
		assert.True(t, domain.IsValidation(err), "quantity %d must be rejected", qty)
	}
}

func TestCheckout_DuplicateItemsMergeIntoOneLine(t *testing.T) {
	orders := newFakeOrders()
	svc := newCheckout(testMenu(), orders, newFakeIntents(), &fakeGateway{})

	resp, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer: domain.CustomerInfo{Email: "ada@example.com"},
		Items:    []domain.CartItem{{ItemID: 7, Quantity: 1}, {ItemID: 7, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1500, resp.TotalAmount)

	view, _, _ := orders.GetByID(context.Background(), resp.OrderID)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
}

func TestCheckout_CardCreatesIntentNotOrder(t *testing.T) {
	orders := newFakeOrders()
	intents := newFakeIntents()
	gw := &fakeGateway{intentID: "pi_42"}
	svc := newCheckout(testMenu(), orders, intents, gw)

	resp, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer:      domain.CustomerInfo{Email: "ada@example.com"},
		Items:         []domain.CartItem{{ItemID: 9, Quantity: 1}},
		PaymentMethod: PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_42", resp.IntentID)
	assert.Zero(t, resp.OrderID)
	assert.EqualValues(t, 1200, resp.TotalAmount)

	assert.Empty(t, orders.orders, "card checkout must not create an order before payment")
	saved, ok := intents.saved["pi_42"]
	require.True(t, ok, "priced snapshot must be stored under the intent id")
	assert.EqualValues(t, 1200, domain.Total(saved.Lines))
	assert.Equal(t, "1", gw.lastMeta["customer_id"])
}

func TestCheckout_GatewayFailureWritesNothing(t *testing.T) {
	orders := newFakeOrders()
	intents := newFakeIntents()
	svc := newCheckout(testMenu(), orders, intents, &fakeGateway{err: errStorage})

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Customer:      domain.CustomerInfo{Email: "ada@example.com"},
		Items:         []domain.CartItem{{ItemID: 7, Quantity: 1}},
		PaymentMethod: PaymentMethodCard,
	})
	require.Error(t, err)
	assert.Empty(t, orders.orders)
	assert.Empty(t, intents.saved)
}

func TestCheckoutWalkIn_NoCustomer(t *testing.T) {
	orders := newFakeOrders()
	svc := newCheckout(testMenu(), orders, newFakeIntents(), &fakeGateway{})

	resp, err := svc.CheckoutWalkIn(context.Background(), []domain.CartItem{{ItemID: 7, Quantity: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 1000, resp.TotalAmount)
	assert.Nil(t, orders.orders[resp.OrderID].customerID)
}
