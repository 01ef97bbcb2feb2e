package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textila-api/internal/apperr"
	"textila-api/internal/client"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

type fakeStripeClient struct {
	createdParams *client.CheckoutSessionParams
	session       *client.CheckoutSession
	getCalls      int
}

func (f *fakeStripeClient) CreateCheckoutSession(_ context.Context, params *client.CheckoutSessionParams) (*client.CheckoutSession, error) {
	f.createdParams = params
	return &client.CheckoutSession{
		ID:  f.session.ID,
		URL: "https://checkout.example.com/pay/" + f.session.ID,
	}, nil
}

func (f *fakeStripeClient) GetCheckoutSession(_ context.Context, sessionID string) (*client.CheckoutSession, error) {
	f.getCalls++
	return f.session, nil
}

func newPaymentService(t *testing.T, fake *fakeStripeClient) (PaymentService, repository.OrderRepository) {
	t.Helper()
	repo := repository.NewOrderRepository(newTestDB(t))
	return NewPaymentService(fake, "https://textila.example.com", repo), repo
}

func TestCreateCheckoutSessionConvertsToMinorUnits(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{ID: "cs_test_1"}}
	svc, _ := newPaymentService(t, fake)

	url, err := svc.CreateCheckoutSession(context.Background(), &dto.CheckoutRequest{
		ProductID:   "prod-1",
		ProductName: "Denim Jacket",
		Price:       19.99,
		Quantity:    2,
		Email:       "buyer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/pay/cs_test_1", url)

	params := fake.createdParams
	require.NotNil(t, params)
	assert.Equal(t, int64(1999), params.UnitAmount, "19.99 must round to 1999, not truncate to 1998")
	assert.Equal(t, int64(2), params.Quantity)
	assert.Equal(t, "Denim Jacket", params.ProductName)
	assert.Equal(t, "prod-1", params.Metadata["productId"])
	assert.Equal(t, "2", params.Metadata["quantity"])
	assert.Equal(t, "buyer@example.com", params.Metadata["email"])
	assert.Contains(t, params.SuccessURL, "{CHECKOUT_SESSION_ID}")
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{ID: "cs_x"}}
	svc, _ := newPaymentService(t, fake)
	ctx := context.Background()

	cases := []dto.CheckoutRequest{
		{ProductID: "p", Email: "a@b.c", Price: 10, Quantity: 0},
		{ProductID: "p", Email: "a@b.c", Price: 0, Quantity: 1},
		{ProductID: "", Email: "a@b.c", Price: 10, Quantity: 1},
		{ProductID: "p", Email: "", Price: 10, Quantity: 1},
	}
	for _, req := range cases {
		_, err := svc.CreateCheckoutSession(ctx, &req)
		assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	}
	assert.Nil(t, fake.createdParams, "no remote session for rejected input")
}

func TestConfirmPaymentRejectsUnpaidSession(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{
		ID:            "cs_unpaid",
		PaymentStatus: "unpaid",
	}}
	svc, repo := newPaymentService(t, fake)

	_, err := svc.ConfirmPayment(context.Background(), "cs_unpaid")
	assert.Equal(t, apperr.KindUnprocessable, apperr.KindOf(err))

	orders, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, orders, "unpaid confirmation must write nothing")
}

func TestConfirmPaymentCreatesPaidOrder(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{
		ID:            "cs_paid",
		PaymentStatus: "paid",
		AmountTotal:   3998,
		Metadata: map[string]string{
			"productId": "prod-1",
			"quantity":  "2",
			"email":     "buyer@example.com",
		},
	}}
	svc, repo := newPaymentService(t, fake)
	ctx := context.Background()

	order, err := svc.ConfirmPayment(ctx, "cs_paid")
	require.NoError(t, err)

	assert.Equal(t, "prod-1", order.ProductID)
	assert.Equal(t, "buyer@example.com", order.Email)
	assert.Equal(t, 2, order.Quantity)
	assert.InDelta(t, 39.98, order.OrderTotal, 0.0001)
	assert.Equal(t, model.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, model.OrderPending, order.Status)
	require.NotNil(t, order.CheckoutSessionID)
	assert.Equal(t, "cs_paid", *order.CheckoutSessionID)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{
		ID:            "cs_twice",
		PaymentStatus: "paid",
		AmountTotal:   1999,
		Metadata: map[string]string{
			"productId": "prod-1",
			"quantity":  "1",
			"email":     "buyer@example.com",
		},
	}}
	svc, repo := newPaymentService(t, fake)
	ctx := context.Background()

	first, err := svc.ConfirmPayment(ctx, "cs_twice")
	require.NoError(t, err)

	second, err := svc.ConfirmPayment(ctx, "cs_twice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, fake.getCalls, "second confirmation must short-circuit before the remote call")

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1, "confirming the same session twice must not create a second order")
}

func TestConfirmPaymentFallsBackToSessionEmail(t *testing.T) {
	fake := &fakeStripeClient{session: &client.CheckoutSession{
		ID:            "cs_email",
		PaymentStatus: "paid",
		AmountTotal:   500,
		CustomerEmail: "fallback@example.com",
		Metadata: map[string]string{
			"productId": "prod-9",
			"quantity":  "1",
		},
	}}
	svc, _ := newPaymentService(t, fake)

	order, err := svc.ConfirmPayment(context.Background(), "cs_email")
	require.NoError(t, err)
	assert.Equal(t, "fallback@example.com", order.Email)
}
