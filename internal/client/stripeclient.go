package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"textila-api/internal/apperr"
	"textila-api/internal/config"
)

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

type CheckoutSessionParams struct {
	ProductName   string
	UnitAmount    int64 // minor units
	Quantity      int64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"` // unpaid, paid, no_payment_required
	AmountTotal   int64             `json:"amount_total"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: stripeCfg.BaseApiURL,
		secretKey:  stripeCfg.SecretKey,
	}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.UnitAmount, 10))
	form.Set("line_items[0][quantity]", strconv.FormatInt(params.Quantity, 10))
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/checkout/sessions",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.doSession(req)
}

func (c *stripeClientImpl) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseApiURL, url.PathEscape(sessionID)),
		nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doSession(req)
}

func (c *stripeClientImpl) doSession(req *http.Request) (*CheckoutSession, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "stripe request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, apperr.Newf(apperr.KindUpstream, "stripe error %d: %s", resp.StatusCode, string(b))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode stripe response: %w", err)
	}

	return &session, nil
}
