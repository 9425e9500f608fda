package melhorenvio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/bleeshop/bleeshop-backend/pkg/errors"
)

const (
	defaultBaseURL           = "https://sandbox.melhorenvio.com.br/api/v2"
	defaultUserAgent         = "BleeShop Integration"
	calculatePath            = "me/shipment/calculate"
	errorBodyReadLimit int64 = 1024
)

var (
	errTokenRequired = errors.New("melhor envio token is required")
)

// Client wraps the Melhor Envio shipment-calculate API used for live
// carrier quotes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(userAgent)
		if trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// WithTimeout sets the timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 && c.httpClient != nil {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the Melhor Envio client given a bearer token.
func NewClient(token string, opts ...Option) (*Client, error) {
	trimmedToken := strings.TrimSpace(token)
	if trimmedToken == "" {
		return nil, errTokenRequired
	}

	client := &Client{
		token:      trimmedToken,
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client, nil
}

// Endpoint describes one side of the shipment (origin or destination).
type Endpoint struct {
	PostalCode string `json:"postal_code"`
}

// Product describes one package entry in the calculate payload.
type Product struct {
	ID             string  `json:"id"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Length         float64 `json:"length"`
	Weight         float64 `json:"weight"`
	InsuranceValue float64 `json:"insurance_value"`
	Quantity       int     `json:"quantity"`
}

// CalculateRequest is the payload sent to the shipment-calculate API.
type CalculateRequest struct {
	From     Endpoint  `json:"from"`
	To       Endpoint  `json:"to"`
	Products []Product `json:"products"`
}

// Price mirrors Melhor Envio's price field, which arrives as a string
// ("27.40") on priced offers and is absent or null on errored ones.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Price(n.String())
	return nil
}

// Float64 parses the price, reporting whether a numeric value was present.
func (p Price) Float64() (float64, bool) {
	trimmed := strings.TrimSpace(string(p))
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Company identifies the carrier behind an offer.
type Company struct {
	Name string `json:"name"`
}

// Offer is one carrier service returned by the calculate API. Offers for
// unavailable services come back with Error set and no price.
type Offer struct {
	ID           json.Number `json:"id"`
	Name         string      `json:"name"`
	Company      Company     `json:"company"`
	Price        Price       `json:"price"`
	Error        string      `json:"error"`
	DeliveryTime int         `json:"delivery_time"`
}

// Calculate issues one shipment-calculate call and returns the raw offer
// list. Offer filtering is left to the caller.
func (c *Client) Calculate(ctx context.Context, req CalculateRequest) ([]Offer, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "melhor envio client not configured")
	}
	if strings.TrimSpace(req.To.PostalCode) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination postal code is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal calculate request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(calculatePath), bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build calculate request")
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute calculate request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "calculate request failed")
	}

	var offers []Offer
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode calculate response")
	}

	return offers, nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
