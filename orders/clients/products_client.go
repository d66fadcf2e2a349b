package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/snackhouse/food-orders/config"
)

// Product is the catalog snapshot the orders service needs: enough to
// validate the item and freeze name/price into the order.
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// ProductsClient is the lookup port consumed during order creation.
// Returns (nil, nil) when the product does not exist.
type ProductsClient interface {
	GetProductByID(id uint) (*Product, error)
}

// ProductsHTTPClient calls the products service over its JSON API.
type ProductsHTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProductsHTTPClient() *ProductsHTTPClient {
	return &ProductsHTTPClient{
		baseURL: config.Getenv("PRODUCTS_SERVICE_URL", "http://localhost:8081"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewProductsHTTPClientWithBase is used by tests pointing at a stub server.
func NewProductsHTTPClientWithBase(baseURL string, httpClient *http.Client) *ProductsHTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ProductsHTTPClient{baseURL: baseURL, httpClient: httpClient}
}

func (c *ProductsHTTPClient) GetProductByID(id uint) (*Product, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.baseURL, id)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("products service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("products service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading products service response: %w", err)
	}

	// The products service wraps payloads in the shared JSON envelope.
	var envelope struct {
		Status  bool    `json:"status"`
		Message string  `json:"message"`
		Data    Product `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding products service response: %w", err)
	}

	return &envelope.Data, nil
}
