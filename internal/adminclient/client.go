package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/projectkrs/krs/internal/server/http/dto"
)

const maxResponseBytes = 32 << 20

// ErrOrderNotFound is returned when the service answers {ok:false} for a lookup.
var ErrOrderNotFound = errors.New("order not found")

// Client reads orders from a running krs service.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("api url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Orders fetches every stored order, newest first.
func (c *Client) Orders(ctx context.Context) ([]dto.OrderResponse, error) {
	var orders []dto.OrderResponse
	if err := c.get(ctx, "/get_orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order by code or numeric id.
func (c *Client) Order(ctx context.Context, identifier string) (*dto.OrderResponse, error) {
	var resp dto.GetOrderResponse
	if err := c.get(ctx, "/get_order", url.Values{"order_id": {identifier}}, &resp); err != nil {
		return nil, err
	}
	if !resp.OK || resp.Order == nil {
		return nil, ErrOrderNotFound
	}
	return resp.Order, nil
}

func (c *Client) get(ctx context.Context, endpointPath string, query url.Values, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: %s", req.Method, endpointPath, resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", endpointPath, err)
	}
	return nil
}
