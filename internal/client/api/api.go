// Package api is the typed client for the storefront REST API, built on the
// gateway's timeout/error envelope.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rtlite/movieworld/internal/client/gateway"
)

type Client struct {
	gw *gateway.Client
}

func New(gw *gateway.Client) *Client {
	return &Client{gw: gw}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

type OrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	DB        string `json:"db"`
	Timestamp string `json:"timestamp"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewsSuggestRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Link  string `json:"link,omitempty"`
}

type OrderRequest struct {
	MovieName       string  `json:"movieName"`
	MoviePrice      float64 `json:"moviePrice"`
	Quantity        int     `json:"quantity"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*MessageResponse, error) {
	body := RegisterRequest{Name: name, Email: email, Password: password}
	var resp MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/logout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SuggestNews(ctx context.Context, req NewsSuggestRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/news-suggest", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.call(ctx, http.MethodPost, "/api/order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.call(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, body, dest any) error {
	data, err := c.gw.Call(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
