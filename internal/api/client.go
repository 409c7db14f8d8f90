package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/clienterr"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client talks to the dispatch REST API. The Authorization header carries
// the raw token value, no bearer prefix: the deployed server expects it
// that way.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// LoginUser is the user record returned by the login endpoint; it carries
// the session token alongside the profile fields.
type LoginUser struct {
	models.User
	Token string `json:"token"`
}

type LoginResponse struct {
	User    LoginUser `json:"user"`
	Message string    `json:"message"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

// MutationResponse is the common envelope of write endpoints. Status is the
// server-declared success marker.
type MutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *MutationResponse) OK() bool {
	return r.Status == "success"
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "user/login", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.User.Token == "" {
		return nil, &clienterr.HTTPError{Status: http.StatusOK, Message: "login response missing token"}
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "user/logout", token, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "order/list", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) ListMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "order/mylist", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) ListCouriers(ctx context.Context, token string) ([]models.Courier, error) {
	var couriers []models.Courier
	if err := c.do(ctx, http.MethodGet, "delivery/list", token, nil, &couriers); err != nil {
		return nil, err
	}
	return couriers, nil
}

func (c *Client) AssignOrder(ctx context.Context, token, orderID, deliveryID string) (*MutationResponse, error) {
	body := map[string]string{"orderId": orderID, "deliveryId": deliveryID}

	var resp MutationResponse
	if err := c.do(ctx, http.MethodPost, "order/assign", token, body, &resp); err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &clienterr.HTTPError{Status: http.StatusOK, Message: "assignment rejected: " + resp.Message}
	}
	return &resp, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, form models.OrderForm) (*MutationResponse, error) {
	body := map[string]interface{}{"formData": form}

	var resp MutationResponse
	if err := c.do(ctx, http.MethodPost, "order/create", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (*MutationResponse, error) {
	body := map[string]string{"orderId": orderID, "status": string(status)}

	var resp MutationResponse
	if err := c.do(ctx, http.MethodPost, "order/status", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "password": newPassword}
	return c.do(ctx, http.MethodPut, "user/update", token, body, nil)
}

func (c *Client) UpdateAvailability(ctx context.Context, token string, activo bool) error {
	body := map[string]bool{"activo": activo}
	return c.do(ctx, http.MethodPut, "user/update", token, body, nil)
}

// AddCourier registers a new delivery agent. The endpoint is served without
// an Authorization header on the deployed backend.
func (c *Client) AddCourier(ctx context.Context, name, surname string) (*MutationResponse, error) {
	body := map[string]string{"name": name, "surname": surname}

	var resp MutationResponse
	if err := c.do(ctx, http.MethodPost, "adddelivery", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Cache-Control", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &clienterr.NetworkError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &clienterr.HTTPError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		c.logger.Debug("request rejected",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode))
		return httpErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// readErrorMessage extracts whatever detail the server put in an error
// payload. Both {"error": ...} and {"message": ...} shapes occur.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
