package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vehicleagent/internal/config"
	"vehicleagent/internal/model"
)

// BackendClient talks to the vehicle backend API over HTTP. Every call is
// bounded by the configured timeout so an unreachable backend cannot stall
// a dispatch; callers treat a timeout exactly like a connection failure.
type BackendClient struct {
	config     *config.BackendConfig
	httpClient *http.Client
}

// NewBackendClient creates a new backend API client
func NewBackendClient(cfg *config.BackendConfig) *BackendClient {
	return &BackendClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// BookingRequest is the wire payload for POST /book
type BookingRequest struct {
	VehicleID    string `json:"vehicle_id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
}

// NegotiationRequest is the wire payload for POST /negotiate
type NegotiationRequest struct {
	VehicleID  string  `json:"vehicle_id"`
	OfferPrice float64 `json:"offer_price"`
}

// ComparisonEnvelope is the wire response for GET /compare. Either vehicle
// may be null when the backend does not know the id.
type ComparisonEnvelope struct {
	Comparison struct {
		Vehicle1 *model.Vehicle `json:"vehicle1"`
		Vehicle2 *model.Vehicle `json:"vehicle2"`
		Verdict  string         `json:"verdict"`
	} `json:"comparison"`
}

// Search performs GET /search with optional make/model/type filters
func (c *BackendClient) Search(ctx context.Context, mk, mdl, vtype string) ([]model.Vehicle, error) {
	params := url.Values{}
	if mk != "" {
		params.Set("make", mk)
	}
	if mdl != "" {
		params.Set("model", mdl)
	}
	if vtype != "" {
		params.Set("type", vtype)
	}

	var results []model.Vehicle
	if err := c.getJSON(ctx, "/search", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Compare performs GET /compare for two vehicle ids
func (c *BackendClient) Compare(ctx context.Context, id1, id2 string) (*ComparisonEnvelope, error) {
	params := url.Values{}
	params.Set("vehicle1_id", id1)
	params.Set("vehicle2_id", id2)

	var envelope ComparisonEnvelope
	if err := c.getJSON(ctx, "/compare", params, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// Book performs POST /book and returns the raw confirmation object
func (c *BackendClient) Book(ctx context.Context, booking BookingRequest) (map[string]any, error) {
	var confirmation map[string]any
	if err := c.postJSON(ctx, "/book", booking, &confirmation); err != nil {
		return nil, err
	}
	return confirmation, nil
}

// Negotiate performs POST /negotiate and returns the raw outcome object
func (c *BackendClient) Negotiate(ctx context.Context, negotiation NegotiationRequest) (map[string]any, error) {
	var outcome map[string]any
	if err := c.postJSON(ctx, "/negotiate", negotiation, &outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (c *BackendClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.config.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

func (c *BackendClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *BackendClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
