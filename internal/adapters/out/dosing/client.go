// Package dosing implements the outbound client for the external dose
// calculation service.
package dosing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

// DefaultTimeout bounds one dose calculation request.
const DefaultTimeout = 3 * time.Second

// Client asks the dosing service to compute a dose for an approved order.
// The result arrives later through the service's own callback; this client
// only delivers the request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a dosing client. The base URL points at the dosing
// service root, e.g. http://localhost:8081.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// RequestDose delivers the calculation request with at-most-once semantics.
// The send runs detached from the caller's context so the approval response
// never waits on the dosing service; failures are logged and swallowed.
func (c *Client) RequestDose(_ context.Context, medicineID kernel.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
		defer cancel()

		if err := c.send(ctx, medicineID); err != nil {
			c.logger.Warn("dose calculation request failed",
				"medicineId", medicineID.String(),
				"error", err)
			return
		}

		c.logger.Info("dose calculation requested", "medicineId", medicineID.String())
	}()
}

func (c *Client) send(ctx context.Context, medicineID kernel.UUID) error {
	payload, err := json.Marshal(map[string]string{
		"medicine_id": medicineID.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/calc_dose", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dosing service returned %s", resp.Status)
	}

	return nil
}
