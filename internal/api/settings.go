package api

import (
	"context"
	"net/http"
	"strings"
)

const settingsPath = "/data/settings.php"

// GetSettings retrieves the settings page holding the sensor table.
func (c *APIClient) GetSettings(ctx context.Context) (string, error) {
	return c.doRequest(ctx, http.MethodGet, settingsPath, nil)
}

// SetTime sends a set-time payload and returns the device answer.
func (c *APIClient) SetTime(ctx context.Context, payload string) (string, error) {
	return c.doRequest(ctx, http.MethodPut, settingsPath, strings.NewReader(payload))
}
