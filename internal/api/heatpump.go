package api

import (
	"context"
	"net/http"
)

const (
	heatpumpPath = "/data/heatpump.php"
	infoPath     = "/data/info.php"
)

// GetHeatpump retrieves the heat pump status with heating circuits and operating modes.
func (c *APIClient) GetHeatpump(ctx context.Context) (string, error) {
	return c.doRequest(ctx, http.MethodGet, heatpumpPath, nil)
}

// GetInfo retrieves the info page holding the device clock.
func (c *APIClient) GetInfo(ctx context.Context) (string, error) {
	return c.doRequest(ctx, http.MethodGet, infoPath, nil)
}
