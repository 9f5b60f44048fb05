package api

import (
	"context"
	"net/http"
	"net/url"
)

const statisticsPath = "/data/statistics.php"

// StatisticsType selects one of the statistics pages.
type StatisticsType string

const (
	StatRuntime       StatisticsType = "heatpump"
	StatGeneratedHeat StatisticsType = "amountofheat"
	StatElectrical    StatisticsType = "baenergyhp"
)

// GetStatistics retrieves one statistics page.
func (c *APIClient) GetStatistics(ctx context.Context, typ StatisticsType) (string, error) {
	q := url.Values{}
	q.Set("type", string(typ))
	return c.doRequest(ctx, http.MethodGet, statisticsPath+"?"+q.Encode(), nil)
}
