package dto

import "github.com/shopspring/decimal"

// TrendPointResponse is one day of the last-7-day activity trend.
type TrendPointResponse struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// CategoryCountResponse is one bar of the per-department work distribution.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardResponse aggregates the visibility-filtered work logs for the
// dashboard view: counters, the 7-day trend and the category distribution.
type DashboardResponse struct {
	TotalEntries   int                     `json:"totalEntries"`
	Completed      int                     `json:"completed"`
	Pending        int                     `json:"pending"`
	Blocked        int                     `json:"blocked"`
	MetricVolume   decimal.Decimal         `json:"metricVolume"`
	CompletionRate decimal.Decimal         `json:"completionRate"` // percent, 2dp
	Trend          []TrendPointResponse    `json:"trend"`
	Distribution   []CategoryCountResponse `json:"distribution"`
}
