package entity

import "github.com/shopspring/decimal"

// DashboardSummary is the admin overview of the current month.
type DashboardSummary struct {
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	NewDesigns       int64           `json:"new_apparel_designs"`
	ActiveOrders     int64           `json:"active_orders"`
	PaymentsReceived decimal.Decimal `json:"payments_received"`
	NewCustomers     int64           `json:"new_customers"`
	CancelledOrders  int64           `json:"cancelled_orders"`
}

// RevenueFilter selects the look-back window of the revenue report.
type RevenueFilter string

const (
	RevenueOneMonth    RevenueFilter = "1M"
	RevenueThreeMonths RevenueFilter = "3M"
	RevenueSixMonths   RevenueFilter = "6M"
	RevenueOneYear     RevenueFilter = "1Y"
)

// WindowDays returns the look-back window in days, or 0 for all time.
func (f RevenueFilter) WindowDays() int {
	switch f {
	case RevenueOneMonth:
		return 30
	case RevenueThreeMonths:
		return 90
	case RevenueSixMonths:
		return 180
	case RevenueOneYear:
		return 365
	default:
		return 0
	}
}
