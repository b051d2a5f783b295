package dto

// TopProductResponse is one entry of the vendor analytics top list.
type TopProductResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

// MonthlyRevenueResponse is one month of vendor revenue.
type MonthlyRevenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// VendorAnalyticsResponse aggregates vendor sales figures.
type VendorAnalyticsResponse struct {
	TopProducts    []TopProductResponse     `json:"topProducts"`
	RevenueByMonth []MonthlyRevenueResponse `json:"revenueByMonth"`
	TotalRevenue   float64                  `json:"totalRevenue"`
	TotalOrders    int                      `json:"totalOrders"`
}

// VendorDashboardResponse summarises the vendor workload.
type VendorDashboardResponse struct {
	PendingOrders int             `json:"pendingOrders"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  float64         `json:"totalRevenue"`
	RecentOrders  []OrderResponse `json:"recentOrders"`
}
