package vendorview

import (
	"sort"

	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/pricing"
)

// AttributeItems groups order items by the vendor captured at order-creation
// time. Vendor ownership is never re-resolved from the current product record.
func AttributeItems(items []model.OrderItem) map[int64][]model.OrderItem {
	grouped := make(map[int64][]model.OrderItem)
	for _, item := range items {
		grouped[item.VendorID] = append(grouped[item.VendorID], item)
	}
	return grouped
}

// OwnsOrder reports whether at least one item of the order belongs to the vendor.
func OwnsOrder(order *model.Order, vendorID int64) bool {
	for _, item := range order.Items {
		if item.VendorID == vendorID {
			return true
		}
	}
	return false
}

// Build returns the vendor-scoped view of an order: shared order-level fields
// unchanged, items filtered down to the vendor's own.
func Build(order model.Order, vendorID int64) model.Order {
	view := order
	view.Items = make([]model.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		if item.VendorID == vendorID {
			view.Items = append(view.Items, item)
		}
	}
	return view
}

// ProductSales aggregates a vendor's sales for one product.
type ProductSales struct {
	ProductID int64
	Name      string
	Sold      int
	Revenue   float64
}

// TopProducts sums quantities and line revenue over the vendor's item subset
// and returns up to limit products ordered by revenue.
func TopProducts(vendorID int64, orders []model.Order, limit int) []ProductSales {
	byProduct := make(map[int64]*ProductSales)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.VendorID != vendorID {
				continue
			}
			sales, ok := byProduct[item.ProductID]
			if !ok {
				sales = &ProductSales{ProductID: item.ProductID, Name: item.ProductName}
				byProduct[item.ProductID] = sales
			}
			sales.Sold += item.Quantity
			sales.Revenue += item.Total
		}
	}

	result := make([]ProductSales, 0, len(byProduct))
	for _, sales := range byProduct {
		sales.Revenue = pricing.Round(sales.Revenue)
		result = append(result, *sales)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].ProductID < result[j].ProductID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// MonthlyRevenue is a vendor's revenue for one calendar month.
type MonthlyRevenue struct {
	Month   string
	Revenue float64
}

// RevenueByMonth groups the vendor's line revenue by the calendar month of the
// parent order's creation timestamp, sorted chronologically.
func RevenueByMonth(vendorID int64, orders []model.Order) []MonthlyRevenue {
	byMonth := make(map[string]float64)
	for _, order := range orders {
		month := order.CreatedAt.UTC().Format("2006-01")
		for _, item := range order.Items {
			if item.VendorID == vendorID {
				byMonth[month] += item.Total
			}
		}
	}

	result := make([]MonthlyRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		if revenue == 0 {
			continue
		}
		result = append(result, MonthlyRevenue{Month: month, Revenue: pricing.Round(revenue)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result
}
