package service

import (
	"time"

	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/store"
)

const (
	salesWindowDays    = 7
	recentInvoiceCount = 6
	recentMovementLen  = 8
	maxTrendDays       = 90
)

type DashboardStats struct {
	ShopName        string                `json:"shopName"`
	SalesLast7Days  int64                 `json:"salesLast7Days"`
	InventoryValue  int64                 `json:"inventoryValue"`
	ItemCount       int                   `json:"itemCount"`
	LowStockCount   int                   `json:"lowStockCount"`
	UnpaidInvoices  int                   `json:"unpaidInvoices"`
	RecentInvoices  []model.Invoice       `json:"recentInvoices"`
	RecentMovements []model.StockMovement `json:"recentMovements"`
}

// SalesPoint is one calendar day of invoice totals in the shop timezone.
type SalesPoint struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Sales int64  `json:"sales"`
}

type DashboardService interface {
	GetDashboardStats() DashboardStats
	GetSalesTrend(days int) []SalesPoint
}

type dashboardService struct {
	store *store.Store
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(st *store.Store, loc *time.Location, now func() time.Time) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{store: st, loc: loc, now: now}
}

func (s *dashboardService) GetDashboardStats() DashboardStats {
	snap := s.store.Snapshot()

	stats := DashboardStats{
		ShopName:  snap.ShopName,
		ItemCount: len(snap.Items),
	}
	for _, it := range snap.Items {
		stats.InventoryValue += it.StockValue()
		if it.IsLowStock() {
			stats.LowStockCount++
		}
	}
	for _, inv := range snap.Invoices {
		if !inv.Paid {
			stats.UnpaidInvoices++
		}
	}
	for _, p := range s.trend(snap.Invoices, salesWindowDays) {
		stats.SalesLast7Days += p.Sales
	}

	stats.RecentInvoices = snap.Invoices[:min(recentInvoiceCount, len(snap.Invoices))]
	stats.RecentMovements = snap.Movements[:min(recentMovementLen, len(snap.Movements))]
	return stats
}

// GetSalesTrend returns one point per day for the last days days, oldest
// first, ending today. days is bounded to [1, 90].
func (s *dashboardService) GetSalesTrend(days int) []SalesPoint {
	days = min(max(days, 1), maxTrendDays)
	return s.trend(s.store.Invoices(), days)
}

func (s *dashboardService) trend(invoices []model.Invoice, days int) []SalesPoint {
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	points := make([]SalesPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		key := day.Format(time.DateOnly)
		points[i] = SalesPoint{Date: key, Day: day.Format("Mon")}
		index[key] = i
	}
	for _, inv := range invoices {
		key := inv.CreatedAt.In(s.loc).Format(time.DateOnly)
		if i, ok := index[key]; ok {
			points[i].Sales += inv.Total
		}
	}
	return points
}
