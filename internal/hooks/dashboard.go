package hooks

import (
	"context"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	SalesData(ctx context.Context, days int) ([]model.SalesDataPoint, error)
}

type DashboardState struct {
	Stats     *model.DashboardStats  `json:"stats"`
	Sales     []model.SalesDataPoint `json:"sales"`
	IsLoading bool                   `json:"isLoading"`
	Error     string                 `json:"error"`
}

type dashboardData struct {
	stats *model.DashboardStats
	sales []model.SalesDataPoint
}

// Dashboard loads the headline stats and the sales series together; either
// failing fails the whole load.
type Dashboard struct {
	l *loader[dashboardData, dto.SalesFilter]
}

func NewDashboard(api DashboardAPI, filters dto.SalesFilter, opts ...Option) *Dashboard {
	fetch := func(ctx context.Context, f dto.SalesFilter) (dashboardData, error) {
		stats, err := api.DashboardStats(ctx)
		if err != nil {
			return dashboardData{}, err
		}
		sales, err := api.SalesData(ctx, f.EffectiveDays())
		if err != nil {
			return dashboardData{}, err
		}
		return dashboardData{stats: stats, sales: sales}, nil
	}
	return &Dashboard{l: newLoader("dashboard", filters, fetch, opts)}
}

func (h *Dashboard) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Dashboard) Unmount()                   { h.l.unmount() }
func (h *Dashboard) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Dashboard) SetFilters(ctx context.Context, f dto.SalesFilter) { h.l.setFilters(ctx, f) }

func (h *Dashboard) State() DashboardState {
	d, loading, errMsg := h.l.snapshot()
	st := DashboardState{Sales: append([]model.SalesDataPoint{}, d.sales...), IsLoading: loading, Error: errMsg}
	if d.stats != nil {
		s := *d.stats
		st.Stats = &s
	}
	return st
}
