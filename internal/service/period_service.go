package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/period"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

var _ apiconnect.PeriodServiceHandler = (*PeriodService)(nil)

// PeriodService implements the Connect PeriodService.
type PeriodService struct {
	registry *period.Registry
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(registry *period.Registry) *PeriodService {
	return &PeriodService{registry: registry}
}

// CreatePeriod registers a billing month.
func (s *PeriodService) CreatePeriod(ctx context.Context, req *connect.Request[api.CreatePeriodRequest]) (*connect.Response[api.CreatePeriodResponse], error) {
	slog.Info("CreatePeriod request received", "month", req.Msg.Month, "year", req.Msg.Year)

	p, err := s.registry.Create(ctx, req.Msg.Month, req.Msg.Year)
	if err != nil {
		return nil, toConnectError("CreatePeriod", err)
	}

	return connect.NewResponse(&api.CreatePeriodResponse{Period: toAPIPeriod(p)}), nil
}

// GetPeriod retrieves a period by ID.
func (s *PeriodService) GetPeriod(ctx context.Context, req *connect.Request[api.GetPeriodRequest]) (*connect.Response[api.GetPeriodResponse], error) {
	slog.Info("GetPeriod request received", "period_id", req.Msg.PeriodID)

	p, err := s.registry.Get(ctx, req.Msg.PeriodID)
	if err != nil {
		return nil, toConnectError("GetPeriod", err)
	}

	return connect.NewResponse(&api.GetPeriodResponse{Period: toAPIPeriod(p)}), nil
}

// ListPeriods returns every period, most recent first.
func (s *PeriodService) ListPeriods(ctx context.Context, req *connect.Request[api.ListPeriodsRequest]) (*connect.Response[api.ListPeriodsResponse], error) {
	slog.Info("ListPeriods request received")

	periods, err := s.registry.List(ctx)
	if err != nil {
		return nil, toConnectError("ListPeriods", err)
	}

	out := make([]api.Period, len(periods))
	for i, p := range periods {
		out[i] = toAPIPeriod(p)
	}

	slog.Info("ListPeriods successful", "count", len(out))
	return connect.NewResponse(&api.ListPeriodsResponse{Periods: out}), nil
}
