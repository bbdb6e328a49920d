package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/settlement"
	"github.com/mmynk/messbook/internal/storage"
	"github.com/mmynk/messbook/pkg/api"
	"github.com/mmynk/messbook/pkg/api/apiconnect"
)

var _ apiconnect.SettlementServiceHandler = (*SettlementService)(nil)

// SettlementService implements the Connect SettlementService.
type SettlementService struct {
	engine   *settlement.Engine
	settings storage.SettingsStore
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(engine *settlement.Engine, settings storage.SettingsStore) *SettlementService {
	return &SettlementService{engine: engine, settings: settings}
}

// GenerateSettlement computes the per-user settlement for a period.
// An unknown period is not an error: the response has PeriodFound false.
func (s *SettlementService) GenerateSettlement(ctx context.Context, req *connect.Request[api.GenerateSettlementRequest]) (*connect.Response[api.GenerateSettlementResponse], error) {
	slog.Info("GenerateSettlement request received", "period_id", req.Msg.PeriodID)

	res, err := s.engine.Generate(ctx, req.Msg.PeriodID)
	if err != nil {
		return nil, toConnectError("GenerateSettlement", err)
	}

	resp := &api.GenerateSettlementResponse{
		PeriodFound: res.Found(),
		MealRate:    res.MealRate,
		Currency:    s.currency(ctx),
		Reports:     make([]api.SettlementReport, len(res.Reports)),
	}
	if res.Found() {
		p := toAPIPeriod(res.Period)
		resp.Period = &p
	}
	for i, r := range res.Reports {
		resp.Reports[i] = toAPISettlementReport(r)
	}

	slog.Info("GenerateSettlement successful",
		"period_id", req.Msg.PeriodID,
		"period_found", resp.PeriodFound,
		"reports", len(resp.Reports),
	)
	return connect.NewResponse(resp), nil
}

// GetFinancialOverview returns every user's all-time payments and expenses.
func (s *SettlementService) GetFinancialOverview(ctx context.Context, req *connect.Request[api.GetFinancialOverviewRequest]) (*connect.Response[api.GetFinancialOverviewResponse], error) {
	slog.Info("GetFinancialOverview request received")

	reports, err := s.engine.Overview(ctx)
	if err != nil {
		return nil, toConnectError("GetFinancialOverview", err)
	}

	out := make([]api.FinancialReport, len(reports))
	for i, r := range reports {
		out[i] = toAPIFinancialReport(r)
	}
	return connect.NewResponse(&api.GetFinancialOverviewResponse{
		Currency: s.currency(ctx),
		Reports:  out,
	}), nil
}

// currency is display-only, so a settings failure falls back to the default.
func (s *SettlementService) currency(ctx context.Context) string {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		slog.Warn("Failed to load settings, using default currency", "error", err)
		return models.DefaultCurrency
	}
	return settings.Currency
}
