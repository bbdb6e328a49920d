package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/pkg/api"
)

// SettlementServiceName is the fully-qualified name of the SettlementService service.
const SettlementServiceName = "messbook.v1.SettlementService"

// Procedure paths.
const (
	SettlementServiceGenerateSettlementProcedure   = "/messbook.v1.SettlementService/GenerateSettlement"
	SettlementServiceGetFinancialOverviewProcedure = "/messbook.v1.SettlementService/GetFinancialOverview"
)

// SettlementServiceHandler is implemented by the server.
type SettlementServiceHandler interface {
	GenerateSettlement(context.Context, *connect.Request[api.GenerateSettlementRequest]) (*connect.Response[api.GenerateSettlementResponse], error)
	GetFinancialOverview(context.Context, *connect.Request[api.GetFinancialOverviewRequest]) (*connect.Response[api.GetFinancialOverviewResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	r := routes{}
	unary(r, SettlementServiceGenerateSettlementProcedure, svc.GenerateSettlement, opts)
	unary(r, SettlementServiceGetFinancialOverviewProcedure, svc.GetFinancialOverview, opts)
	return "/" + SettlementServiceName + "/", r
}

// SettlementServiceClient is a client for the SettlementService service.
type SettlementServiceClient interface {
	GenerateSettlement(context.Context, *connect.Request[api.GenerateSettlementRequest]) (*connect.Response[api.GenerateSettlementResponse], error)
	GetFinancialOverview(context.Context, *connect.Request[api.GetFinancialOverviewRequest]) (*connect.Response[api.GetFinancialOverviewResponse], error)
}

type settlementServiceClient struct {
	generateSettlement   *connect.Client[api.GenerateSettlementRequest, api.GenerateSettlementResponse]
	getFinancialOverview *connect.Client[api.GetFinancialOverviewRequest, api.GetFinancialOverviewResponse]
}

// NewSettlementServiceClient constructs a client for the SettlementService service. baseURL is
// the server root, e.g. http://localhost:8080.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	return &settlementServiceClient{
		generateSettlement:   newClient[api.GenerateSettlementRequest, api.GenerateSettlementResponse](httpClient, baseURL, SettlementServiceGenerateSettlementProcedure, opts),
		getFinancialOverview: newClient[api.GetFinancialOverviewRequest, api.GetFinancialOverviewResponse](httpClient, baseURL, SettlementServiceGetFinancialOverviewProcedure, opts),
	}
}

func (c *settlementServiceClient) GenerateSettlement(ctx context.Context, req *connect.Request[api.GenerateSettlementRequest]) (*connect.Response[api.GenerateSettlementResponse], error) {
	return c.generateSettlement.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetFinancialOverview(ctx context.Context, req *connect.Request[api.GetFinancialOverviewRequest]) (*connect.Response[api.GetFinancialOverviewResponse], error) {
	return c.getFinancialOverview.CallUnary(ctx, req)
}
