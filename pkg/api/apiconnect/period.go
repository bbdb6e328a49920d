package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/pkg/api"
)

// PeriodServiceName is the fully-qualified name of the PeriodService service.
const PeriodServiceName = "messbook.v1.PeriodService"

// Procedure paths.
const (
	PeriodServiceCreatePeriodProcedure = "/messbook.v1.PeriodService/CreatePeriod"
	PeriodServiceGetPeriodProcedure    = "/messbook.v1.PeriodService/GetPeriod"
	PeriodServiceListPeriodsProcedure  = "/messbook.v1.PeriodService/ListPeriods"
)

// PeriodServiceHandler is implemented by the server.
type PeriodServiceHandler interface {
	CreatePeriod(context.Context, *connect.Request[api.CreatePeriodRequest]) (*connect.Response[api.CreatePeriodResponse], error)
	GetPeriod(context.Context, *connect.Request[api.GetPeriodRequest]) (*connect.Response[api.GetPeriodResponse], error)
	ListPeriods(context.Context, *connect.Request[api.ListPeriodsRequest]) (*connect.Response[api.ListPeriodsResponse], error)
}

// NewPeriodServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPeriodServiceHandler(svc PeriodServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	r := routes{}
	unary(r, PeriodServiceCreatePeriodProcedure, svc.CreatePeriod, opts)
	unary(r, PeriodServiceGetPeriodProcedure, svc.GetPeriod, opts)
	unary(r, PeriodServiceListPeriodsProcedure, svc.ListPeriods, opts)
	return "/" + PeriodServiceName + "/", r
}

// PeriodServiceClient is a client for the PeriodService service.
type PeriodServiceClient interface {
	CreatePeriod(context.Context, *connect.Request[api.CreatePeriodRequest]) (*connect.Response[api.CreatePeriodResponse], error)
	GetPeriod(context.Context, *connect.Request[api.GetPeriodRequest]) (*connect.Response[api.GetPeriodResponse], error)
	ListPeriods(context.Context, *connect.Request[api.ListPeriodsRequest]) (*connect.Response[api.ListPeriodsResponse], error)
}

type periodServiceClient struct {
	createPeriod *connect.Client[api.CreatePeriodRequest, api.CreatePeriodResponse]
	getPeriod    *connect.Client[api.GetPeriodRequest, api.GetPeriodResponse]
	listPeriods  *connect.Client[api.ListPeriodsRequest, api.ListPeriodsResponse]
}

// NewPeriodServiceClient constructs a client for the PeriodService service. baseURL is
// the server root, e.g. http://localhost:8080.
func NewPeriodServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PeriodServiceClient {
	return &periodServiceClient{
		createPeriod: newClient[api.CreatePeriodRequest, api.CreatePeriodResponse](httpClient, baseURL, PeriodServiceCreatePeriodProcedure, opts),
		getPeriod:    newClient[api.GetPeriodRequest, api.GetPeriodResponse](httpClient, baseURL, PeriodServiceGetPeriodProcedure, opts),
		listPeriods:  newClient[api.ListPeriodsRequest, api.ListPeriodsResponse](httpClient, baseURL, PeriodServiceListPeriodsProcedure, opts),
	}
}

func (c *periodServiceClient) CreatePeriod(ctx context.Context, req *connect.Request[api.CreatePeriodRequest]) (*connect.Response[api.CreatePeriodResponse], error) {
	return c.createPeriod.CallUnary(ctx, req)
}

func (c *periodServiceClient) GetPeriod(ctx context.Context, req *connect.Request[api.GetPeriodRequest]) (*connect.Response[api.GetPeriodResponse], error) {
	return c.getPeriod.CallUnary(ctx, req)
}

func (c *periodServiceClient) ListPeriods(ctx context.Context, req *connect.Request[api.ListPeriodsRequest]) (*connect.Response[api.ListPeriodsResponse], error) {
	return c.listPeriods.CallUnary(ctx, req)
}
