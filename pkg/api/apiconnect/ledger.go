package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "messbook.v1.LedgerService"

// Procedure paths.
const (
	LedgerServiceRecordAttendanceProcedure = "/messbook.v1.LedgerService/RecordAttendance"
	LedgerServiceAddAttendanceProcedure    = "/messbook.v1.LedgerService/AddAttendance"
	LedgerServiceDeleteAttendanceProcedure = "/messbook.v1.LedgerService/DeleteAttendance"
	LedgerServiceListAttendanceProcedure   = "/messbook.v1.LedgerService/ListAttendance"
	LedgerServiceAddExpenseProcedure       = "/messbook.v1.LedgerService/AddExpense"
	LedgerServiceUpdateExpenseProcedure    = "/messbook.v1.LedgerService/UpdateExpense"
	LedgerServiceDeleteExpenseProcedure    = "/messbook.v1.LedgerService/DeleteExpense"
	LedgerServiceListExpensesProcedure     = "/messbook.v1.LedgerService/ListExpenses"
	LedgerServiceRecordPaymentProcedure    = "/messbook.v1.LedgerService/RecordPayment"
	LedgerServiceListPaymentsProcedure     = "/messbook.v1.LedgerService/ListPayments"
)

// LedgerServiceHandler is implemented by the server.
type LedgerServiceHandler interface {
	RecordAttendance(context.Context, *connect.Request[api.RecordAttendanceRequest]) (*connect.Response[api.RecordAttendanceResponse], error)
	AddAttendance(context.Context, *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error)
	DeleteAttendance(context.Context, *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error)
	ListAttendance(context.Context, *connect.Request[api.ListAttendanceRequest]) (*connect.Response[api.ListAttendanceResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	r := routes{}
	unary(r, LedgerServiceRecordAttendanceProcedure, svc.RecordAttendance, opts)
	unary(r, LedgerServiceAddAttendanceProcedure, svc.AddAttendance, opts)
	unary(r, LedgerServiceDeleteAttendanceProcedure, svc.DeleteAttendance, opts)
	unary(r, LedgerServiceListAttendanceProcedure, svc.ListAttendance, opts)
	unary(r, LedgerServiceAddExpenseProcedure, svc.AddExpense, opts)
	unary(r, LedgerServiceUpdateExpenseProcedure, svc.UpdateExpense, opts)
	unary(r, LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts)
	unary(r, LedgerServiceListExpensesProcedure, svc.ListExpenses, opts)
	unary(r, LedgerServiceRecordPaymentProcedure, svc.RecordPayment, opts)
	unary(r, LedgerServiceListPaymentsProcedure, svc.ListPayments, opts)
	return "/" + LedgerServiceName + "/", r
}

// LedgerServiceClient is a client for the LedgerService service.
type LedgerServiceClient interface {
	RecordAttendance(context.Context, *connect.Request[api.RecordAttendanceRequest]) (*connect.Response[api.RecordAttendanceResponse], error)
	AddAttendance(context.Context, *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error)
	DeleteAttendance(context.Context, *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error)
	ListAttendance(context.Context, *connect.Request[api.ListAttendanceRequest]) (*connect.Response[api.ListAttendanceResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
}

type ledgerServiceClient struct {
	recordAttendance *connect.Client[api.RecordAttendanceRequest, api.RecordAttendanceResponse]
	addAttendance    *connect.Client[api.AttendanceBatchRequest, api.AttendanceBatchResponse]
	deleteAttendance *connect.Client[api.AttendanceBatchRequest, api.AttendanceBatchResponse]
	listAttendance   *connect.Client[api.ListAttendanceRequest, api.ListAttendanceResponse]
	addExpense       *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	updateExpense    *connect.Client[api.UpdateExpenseRequest, api.UpdateExpenseResponse]
	deleteExpense    *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	listExpenses     *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	recordPayment    *connect.Client[api.RecordPaymentRequest, api.RecordPaymentResponse]
	listPayments     *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
}

// NewLedgerServiceClient constructs a client for the LedgerService service. baseURL is
// the server root, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	return &ledgerServiceClient{
		recordAttendance: newClient[api.RecordAttendanceRequest, api.RecordAttendanceResponse](httpClient, baseURL, LedgerServiceRecordAttendanceProcedure, opts),
		addAttendance:    newClient[api.AttendanceBatchRequest, api.AttendanceBatchResponse](httpClient, baseURL, LedgerServiceAddAttendanceProcedure, opts),
		deleteAttendance: newClient[api.AttendanceBatchRequest, api.AttendanceBatchResponse](httpClient, baseURL, LedgerServiceDeleteAttendanceProcedure, opts),
		listAttendance:   newClient[api.ListAttendanceRequest, api.ListAttendanceResponse](httpClient, baseURL, LedgerServiceListAttendanceProcedure, opts),
		addExpense:       newClient[api.AddExpenseRequest, api.AddExpenseResponse](httpClient, baseURL, LedgerServiceAddExpenseProcedure, opts),
		updateExpense:    newClient[api.UpdateExpenseRequest, api.UpdateExpenseResponse](httpClient, baseURL, LedgerServiceUpdateExpenseProcedure, opts),
		deleteExpense:    newClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](httpClient, baseURL, LedgerServiceDeleteExpenseProcedure, opts),
		listExpenses:     newClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL, LedgerServiceListExpensesProcedure, opts),
		recordPayment:    newClient[api.RecordPaymentRequest, api.RecordPaymentResponse](httpClient, baseURL, LedgerServiceRecordPaymentProcedure, opts),
		listPayments:     newClient[api.ListPaymentsRequest, api.ListPaymentsResponse](httpClient, baseURL, LedgerServiceListPaymentsProcedure, opts),
	}
}

func (c *ledgerServiceClient) RecordAttendance(ctx context.Context, req *connect.Request[api.RecordAttendanceRequest]) (*connect.Response[api.RecordAttendanceResponse], error) {
	return c.recordAttendance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddAttendance(ctx context.Context, req *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error) {
	return c.addAttendance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteAttendance(ctx context.Context, req *connect.Request[api.AttendanceBatchRequest]) (*connect.Response[api.AttendanceBatchResponse], error) {
	return c.deleteAttendance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListAttendance(ctx context.Context, req *connect.Request[api.ListAttendanceRequest]) (*connect.Response[api.ListAttendanceResponse], error) {
	return c.listAttendance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}
