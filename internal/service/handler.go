package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// BillServiceName is the fully-qualified name of the service.
const BillServiceName = "splitbill.v1.BillService"

// Procedure paths, in the layout protoc-gen-connect-go uses.
const (
	BillServiceCalculateSplitProcedure = "/" + BillServiceName + "/CalculateSplit"
	BillServiceSaveBillProcedure       = "/" + BillServiceName + "/SaveBill"
	BillServiceListBillsProcedure      = "/" + BillServiceName + "/ListBills"
	BillServiceClearHistoryProcedure   = "/" + BillServiceName + "/ClearHistory"
)

// NewBillServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on. The JSON codec is always installed.
func NewBillServiceHandler(svc *BillService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	calculate := connect.NewUnaryHandler(BillServiceCalculateSplitProcedure, svc.CalculateSplit, opts...)
	save := connect.NewUnaryHandler(BillServiceSaveBillProcedure, svc.SaveBill, opts...)
	list := connect.NewUnaryHandler(BillServiceListBillsProcedure, svc.ListBills, opts...)
	clearHistory := connect.NewUnaryHandler(BillServiceClearHistoryProcedure, svc.ClearHistory, opts...)

	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceCalculateSplitProcedure:
			calculate.ServeHTTP(w, r)
		case BillServiceSaveBillProcedure:
			save.ServeHTTP(w, r)
		case BillServiceListBillsProcedure:
			list.ServeHTTP(w, r)
		case BillServiceClearHistoryProcedure:
			clearHistory.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BillServiceClient calls a BillService over Connect.
type BillServiceClient struct {
	calculateSplit *connect.Client[CalculateSplitRequest, CalculateSplitResponse]
	saveBill       *connect.Client[SaveBillRequest, SaveBillResponse]
	listBills      *connect.Client[ListBillsRequest, ListBillsResponse]
	clearHistory   *connect.Client[ClearHistoryRequest, ClearHistoryResponse]
}

// NewBillServiceClient creates a client for the service at baseURL.
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &BillServiceClient{
		calculateSplit: connect.NewClient[CalculateSplitRequest, CalculateSplitResponse](httpClient, baseURL+BillServiceCalculateSplitProcedure, opts...),
		saveBill:       connect.NewClient[SaveBillRequest, SaveBillResponse](httpClient, baseURL+BillServiceSaveBillProcedure, opts...),
		listBills:      connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+BillServiceListBillsProcedure, opts...),
		clearHistory:   connect.NewClient[ClearHistoryRequest, ClearHistoryResponse](httpClient, baseURL+BillServiceClearHistoryProcedure, opts...),
	}
}

// CalculateSplit calls splitbill.v1.BillService.CalculateSplit.
func (c *BillServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

// SaveBill calls splitbill.v1.BillService.SaveBill.
func (c *BillServiceClient) SaveBill(ctx context.Context, req *connect.Request[SaveBillRequest]) (*connect.Response[SaveBillResponse], error) {
	return c.saveBill.CallUnary(ctx, req)
}

// ListBills calls splitbill.v1.BillService.ListBills.
func (c *BillServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

// ClearHistory calls splitbill.v1.BillService.ClearHistory.
func (c *BillServiceClient) ClearHistory(ctx context.Context, req *connect.Request[ClearHistoryRequest]) (*connect.Response[ClearHistoryResponse], error) {
	return c.clearHistory.CallUnary(ctx, req)
}
