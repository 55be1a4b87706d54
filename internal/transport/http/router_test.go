package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports/mocks"
	rest "github.com/Gunvolt24/jm_orders/internal/transport/http"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRouter(t *testing.T) (*mocks.MockDashboardService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "", "test")
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleView() domain.View {
	return domain.View{
		Orders: []domain.Order{
			{ID: "JM-1001", Date: "2025-09-10", Customer: "Anita Joshi", Items: 2, Amount: decimal.NewFromInt(12400), Status: domain.StatusPending},
		},
		Aggregates: domain.Aggregates{Count: 1, Total: decimal.NewFromInt(12400), Pending: 1},
	}
}

func TestListOrders_ParsesQuery(t *testing.T) {
	svc, r := newRouter(t)

	want := domain.QuerySpec{StatusFilter: "pending", SearchQuery: " Anita ", SortKey: domain.SortAmountAsc}
	svc.EXPECT().Query(gomock.Any(), want).Return(sampleView())

	req := httptest.NewRequest(http.MethodGet, "/orders?status=pending&q=%20Anita%20&sort=amount_asc", http.NoBody)
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Orders     []domain.Order    `json:"orders"`
		Aggregates domain.Aggregates `json:"aggregates"`
		TotalINR   string            `json:"total_inr"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Orders) != 1 || got.Orders[0].ID != "JM-1001" || got.Aggregates.Pending != 1 {
		t.Fatalf("unexpected view: %+v", got)
	}
	if got.TotalINR != "₹12,400" {
		t.Fatalf("unexpected total_inr: %q", got.TotalINR)
	}
}

func TestListOrders_Defaults(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().Query(gomock.Any(), domain.DefaultQuerySpec()).Return(domain.View{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/orders", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"orders":[]`) {
		t.Fatalf("empty view must encode orders as [], got %s", w.Body.String())
	}
}

func TestListOrders_UnknownSort_400(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/orders?sort=customer", http.NoBody))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_sort") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetOrder_Found(t *testing.T) {
	svc, r := newRouter(t)

	want := &domain.Order{ID: "JM-1003", Customer: "Priya Nair", Details: "Rose gold ring"}
	svc.EXPECT().GetOrder(gomock.Any(), "JM-1003").Return(want, true)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/order/JM-1003", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "JM-1003" || got.Details != "Rose gold ring" {
		t.Fatalf("wrong order: %+v", got)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().GetOrder(gomock.Any(), "missing").Return(nil, false)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/order/missing", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

// id сравнивается как есть: пробелы вокруг не срезаются
func TestGetOrder_ExactIDMatch(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().GetOrder(gomock.Any(), " JM-1003").Return(nil, false)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/order/%20JM-1003", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestExportCSV_Attachment(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().ExportCSV(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Order ID,Date,Customer,Items,Amount,Status,Details")
		return err
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/orders/export", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="jewel-market-orders.csv"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if w.Body.String() != "Order ID,Date,Customer,Items,Amount,Status,Details" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestExportCSV_Error_500(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().ExportCSV(gomock.Any(), gomock.Any()).Return(errors.New("broken"))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/orders/export", http.NoBody))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestImport_Multipart_FormatFromFilename(t *testing.T) {
	svc, r := newRouter(t)

	const csvBody = "Order ID,Date,Customer,Items,Amount,Status\nJM-1,2025-01-01,A,1,10,pending\n"
	out := domain.ImportOutcome{Imported: 1, Spec: domain.DefaultQuerySpec(), View: sampleView()}
	svc.EXPECT().Import(gomock.Any(), gomock.Any(), domain.ImportCSV).
		DoAndReturn(func(_ context.Context, r io.Reader, _ domain.ImportFormat) (domain.ImportOutcome, error) {
			raw, err := io.ReadAll(r)
			if err != nil || string(raw) != csvBody {
				return domain.ImportOutcome{}, fmt.Errorf("unexpected upload %q: %v", raw, err)
			}
			return out, nil
		})

	body, ct := multipartBody(t, "orders.csv", csvBody)
	req := httptest.NewRequest(http.MethodPost, "/orders/import", body)
	req.Header.Set("Content-Type", ct)
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Imported int                    `json:"imported"`
		Warnings []domain.ImportWarning `json:"warnings"`
		Spec     domain.QuerySpec       `json:"spec"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Imported != 1 || got.Warnings == nil || got.Spec.SearchQuery != "" {
		t.Fatalf("unexpected outcome: %+v", got)
	}
}

func TestImport_RawBody_ExplicitFormat(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().Import(gomock.Any(), gomock.Any(), domain.ImportXLSX).Return(domain.ImportOutcome{Imported: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders/import?format=XLSX", strings.NewReader("PK\x03\x04"))
	req.Header.Set("Content-Type", "application/octet-stream")
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestImport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"parse", fmt.Errorf("%w: no data rows after header", domain.ErrImportParse), http.StatusUnprocessableEntity, "import_parse_failure"},
		{"read", fmt.Errorf("%w: unexpected EOF", domain.ErrImportRead), http.StatusBadRequest, "import_read_failure"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().Import(gomock.Any(), gomock.Any(), domain.ImportAuto).Return(domain.ImportOutcome{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/orders/import", strings.NewReader("x"))
			w := serve(r, req)

			if w.Code != tt.code {
				t.Fatalf("want %d, got %d, body=%s", tt.code, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.body) {
				t.Fatalf("want %q in body, got %s", tt.body, w.Body.String())
			}
		})
	}
}

func TestImport_MissingFileField_400(t *testing.T) {
	_, r := newRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("other", "value")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/orders/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := serve(r, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "import_read_failure") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDashboard_Current(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().Current(gomock.Any()).Return(domain.DefaultQuerySpec(), sampleView())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Spec domain.QuerySpec `json:"spec"`
		View struct {
			Orders []domain.Order `json:"orders"`
		} `json:"view"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Spec != domain.DefaultQuerySpec() || len(got.View.Orders) != 1 {
		t.Fatalf("unexpected dashboard: %+v", got)
	}
}

func TestDashboard_SessionEvents(t *testing.T) {
	svc, r := newRouter(t)

	spec := domain.DefaultQuerySpec()
	gomock.InOrder(
		svc.EXPECT().SetStatusFilter(gomock.Any(), "delivered").Return(spec, domain.View{}),
		svc.EXPECT().SetSearchQuery(gomock.Any(), " ring ").Return(spec, domain.View{}),
		svc.EXPECT().SetSortKey(gomock.Any(), domain.SortAmountDesc).Return(spec, domain.View{}),
	)

	for _, tc := range []struct{ path, body string }{
		{"/dashboard/status", `{"status":"delivered"}`},
		{"/dashboard/search", `{"query":" ring "}`},
		{"/dashboard/sort", `{"sort":"amount-desc"}`},
	} {
		req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: want 200, got %d, body=%s", tc.path, w.Code, w.Body.String())
		}
	}
}

func TestDashboard_BadRequests(t *testing.T) {
	_, r := newRouter(t)

	for _, tc := range []struct{ path, body, code string }{
		{"/dashboard/sort", `{"sort":"customer"}`, "invalid_sort"},
		{"/dashboard/sort", `{}`, "bad_request"},
		{"/dashboard/status", `not json`, "bad_request"},
	} {
		req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: want 400, got %d", tc.path, tc.body, w.Code)
		}
		if !strings.Contains(w.Body.String(), tc.code) {
			t.Fatalf("%s %s: want %q in body, got %s", tc.path, tc.body, tc.code, w.Body.String())
		}
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/order/JM-1001", http.NoBody))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
