package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/export"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/pkg/format"
	"github.com/Gunvolt24/jm_orders/pkg/httpx"
)

// Коды ошибок в теле ответа.
const (
	errCodeReadFailure  = "import_read_failure"
	errCodeParseFailure = "import_parse_failure"
	errCodeInvalidSort  = "invalid_sort"
	errCodeBadRequest   = "bad_request"
	errCodeInternal     = "internal server error"
)

// DefaultMaxUploadBytes — предел размера тела импорта по умолчанию.
const DefaultMaxUploadBytes int64 = 16 << 20

type Handler struct {
	service    ports.DashboardService
	log        ports.Logger
	reqTimeout time.Duration
	maxUpload  int64
}

// HandlerOption — дополнительная настройка Handler.
type HandlerOption func(*Handler)

// WithMaxUploadBytes — предел размера тела POST /orders/import.
func WithMaxUploadBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxUpload = n
		}
	}
}

// NewHandler — reqTimeout <= 0 отключает таймаут обработчиков.
func NewHandler(service ports.DashboardService, log ports.Logger, reqTimeout time.Duration, opts ...HandlerOption) *Handler {
	h := &Handler{service: service, log: log, reqTimeout: reqTimeout, maxUpload: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// viewResponse — представление плюс сумма в рупиях для отображения.
type viewResponse struct {
	domain.View
	TotalINR string `json:"total_inr"`
}

type dashboardResponse struct {
	Spec domain.QuerySpec `json:"spec"`
	View viewResponse     `json:"view"`
}

func newViewResponse(v domain.View) viewResponse {
	if v.Orders == nil {
		v.Orders = []domain.Order{}
	}
	return viewResponse{View: v, TotalINR: format.INR(v.Aggregates.Total)}
}

func (h *Handler) respondDashboard(c *gin.Context, ctx context.Context, spec domain.QuerySpec, view domain.View) {
	if err := ctx.Err(); err != nil {
		h.log.Errorf(ctx, "dashboard request aborted path=%s err=%v", c.FullPath(), err)
		httpx.AbortError(c, http.StatusInternalServerError, errCodeInternal, "")
		return
	}
	c.JSON(http.StatusOK, dashboardResponse{Spec: spec, View: newViewResponse(view)})
}

// GET /orders?status=&q=&sort= — представление без изменения состояния сессии.
func (h *Handler) listOrders(c *gin.Context) {
	spec, err := httpx.ParseQuerySpec(c)
	if err != nil {
		httpx.AbortError(c, http.StatusBadRequest, errCodeInvalidSort, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	view := h.service.Query(ctx, spec)
	if err := ctx.Err(); err != nil {
		h.log.Errorf(ctx, "Query aborted err=%v", err)
		httpx.AbortError(c, http.StatusInternalServerError, errCodeInternal, "")
		return
	}
	c.JSON(http.StatusOK, newViewResponse(view))
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		httpx.AbortError(c, http.StatusBadRequest, "empty id", "")
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	order, found := h.service.GetOrder(ctx, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /orders/export — CSV всего набора как вложение.
func (h *Handler) exportCSV(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	var buf bytes.Buffer
	if err := h.service.ExportCSV(ctx, &buf); err != nil {
		h.log.Errorf(ctx, "ExportCSV failed err=%v", err)
		httpx.AbortError(c, http.StatusInternalServerError, errCodeInternal, "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.DefaultFilename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// POST /orders/import — multipart-поле file или «сырое» тело (?format=xlsx|csv).
func (h *Handler) importOrders(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	body, fmtHint, closeBody, err := h.importSource(c)
	if err != nil {
		h.log.Warnf(c.Request.Context(), "import upload rejected err=%v", err)
		httpx.AbortError(c, http.StatusBadRequest, errCodeReadFailure, err.Error())
		return
	}
	defer closeBody()

	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.service.Import(ctx, body, fmtHint)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"imported": out.Imported,
			"warnings": nonNilWarnings(out.Warnings),
			"spec":     out.Spec,
			"view":     newViewResponse(out.View),
		})
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		h.log.Errorf(ctx, "Import aborted err=%v", err)
		httpx.AbortError(c, http.StatusInternalServerError, errCodeInternal, "")
	case errors.Is(err, domain.ErrImportParse):
		httpx.AbortError(c, http.StatusUnprocessableEntity, errCodeParseFailure, err.Error())
	case errors.Is(err, domain.ErrImportRead):
		httpx.AbortError(c, http.StatusBadRequest, errCodeReadFailure, err.Error())
	default:
		h.log.Errorf(ctx, "Import failed err=%v", err)
		httpx.AbortError(c, http.StatusInternalServerError, errCodeInternal, "")
	}
}

// importSource — поток файла и формат: явный ?format= важнее расширения имени файла.
func (h *Handler) importSource(c *gin.Context) (io.Reader, domain.ImportFormat, func(), error) {
	explicit := domain.ParseImportFormat(c.Query("format"))

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.Request.Body, explicit, func() {}, nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", nil, fmt.Errorf("form field %q: %w", "file", err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}

	kind := explicit
	if kind == domain.ImportAuto {
		kind = domain.ImportFormatFromName(fh.Filename)
	}
	return f, kind, func() { _ = f.Close() }, nil
}

func nonNilWarnings(w []domain.ImportWarning) []domain.ImportWarning {
	if w == nil {
		return []domain.ImportWarning{}
	}
	return w
}

// --- события сессии ---

func (h *Handler) currentDashboard(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	spec, view := h.service.Current(ctx)
	h.respondDashboard(c, ctx, spec, view)
}

type statusRequest struct {
	Status string `json:"status"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type sortRequest struct {
	Sort string `json:"sort" binding:"required"`
}

func (h *Handler) setStatusFilter(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	spec, view := h.service.SetStatusFilter(ctx, req.Status)
	h.respondDashboard(c, ctx, spec, view)
}

func (h *Handler) setSearchQuery(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	spec, view := h.service.SetSearchQuery(ctx, req.Query)
	h.respondDashboard(c, ctx, spec, view)
}

func (h *Handler) setSortKey(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return
	}
	key, err := domain.ParseSortKey(req.Sort)
	if err != nil {
		httpx.AbortError(c, http.StatusBadRequest, errCodeInvalidSort, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	spec, view := h.service.SetSortKey(ctx, key)
	h.respondDashboard(c, ctx, spec, view)
}
