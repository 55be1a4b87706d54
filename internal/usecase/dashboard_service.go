package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/export"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/internal/query"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
)

// Проверка, что DashboardService удовлетворяет интерфейсу ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardService — состояние панели заказов и обработчики её событий (без знаний о транспорте).
// Каждое событие: изменить состояние, затем пересчитать представление; под одной блокировкой.
type DashboardService struct {
	store    ports.OrderStore    // авторитетный набор заказов
	cache    ports.ViewCache     // кэш вычисленных представлений
	importer ports.OrderImporter // разбор таблиц
	log      ports.Logger

	mu   sync.Mutex
	spec domain.QuerySpec
}

// NewDashboardService — DI-конструктор. Сессия стартует с параметрами по умолчанию.
func NewDashboardService(
	store ports.OrderStore,
	cache ports.ViewCache,
	importer ports.OrderImporter,
	log ports.Logger,
) *DashboardService {
	return &DashboardService{
		store:    store,
		cache:    cache,
		importer: importer,
		log:      log,
		spec:     domain.DefaultQuerySpec(),
	}
}

// Query — представление для произвольных параметров; состояние сессии не меняется.
func (s *DashboardService) Query(ctx context.Context, spec domain.QuerySpec) domain.View {
	orders, gen := s.store.Snapshot(ctx)
	return s.evaluate(ctx, orders, gen, spec)
}

func (s *DashboardService) evaluate(ctx context.Context, orders []domain.Order, gen uint64, spec domain.QuerySpec) domain.View {
	if view, found := s.cache.Get(ctx, gen, spec); found {
		return view
	}

	view := query.Evaluate(orders, spec)
	metrics.QueryEvaluations.WithLabelValues(string(spec.SortKey)).Inc()

	if err := s.cache.Set(ctx, gen, spec, view); err != nil {
		s.log.Warnf(ctx, "view cache set failed gen=%d err=%v", gen, err)
	}
	return view
}

// Current — текущие параметры сессии и представление для них.
func (s *DashboardService) Current(ctx context.Context) (domain.QuerySpec, domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.spec, s.Query(ctx, s.spec)
}

// SetStatusFilter — пустое значение означает «все статусы».
func (s *DashboardService) SetStatusFilter(ctx context.Context, status string) (domain.QuerySpec, domain.View) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = domain.StatusAll
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec.StatusFilter = status
	return s.spec, s.Query(ctx, s.spec)
}

// SetSearchQuery — строка запроса хранится как введена; нормализация в конвейере.
func (s *DashboardService) SetSearchQuery(ctx context.Context, q string) (domain.QuerySpec, domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec.SearchQuery = q
	return s.spec, s.Query(ctx, s.spec)
}

func (s *DashboardService) SetSortKey(ctx context.Context, key domain.SortKey) (domain.QuerySpec, domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spec.SortKey = key
	return s.spec, s.Query(ctx, s.spec)
}

// GetOrder — поиск по полному набору, независимо от фильтров сессии.
func (s *DashboardService) GetOrder(ctx context.Context, id string) (*domain.Order, bool) {
	return s.store.FindByID(ctx, id)
}

// ExportCSV — выгрузка всего набора в порядке хранения.
func (s *DashboardService) ExportCSV(ctx context.Context, w io.Writer) error {
	orders, _ := s.store.Snapshot(ctx)
	if err := export.WriteCSV(w, orders); err != nil {
		s.log.Errorf(ctx, "csv export failed orders=%d err=%v", len(orders), err)
		return fmt.Errorf("export csv: %w", err)
	}
	s.log.Infof(ctx, "csv export orders=%d", len(orders))
	return nil
}

// Import — импорт таблицы. Шаги:
//  1. разбор целиком (ошибка — хранилище и параметры не трогаем);
//  2. замена набора целиком;
//  3. сброс строки поиска;
//  4. один пересчёт представления.
func (s *DashboardService) Import(ctx context.Context, r io.Reader, format domain.ImportFormat) (domain.ImportOutcome, error) {
	start := time.Now()

	res, err := s.importer.Parse(ctx, r, format)
	if err != nil {
		metrics.Imports.WithLabelValues(importResultLabel(err)).Inc()
		s.log.Warnf(ctx, "import rejected format=%s err=%v", format, err)
		return domain.ImportOutcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.store.Replace(ctx, res.Orders)
	s.spec.SearchQuery = ""
	view := s.evaluate(ctx, res.Orders, gen, s.spec)

	metrics.Imports.WithLabelValues("ok").Inc()
	metrics.ImportedRows.Add(float64(len(res.Orders)))
	if len(res.Warnings) > 0 {
		s.log.Warnf(ctx, "import applied with %d cell warnings", len(res.Warnings))
	}
	s.log.Infof(ctx, "import applied orders=%d gen=%d took=%s", len(res.Orders), gen, time.Since(start))

	return domain.ImportOutcome{
		Imported: len(res.Orders),
		Warnings: res.Warnings,
		Spec:     s.spec,
		View:     view,
	}, nil
}

// ImportFromMessage — импорт из сообщения Kafka: name — имя файла (подсказка формата).
func (s *DashboardService) ImportFromMessage(ctx context.Context, name string, raw []byte) error {
	out, err := s.Import(ctx, bytes.NewReader(raw), domain.ImportFormatFromName(name))
	if err != nil {
		return fmt.Errorf("import %q: %w", name, err)
	}
	s.log.Infof(ctx, "message import name=%q orders=%d", name, out.Imported)
	return nil
}

// LoadSeed — начальная загрузка хранилища из источника.
func (s *DashboardService) LoadSeed(ctx context.Context, src ports.SeedSource) error {
	start := time.Now()
	orders, err := src.Load(ctx)
	if err != nil {
		s.log.Errorf(ctx, "seed load failed err=%v", err)
		return fmt.Errorf("load seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.store.Replace(ctx, orders)
	s.log.Infof(ctx, "seed loaded orders=%d gen=%d in %s", len(orders), gen, time.Since(start))
	return nil
}

func importResultLabel(err error) string {
	if errors.Is(err, domain.ErrImportParse) {
		return "parse_failure"
	}
	return "read_failure"
}
