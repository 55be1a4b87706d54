package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
)

// Проверка, что OrderStore удовлетворяет интерфейсу ports.OrderStore.
var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore — набор заказов в памяти. Содержимое заменяется только целиком;
// каждая замена увеличивает поколение, по которому кэш представлений отличает устаревшие записи.
type OrderStore struct {
	orders     []domain.Order
	generation uint64

	mu sync.RWMutex
}

// NewOrderStore — хранилище с начальным набором (копируется).
func NewOrderStore(seed []domain.Order) *OrderStore {
	s := &OrderStore{orders: domain.CloneOrders(seed)}
	metrics.StoreSize.Set(float64(len(s.orders)))
	return s
}

func (s *OrderStore) Snapshot(_ context.Context) ([]domain.Order, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneOrders(s.orders), s.generation
}

func (s *OrderStore) Replace(_ context.Context, orders []domain.Order) uint64 {
	next := domain.CloneOrders(orders)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = next
	s.generation++

	metrics.StoreSize.Set(float64(len(next)))
	metrics.StoreGeneration.Set(float64(s.generation))
	return s.generation
}

// FindByID — при дубликатах id возвращается первый по порядку набора.
func (s *OrderStore) FindByID(_ context.Context, id string) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, true
		}
	}
	return nil, false
}

// Len — текущее число заказов.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
