package memory

import (
	"container/list"
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
)

// Проверка, что ViewCacheLRU удовлетворяет интерфейсу ports.ViewCache.
var _ ports.ViewCache = (*ViewCacheLRU)(nil)

type entry struct {
	key        string
	generation uint64
	view       domain.View
	expiresAt  time.Time
}

// ViewCacheLRU — LRU-кэш вычисленных представлений с TTL.
// Записи привязаны к поколению хранилища: Set с более новым поколением вычищает все старые.
type ViewCacheLRU struct {
	capacity int
	ttl      time.Duration

	ll     *list.List
	index  map[string]*list.Element
	latest uint64

	mu sync.Mutex
}

func NewViewCacheLRU(capacity int, ttl time.Duration) *ViewCacheLRU {
	if capacity <= 0 {
		capacity = 1
	}
	return &ViewCacheLRU{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *ViewCacheLRU) Get(_ context.Context, generation uint64, spec domain.QuerySpec) (domain.View, bool) {
	now := time.Now()
	key := cacheKey(generation, spec)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.ViewCacheOps.WithLabelValues("miss").Inc()
		return domain.View{}, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.ViewCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.ViewCacheSize.Set(float64(len(c.index)))
		return domain.View{}, false
	}
	c.ll.MoveToFront(elem)

	metrics.ViewCacheOps.WithLabelValues("hit").Inc()
	return ent.view.Clone(), true
}

func (c *ViewCacheLRU) Set(_ context.Context, generation uint64, spec domain.QuerySpec, view domain.View) error {
	now := time.Now()
	key := cacheKey(generation, spec)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation < c.latest {
		// результат по уже заменённому набору никому не нужен
		return nil
	}
	if generation > c.latest {
		c.latest = generation
		c.dropStale()
	}

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.view = view.Clone()
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:        key,
		generation: generation,
		view:       view.Clone(),
		expiresAt:  c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.ViewCacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len — число записей в кэше.
func (c *ViewCacheLRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// ------вспомогательные функции------

// cacheKey — ключ по поколению и нормализованным параметрам: поиск сравнивается
// без учёта регистра и крайних пробелов, поэтому «Anita » и «anita» дают одно представление.
func cacheKey(generation uint64, spec domain.QuerySpec) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(generation, 10))
	b.WriteByte('\x00')
	b.WriteString(spec.StatusFilter)
	b.WriteByte('\x00')
	b.WriteString(strings.ToLower(strings.TrimSpace(spec.SearchQuery)))
	b.WriteByte('\x00')
	b.WriteString(string(spec.SortKey))
	return b.String()
}

func (c *ViewCacheLRU) dropStale() {
	for elem := c.ll.Back(); elem != nil; {
		prev := elem.Prev()
		if ent := elem.Value.(*entry); ent.generation < c.latest {
			c.removeElement(elem)
			metrics.ViewCacheOps.WithLabelValues("stale").Inc()
		}
		elem = prev
	}
	metrics.ViewCacheSize.Set(float64(len(c.index)))
}

func (c *ViewCacheLRU) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.ViewCacheOps.WithLabelValues("evicted").Inc()
		metrics.ViewCacheSize.Set(float64(len(c.index)))
	}
}

func (c *ViewCacheLRU) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

func (c *ViewCacheLRU) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *ViewCacheLRU) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (c *ViewCacheLRU) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.ViewCacheOps.WithLabelValues("expired").Inc()
			metrics.ViewCacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}
