package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of import messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of import messages applied successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of import messages failed to apply",
		},
		[]string{"topic"},
	)
)

var (
	ViewCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_cache_operations_total",
			Help: "View cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|stale
	)
	ViewCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "view_cache_size",
			Help: "Number of evaluated views currently in cache",
		},
	)
)

var (
	StoreSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_store_size",
			Help: "Number of orders in the order store",
		},
	)
	StoreGeneration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_store_generation",
			Help: "Number of wholesale replacements of the order store",
		},
	)
	QueryEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_evaluations_total",
			Help: "Query pipeline evaluations",
		},
		[]string{"sort"},
	)
	Imports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_imports_total",
			Help: "Spreadsheet imports by result",
		},
		[]string{"result"}, // ok|read_failure|parse_failure
	)
	ImportedRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_import_rows_total",
			Help: "Rows accepted by successful imports",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			ViewCacheOps, ViewCacheSize,
			StoreSize, StoreGeneration, QueryEvaluations, Imports, ImportedRows,
		)
	})
}
