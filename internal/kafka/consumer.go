// Package kafka — лента импорта: каждое сообщение несёт файл таблицы заказов.
// Ключ сообщения (или заголовок filename) — имя файла, по расширению выбирается формат.
package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// orderImporter — импорт файла целиком с заменой набора заказов.
type orderImporter interface {
	ImportFromMessage(ctx context.Context, name string, raw []byte) error
}

// Consumer — kafka.Reader + импорт заказов.
type Consumer struct {
	reader         reader
	importer       orderImporter
	log            ports.Logger
	processTimeout time.Duration
	retry          *backoff
	closeOnce      sync.Once
}

// NewConsumer — конструктор; незаданные таймауты берутся по умолчанию.
func NewConsumer(cfg *ConsumerConfig, importer orderImporter, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), importer, log,
		orDefault(cfg.ProcessTimeout, DefaultProcessTimeout),
		newBackoff(
			orDefault(cfg.RetryInitial, DefaultRetryInitial),
			orDefault(cfg.RetryMax, DefaultRetryMax),
			rand.New(rand.NewSource(time.Now().UnixNano())),
		),
	)
}

func newConsumer(r reader, importer orderImporter, log ports.Logger, processTimeout time.Duration, retry *backoff) *Consumer {
	return &Consumer{
		reader:         r,
		importer:       importer,
		log:            log,
		processTimeout: processTimeout,
		retry:          retry,
	}
}

// Run — основной цикл до отмены контекста:
//   - сообщение читается без авто-коммита;
//   - импорт применён → коммит;
//   - файл не разобрался → лог и коммит (повтор ничего не изменит);
//   - прочие ошибки → без коммита, повтор того же сообщения с backoff (at-least-once).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka import feed started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d := c.retry.next()
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, d)
			if !sleep(ctx, d) {
				return ctx.Err()
			}
			continue
		}

		c.retry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.processWithRetry(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
		c.commitSafely(ctx, &msg)
	}
}

// processWithRetry — импорт того же сообщения до применения или ошибки разбора.
// Следующий FetchMessage допустим только после выхода отсюда.
// false — контекст отменён, сообщение не закоммичено.
func (c *Consumer) processWithRetry(ctx context.Context, topic string, msg *kafka.Message) bool {
	defer c.retry.reset()

	for {
		if c.handleMessage(ctx, topic, msg) {
			return true
		}
		if !sleep(ctx, c.retry.next()) {
			return false
		}
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
