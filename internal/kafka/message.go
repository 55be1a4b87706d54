package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// FilenameHeader — заголовок с именем файла; приоритетнее ключа сообщения.
const FilenameHeader = "filename"

// messageName — имя файла из заголовка или ключа; иначе topic-partition-offset.
func messageName(msg *kafka.Message) string {
	for _, h := range msg.Headers {
		if strings.EqualFold(h.Key, FilenameHeader) && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	if len(msg.Key) > 0 {
		return string(msg.Key)
	}
	return fmt.Sprintf("%s-%d-%d", msg.Topic, msg.Partition, msg.Offset)
}

// handleMessage — импорт одного сообщения; true — оффсет нужно закоммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	name := messageName(msg)

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.importer.ImportFromMessage(ctxTimeout, name, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, domain.ErrImportParse):
		// файл не станет лучше при повторе
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "unparseable file name=%q offset=%d: %v (skipped)", name, msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "import failed name=%q offset=%d: %v (will retry without commit)", name, msg.Offset, err)
		return false
	}
}

// commitSafely — ошибка коммита только логируется.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}
