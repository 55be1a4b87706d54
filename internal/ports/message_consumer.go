package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (останавливается отменой контекста).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
