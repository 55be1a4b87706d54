// ordersctl — офлайн-доступ к панели заказов: просмотр, карточка заказа, выгрузка CSV, проверка файлов.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ordersctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
