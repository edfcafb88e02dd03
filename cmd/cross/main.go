package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/slint-ui/cross/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		cli.Shell().Fatal(err.Error(), 1)
	}
}
