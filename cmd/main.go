package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/samandr77/microservices/amocrm/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	err := cli.NewRoot(afero.NewOsFs()).ExecuteContext(ctx)
	if err != nil {
		cancel()
		os.Exit(1)
	}
}
