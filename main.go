package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"solat-assistant/logger"
)

func main() {
	// Replies go to stdout; logs stay on stderr.
	logger.Install(logger.NewWithWriter("solat-assistant", os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
