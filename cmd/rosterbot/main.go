package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const (
	appVersion  = "dev"
	serviceName = "team-roster-bot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
