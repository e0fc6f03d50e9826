package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:3200", "certstash address")
	caller := flag.String("caller", "checkcertstash", "caller token sent with every request")
	duration := flag.Duration("duration", time.Minute, "how long to run, 0 - until interrupted")
	workers := flag.Int("workers", 2, "goroutines per pipeline stage")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	checker, err := NewChecker(*addr, *caller, *workers, logger)
	if err != nil {
		sugar.Fatalw("NewChecker", "error", err)
	}

	checker.Go(ctx)
	if err := checker.Wait(); err != nil {
		sugar.Fatalw("check", "error", err)
	}
}
