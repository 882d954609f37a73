package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/atinyakov/paquetes/internal/client/shell"
	"github.com/atinyakov/paquetes/internal/client/transport"
	"github.com/atinyakov/paquetes/internal/config"
	"github.com/atinyakov/paquetes/internal/logger"
	"go.uber.org/zap"
)

var (
	version   string
	buildDate string
)

// main parses flags and runs the interactive paquetes shell.
func main() {
	opts, err := config.LoadClient(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if opts.ShowVersion {
		fmt.Printf("Paquetes Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	lg := logger.New()
	if err := lg.Init(opts.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Log.Sync() }()

	httpClient, err := transport.NewHTTPClient(opts.CAFile, opts.Timeout)
	if err != nil {
		lg.Log.Fatal("cannot build HTTP client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(os.Stdin, os.Stdout, transport.New(httpClient, lg.Log), transport.NewEndpoints(opts.BaseURL), lg.Log)
	if err := sh.Run(ctx); err != nil {
		lg.Log.Fatal("shell stopped", zap.Error(err))
	}
}
