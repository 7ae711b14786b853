package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/placetui/api"
	"github.com/qyinm/placetui/config"
	"github.com/qyinm/placetui/mcpsrv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := mcpsrv.LoadConfig()

	source := api.New(appCfg.API.BaseURL, appCfg.Timeout())
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{MaxLimit: cfg.MaxLimit})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("stdio mcp server failed: %v", err)
	}
}
