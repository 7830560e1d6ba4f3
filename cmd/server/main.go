package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/danie1204clmm-ctrl/diegao/internal/api"
	"github.com/danie1204clmm-ctrl/diegao/internal/cart"
	"github.com/danie1204clmm-ctrl/diegao/internal/catalog"
	"github.com/danie1204clmm-ctrl/diegao/internal/config"
	"github.com/danie1204clmm-ctrl/diegao/internal/kv"
	"github.com/danie1204clmm-ctrl/diegao/internal/logger"
	"github.com/danie1204clmm-ctrl/diegao/internal/middleware"
	"github.com/danie1204clmm-ctrl/diegao/internal/order"
	"github.com/danie1204clmm-ctrl/diegao/internal/printer"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := kv.InitDB(cfg.DBPath)
	defer database.Close()
	store := kv.NewStore(database)

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	orders := order.NewService(context.Background(), order.NewRepository(store))

	// stands in for the Bluetooth escpos driver until the till runs on
	// hardware with a paired printer
	driver := printer.NewConsoleDriver(os.Stdout, []printer.Device{
		{Name: "Console Thermal Printer", Address: "console"},
	})
	printSvc := printer.NewService(driver, store)

	srv := api.NewServer(cfg, cat, cart.New(cat), orders, printSvc)

	var handler http.Handler = srv.Routes()
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	log.Printf("🥟 POS server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe("127.0.0.1:"+cfg.AppPort, handler))
}
