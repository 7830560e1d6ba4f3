// printtest sends the printer test page: connect to the saved device
// (or the console stand-in) and print, reporting the result.
package main

import (
	"context"
	"log"
	"os"

	"github.com/danie1204clmm-ctrl/diegao/internal/config"
	"github.com/danie1204clmm-ctrl/diegao/internal/kv"
	"github.com/danie1204clmm-ctrl/diegao/internal/logger"
	"github.com/danie1204clmm-ctrl/diegao/internal/printer"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := kv.InitDB(cfg.DBPath)
	defer database.Close()
	store := kv.NewStore(database)

	driver := printer.NewConsoleDriver(os.Stdout, []printer.Device{
		{Name: "Console Thermal Printer", Address: "console"},
	})
	svc := printer.NewService(driver, store)

	res := svc.PrintTest(context.Background())
	if !res.OK {
		log.Fatalf("Test print failed: %s", res.Reason)
	}
	log.Println("Test print sent")
}
