package main

import (
	"context"
	"log"

	"zorva-be/internal/bootstrap"
	"zorva-be/internal/config"
	"zorva-be/internal/server"
	"zorva-be/pkg/database"
	"zorva-be/pkg/tracer"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer("zorva-be")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()
	container.Logger.Info("main", "Service starting", map[string]interface{}{
		"port":        cfg.App.Port,
		"environment": cfg.App.Environment,
	})

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Reconciler Service...")
		if err := container.ReconcilerService.Consume(context.Background()); err != nil {
			log.Printf("Background Reconciler Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
