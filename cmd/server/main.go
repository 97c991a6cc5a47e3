package main

import (
	"context"
	"log"
	"net/http"

	"campus_transport/internal/config"
	"campus_transport/internal/logger"
	"campus_transport/internal/middleware"
	"campus_transport/internal/routes"
	"campus_transport/internal/seed"
	"campus_transport/internal/service"
	"campus_transport/internal/session"
	"campus_transport/internal/store"
)

func main() {
	// Load settings and initialize structured logging to file
	cfg := config.Load()
	logger.Setup(cfg.LogFile)

	// Connect to the database and migrate the schema
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	st := store.New(db)
	ctx := context.Background()

	// Seed fixture data on first boot
	if err := seed.Bootstrap(ctx, st); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// Expired sessions carry no meaning across restarts
	if err := st.PurgeExpiredSessions(ctx); err != nil {
		log.Printf("session purge failed: %v", err)
	}

	sessions := session.NewManager(st, cfg.SessionSecret, cfg.SessionTTL)
	services := service.New(st, sessions)

	// Setup Gin router (recovery + request logging live inside)
	r := routes.SetupRouter(routes.Deps{Sessions: sessions, Services: services})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
