package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/dtran/taskwise/internal/api"
	"github.com/dtran/taskwise/internal/auth"
	"github.com/dtran/taskwise/internal/config"
	"github.com/dtran/taskwise/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	authSvc := auth.NewService(st, cfg.TokenSecret)
	server := api.NewServer(st, authSvc, cfg.CORSOrigins, cfg.CookieSecure)

	log.Printf("Starting server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, server.Router()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
