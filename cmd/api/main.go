package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_server/internal/adapters/http_server"
	"hotel_server/internal/adapters/observability"
	redisad "hotel_server/internal/adapters/redis"
	"hotel_server/internal/app"
	"hotel_server/internal/domain"
	"hotel_server/internal/shared"
	"hotel_server/internal/storage/memory"
	mysqlrepo "hotel_server/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store := memory.New(loadBookings(cfg.BookingsFile))
	bookings := app.NewBookingService(store)
	directory := app.NewDirectoryService(repo, cache, cfg.CacheTTL)

	// http
	srv := server.New(cfg.WriteRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Bookings: bookings, Directory: directory})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// loadBookings reads the optional JSON fixture the booking store starts from.
func loadBookings(path string) []domain.Booking {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("read bookings file failed")
	}
	var seed []domain.Booking
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("decode bookings file failed")
	}
	log.Info().Int("count", len(seed)).Msg("bookings loaded")
	return seed
}
