package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_server/internal/adapters/observability"
	"hotel_server/internal/domain"
	"hotel_server/internal/shared"
	mysqlrepo "hotel_server/internal/storage/mysql"
)

type seedBooking struct {
	Hotel        string `json:"hotel"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type seedCustomer struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Bookings []seedBooking `json:"bookings"`
}

type seedFile struct {
	Hotels    []domain.Hotel `json:"hotels"`
	Customers []seedCustomer `json:"customers"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal().Err(err).Msg("decode seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	// Hotels first: customer bookings reference them by name.
	hotelIDs := make(map[string]int64, len(seed.Hotels))
	for _, h := range seed.Hotels {
		created, err := repo.CreateHotel(ctx, h)
		if err != nil {
			log.Fatal().Err(err).Str("hotel", h.Name).Msg("create hotel failed")
		}
		hotelIDs[created.Name] = created.ID
	}
	log.Info().Int("hotels", len(hotelIDs)).Msg("hotels seeded")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, c := range seed.Customers {
		c := c

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sc seedCustomer) {
			defer wg.Done()
			defer sem.Release(int64(1))

			cust, err := repo.InsertCustomer(ctx, domain.Customer{Name: sc.Name, Email: sc.Email})
			if err != nil {
				log.Warn().Err(err).Str("customer", sc.Name).Msg("insert customer failed")
				return
			}
			for _, b := range sc.Bookings {
				hid, ok := hotelIDs[b.Hotel]
				if !ok {
					log.Warn().Str("customer", sc.Name).Str("hotel", b.Hotel).Msg("unknown hotel, booking skipped")
					continue
				}
				if err := repo.InsertBooking(ctx, cust.ID, hid, b.RoomID, b.CheckInDate, b.CheckOutDate); err != nil {
					log.Warn().Err(err).Str("customer", sc.Name).Msg("insert booking failed")
				}
			}
			log.Info().Str("customer", sc.Name).Int("bookings", len(sc.Bookings)).Msg("customer seeded")
		}(c)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
