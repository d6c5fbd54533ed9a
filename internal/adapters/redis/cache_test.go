package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_server/internal/adapters/redis"
	"hotel_server/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missed domain.Hotel
	ok, err := c.Get(ctx, "hotel:1", &missed)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := domain.Hotel{ID: 1, Name: "The Grand", Rooms: 40, Postcode: "AB1 2CD"}
	if err := c.Set(ctx, "hotel:1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Hotel
	ok, err = c.Get(ctx, "hotel:1", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}

	if err := c.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "hotel:1", &out)
	if ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCacheSetExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", domain.Customer{ID: 1, Name: "Ann"}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var out domain.Customer
	ok, _ := c.Get(ctx, "k", &out)
	if ok {
		t.Fatalf("expected expiry")
	}
}
