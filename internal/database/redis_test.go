package database

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
)

func TestNewRedisClientDisabled(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), &config.Config{}, zerolog.Nop())
	if err != nil || rdb != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", rdb, err)
	}
}

func TestNewRedisClientConnects(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	rdb, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "redis://" + mr.Addr() + "/0"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rdb.Close()
}

func TestNewRedisClientBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "://nope"}, zerolog.Nop()); err == nil {
		t.Fatal("expected parse error")
	}
}
