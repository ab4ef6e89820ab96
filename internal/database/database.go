// Package database wraps a pgx connection pool behind a small Service
// interface so handlers can be constructed against an interface rather
// than a concrete pool.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dealerdesk-backend/internal/config"
)

// Service exposes the database to the rest of the application.
type Service interface {
	// GetPool returns the underlying pgx pool for queries and transactions.
	GetPool() *pgxpool.Pool

	// Health reports connectivity status, used by the health endpoint.
	// Write paths should be treated as unavailable while status != "up".
	Health() map[string]string

	// Close releases all pool connections.
	Close()
}

type service struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and verifies the connection before returning.
// Connection failure at startup is fatal: the store owns all persistent state.
func New(cfg *config.DBConfig) Service {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		log.Fatalf("Invalid DATABASE_URL: %v", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connected")
	return &service{pool: pool}
}

func (s *service) GetPool() *pgxpool.Pool {
	return s.pool
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		return map[string]string{
			"status":  "down",
			"message": fmt.Sprintf("database unreachable: %v", err),
		}
	}

	stats := s.pool.Stat()
	return map[string]string{
		"status":           "up",
		"open_connections": fmt.Sprintf("%d", stats.TotalConns()),
		"idle_connections": fmt.Sprintf("%d", stats.IdleConns()),
	}
}

func (s *service) Close() {
	s.pool.Close()
}
