package database

import (
	"context"
	"fmt"
	"strconv"

	"realestate-listings/internal/config"
	"realestate-listings/internal/logger"
)

// Open builds the store selected by cfg.Type and prepares its schema.
func Open(ctx context.Context, cfg config.DatabaseConfig) (PropertyStore, error) {
	switch cfg.Type {
	case "", "memory":
		logger.Log.Info("Using in-memory property store")
		return NewMemoryStore(), nil

	case "mysql":
		logger.Log.Info("Using MySQL with GORM")
		m := cfg.MySQL
		store, err := NewGormStore(m.Host, portString(m.Port, "3306"), m.User, m.Password, m.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}
		if err := store.InitSchema(); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return store, nil

	case "postgres":
		logger.Log.Info("Using PostgreSQL")
		p := cfg.Postgres
		store, err := NewPostgresStore(p.Host, portString(p.Port, "5432"), p.User, p.Password, p.Database, p.SSLMode)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if err := store.InitSchema(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown database type %q", cfg.Type)
}

func portString(port int, fallback string) string {
	if port > 0 {
		return strconv.Itoa(port)
	}
	return fallback
}
