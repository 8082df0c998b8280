package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"realestate-listings/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

var _ PropertyStore = (*PostgresStore)(nil)

// PostgresStore persists listings in PostgreSQL; images and features are JSONB.
type PostgresStore struct {
	conn *sql.DB
	now  func() time.Time
}

func NewPostgresStore(host, port, user, password, dbname, sslmode string) (*PostgresStore, error) {
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return &PostgresStore{conn: conn, now: time.Now}, nil
}

func (db *PostgresStore) Close() error {
	return db.conn.Close()
}

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS properties (
		id VARCHAR(36) PRIMARY KEY,
		type VARCHAR(20) NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL CHECK (price >= 0),
		price_type VARCHAR(20) NOT NULL,
		size_value REAL NOT NULL CHECK (size_value > 0),
		size_unit VARCHAR(10) NOT NULL,
		address TEXT NOT NULL,
		city VARCHAR(100) NOT NULL DEFAULT 'Cheyyar',
		state VARCHAR(10) NOT NULL DEFAULT 'TN',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		images JSONB NOT NULL,
		features JSONB NOT NULL,
		bedrooms INTEGER,
		bathrooms INTEGER,
		status VARCHAR(20) NOT NULL DEFAULT 'available',
		date_listed TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		contact_name TEXT NOT NULL,
		contact_phone TEXT NOT NULL,
		views INTEGER NOT NULL DEFAULT 0,
		seq BIGSERIAL NOT NULL UNIQUE
	);

	ALTER TABLE properties ADD COLUMN IF NOT EXISTS seq BIGSERIAL;

	CREATE INDEX IF NOT EXISTS idx_properties_date_listed ON properties(date_listed DESC);
	CREATE INDEX IF NOT EXISTS idx_properties_type ON properties(type);
	CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status);
	`

// InitSchema creates the properties table if it doesn't exist. seq keeps
// insertion order; tables created without it get the column added.
func (db *PostgresStore) InitSchema(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, postgresSchema)
	return err
}

const selectColumns = `
	SELECT id, type, title, description, price, price_type, size_value, size_unit,
		   address, city, state, latitude, longitude, images, features,
		   bedrooms, bathrooms, status, date_listed, contact_name, contact_phone, views
	FROM properties`

const listQuery = selectColumns + ` ORDER BY seq`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	var images, features []byte
	err := row.Scan(
		&p.ID, &p.Type, &p.Title, &p.Description, &p.Price, &p.PriceType, &p.SizeValue, &p.SizeUnit,
		&p.Address, &p.City, &p.State, &p.Latitude, &p.Longitude, &images, &features,
		&p.Bedrooms, &p.Bathrooms, &p.Status, &p.DateListed, &p.ContactName, &p.ContactPhone, &p.Views,
	)
	if err != nil {
		return p, err
	}
	if err := decodeList(images, &p.Images); err != nil {
		return p, fmt.Errorf("decode images of %s: %w", p.ID, err)
	}
	if err := decodeList(features, &p.Features); err != nil {
		return p, fmt.Errorf("decode features of %s: %w", p.ID, err)
	}
	return p, nil
}

func decodeList(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func encodeList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func (db *PostgresStore) List(ctx context.Context) ([]models.Property, error) {
	rows, err := db.conn.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (db *PostgresStore) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := scanProperty(db.conn.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *PostgresStore) Insert(ctx context.Context, in models.PropertyInput) (models.Property, error) {
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}
	p := in.ToProperty(uuid.NewString(), db.now())
	p.DateListed = storedTime(p.DateListed)

	images, err := encodeList(p.Images)
	if err != nil {
		return models.Property{}, err
	}
	features, err := encodeList(p.Features)
	if err != nil {
		return models.Property{}, err
	}

	query := `
	INSERT INTO properties (
		id, type, title, description, price, price_type, size_value, size_unit,
		address, city, state, latitude, longitude, images, features,
		bedrooms, bathrooms, status, date_listed, contact_name, contact_phone, views
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err = db.conn.ExecContext(ctx, query,
		p.ID, p.Type, p.Title, p.Description, p.Price, p.PriceType, p.SizeValue, p.SizeUnit,
		p.Address, p.City, p.State, p.Latitude, p.Longitude, images, features,
		p.Bedrooms, p.Bathrooms, p.Status, p.DateListed, p.ContactName, p.ContactPhone, p.Views)
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// IncrementViews is a single UPDATE ... RETURNING, atomic under concurrent requests.
func (db *PostgresStore) IncrementViews(ctx context.Context, id string) (*models.Property, error) {
	query := `
	UPDATE properties SET views = views + 1 WHERE id = $1
	RETURNING id, type, title, description, price, price_type, size_value, size_unit,
		address, city, state, latitude, longitude, images, features,
		bedrooms, bathrooms, status, date_listed, contact_name, contact_phone, views
	`
	p, err := scanProperty(db.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
