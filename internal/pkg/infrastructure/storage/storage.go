package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows          = errors.New("no rows in result set")
	ErrQueryRow        = errors.New("could not execute query")
	ErrStoreFailed     = errors.New("could not store data")
	ErrNoID            = errors.New("data contains no id")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAlreadyResolved = errors.New("alert is already resolved")
	ErrSingleOpenAlert = errors.New("an open alert already exists for this sensor and type")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sites (
			site_id		TEXT NOT NULL,
			code		TEXT NOT NULL,
			name		TEXT NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sites PRIMARY KEY (site_id),
			CONSTRAINT uniq_sites_code UNIQUE (code)
		);

		CREATE TABLE IF NOT EXISTS sensor_assignments (
			assignment_id		TEXT NOT NULL,
			provider_sensor_id	TEXT NOT NULL,
			site_id				TEXT NOT NULL REFERENCES sites (site_id),
			location_type		TEXT NOT NULL DEFAULT '',
			active				BOOLEAN NOT NULL DEFAULT TRUE,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensor_assignments PRIMARY KEY (assignment_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_assignments_active_sensor
			ON sensor_assignments (provider_sensor_id) WHERE active;

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id		TEXT NOT NULL,
			sensor_id		TEXT NULL,
			site_id			TEXT NULL,
			alert_type		TEXT NOT NULL,
			severity		INT NOT NULL,
			message			TEXT NOT NULL DEFAULT '',
			current_value	NUMERIC NULL,
			threshold_value	NUMERIC NULL,
			resolved		BOOLEAN NOT NULL DEFAULT FALSE,
			resolved_at		timestamp with time zone NULL,
			resolved_by		TEXT NULL,
			resolved_note	TEXT NULL,
			observed_at		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS uniq_alerts_single_open
			ON alerts (sensor_id, alert_type) WHERE NOT resolved;

		CREATE INDEX IF NOT EXISTS alerts_site_idx ON alerts (site_id);
		CREATE INDEX IF NOT EXISTS alerts_resolved_idx ON alerts (resolved);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
