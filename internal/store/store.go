// Package store persists the station cache in a local SQLite database.
// Trains are session state and are never persisted; stations survive
// restarts so the UI has something to show before the first fetch
// completes.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"railboard.fi/internal/models"
)

// Store wraps the SQLite connection holding cached station rows.
type Store struct {
	db *sql.DB
}

// Open creates the database at path (":memory:" for tests) and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS stations (
			code INTEGER PRIMARY KEY,
			short_code TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			passenger_traffic INTEGER NOT NULL,
			country_code TEXT NOT NULL,
			longitude REAL NOT NULL,
			latitude REAL NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceStations atomically replaces the whole station snapshot:
// delete then insert inside one transaction, no partial merge.
func (s *Store) ReplaceStations(ctx context.Context, stations []models.Station) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stations;`); err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error clearing stations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (
			code, short_code, name, type, passenger_traffic,
			country_code, longitude, latitude
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, station := range stations {
		_, err := stmt.ExecContext(ctx,
			station.Code, station.ShortCode, station.Name, station.Type.String(),
			station.PassengerTraffic, station.CountryCode, station.Longitude, station.Latitude,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting station %d: %w", station.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// Stations reads back the latest station snapshot, ordered by code. An
// empty database yields an empty slice, not an error.
func (s *Store) Stations(ctx context.Context) ([]models.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, short_code, name, type, passenger_traffic,
		       country_code, longitude, latitude
		FROM stations ORDER BY code;
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stations []models.Station
	for rows.Next() {
		var station models.Station
		var stationType string
		if err := rows.Scan(
			&station.Code, &station.ShortCode, &station.Name, &stationType,
			&station.PassengerTraffic, &station.CountryCode, &station.Longitude, &station.Latitude,
		); err != nil {
			return nil, fmt.Errorf("error scanning station: %w", err)
		}
		station.Type, err = models.ParseStationType(stationType)
		if err != nil {
			return nil, fmt.Errorf("error reading station %d: %w", station.Code, err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}
	return stations, nil
}
