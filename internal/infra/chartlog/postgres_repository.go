package chartlog

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

// PostgresRepository implements chart.HistoryRepository using pgx.
//
// Expected schema:
//
//	CREATE TABLE charts (
//	    id             UUID PRIMARY KEY,
//	    created_at     TIMESTAMPTZ NOT NULL,
//	    birth_date     TEXT NOT NULL,
//	    time_known     BOOLEAN NOT NULL,
//	    lat            DOUBLE PRECISION NOT NULL,
//	    lon            DOUBLE PRECISION NOT NULL,
//	    tz             TEXT NOT NULL,
//	    sun_sign       TEXT NOT NULL,
//	    moon_sign      TEXT,
//	    ascendant_sign TEXT
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert stores one computed chart.
func (r *PostgresRepository) Insert(ctx context.Context, rec chart.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO charts (id, created_at, birth_date, time_known, lat, lon, tz, sun_sign, moon_sign, ascendant_sign)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, rec.ID, rec.CreatedAt, rec.BirthDate, rec.TimeKnown, rec.Lat, rec.Lon, rec.Tz, rec.SunSign, rec.MoonSign, rec.AscendantSign)
	return err
}

// Recent fetches the newest records.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]chart.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, created_at, birth_date, time_known, lat, lon, tz, sun_sign, moon_sign, ascendant_sign
		FROM charts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chart.Record
	for rows.Next() {
		var (
			rec  chart.Record
			moon sql.NullString
			asc  sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.BirthDate, &rec.TimeKnown,
			&rec.Lat, &rec.Lon, &rec.Tz, &rec.SunSign, &moon, &asc); err != nil {
			return nil, err
		}
		if moon.Valid {
			rec.MoonSign = &moon.String
		}
		if asc.Valid {
			rec.AscendantSign = &asc.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ chart.HistoryRepository = (*PostgresRepository)(nil)
