package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"metalprices-service/internal/application"
	"metalprices-service/internal/domain"
)

const recordCols = "date::text, shanghai, rate_twd, lme, usd_cny, gold"

// RecordRepo persists one row per calendar date in daily_prices.
type RecordRepo struct{ db *DB }

var _ application.RecordRepo = (*RecordRepo)(nil)

func NewRecordRepo(db *DB) *RecordRepo { return &RecordRepo{db: db} }

func scanRecord(row pgx.Row) (domain.DailyRecord, error) {
	var r domain.DailyRecord
	err := row.Scan(&r.Date, &r.Shanghai, &r.RateTWD, &r.LME, &r.UsdCny, &r.Gold)
	return r, err
}

func (r *RecordRepo) Get(ctx context.Context, date string) (domain.DailyRecord, error) {
	const q = `SELECT ` + recordCols + ` FROM daily_prices WHERE date=$1`
	rec, err := scanRecord(r.db.Pool.QueryRow(ctx, q, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DailyRecord{}, application.ErrNotFound
	}
	if err != nil {
		return domain.DailyRecord{}, err
	}
	return rec, nil
}

func (r *RecordRepo) Insert(ctx context.Context, rec domain.DailyRecord) (domain.DailyRecord, error) {
	const ins = `
        INSERT INTO daily_prices(date, shanghai, rate_twd, lme, usd_cny, gold)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + recordCols
	return scanRecord(r.db.Pool.QueryRow(ctx, ins,
		rec.Date, rec.Shanghai, rec.RateTWD, rec.LME, rec.UsdCny, rec.Gold))
}

// Update writes only the given fields of the date's row. Field names
// come from domain.RecordFields, which match the column names; anything
// else is ignored.
func (r *RecordRepo) Update(ctx context.Context, date string, fields map[string]float64) (domain.DailyRecord, error) {
	set := make([]string, 0, len(fields))
	args := []any{date}
	for _, f := range domain.RecordFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s=$%d", f, len(args)))
	}
	if len(set) == 0 {
		return r.Get(ctx, date)
	}

	q := `UPDATE daily_prices SET ` + strings.Join(set, ", ") + ` WHERE date=$1 RETURNING ` + recordCols
	rec, err := scanRecord(r.db.Pool.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DailyRecord{}, application.ErrNotFound
	}
	if err != nil {
		return domain.DailyRecord{}, err
	}
	return rec, nil
}

func (r *RecordRepo) Range(ctx context.Context, from, to string) ([]domain.DailyRecord, error) {
	const q = `
        SELECT ` + recordCols + `
        FROM daily_prices
        WHERE date BETWEEN $1 AND $2
        ORDER BY date DESC`
	rows, err := r.db.Pool.Query(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
