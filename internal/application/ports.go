package application

import (
	"context"

	"metalprices-service/internal/domain"
)

// RecordRepo is the persisted daily price store, keyed by calendar date
// in YYYY-MM-DD form.
type RecordRepo interface {
	Get(ctx context.Context, date string) (domain.DailyRecord, error)
	Insert(ctx context.Context, rec domain.DailyRecord) (domain.DailyRecord, error)
	Update(ctx context.Context, date string, fields map[string]float64) (domain.DailyRecord, error)
	Range(ctx context.Context, from, to string) ([]domain.DailyRecord, error)
}

// Sources is one complete adapter set, one method per external quote
// provider. The collector fans out across all five; implementations are
// selected at construction (live endpoints or deterministic fixtures).
type Sources interface {
	Shanghai(ctx context.Context) (domain.ShanghaiQuote, error)
	RateTWD(ctx context.Context) (string, error)
	LME(ctx context.Context) (domain.LMEQuote, error)
	UsdCny(ctx context.Context) (domain.FXQuote, error)
	Gold(ctx context.Context) (domain.GoldQuote, error)
}

// SnapshotCache holds the live view for a short TTL so bursts of latest
// calls do not hammer the upstreams. Both methods are best effort for
// callers: a cache failure never fails a read.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (LatestResult, bool, error)
	Set(ctx context.Context, key string, v LatestResult) error
}
