package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"metalprices-service/internal/domain"
)

// historyDefaultDays is the trailing window served when no explicit
// range is given.
const historyDefaultDays = 30

type MarketService struct {
	records   RecordRepo
	collector *Collector
	cache     SnapshotCache
	clock     Clock
	log       *zap.Logger
}

type Option func(*MarketService)

func WithClock(c Clock) Option { return func(s *MarketService) { s.clock = c } }
func WithCache(c SnapshotCache) Option { return func(s *MarketService) { s.cache = c } }
func WithLogger(l *zap.Logger) Option { return func(s *MarketService) { s.log = l } }

func NewMarketService(records RecordRepo, collector *Collector, opts ...Option) *MarketService {
	s := &MarketService{
		records:   records,
		collector: collector,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// LatestResult is the live view served by the read path: the canonical
// record for today, the raw per-source payloads behind it, and an
// optional day-over-day change for the TWD rate derived from the most
// recent prior persisted record.
type LatestResult struct {
	Record        domain.DailyRecord `json:"record"`
	Sources       domain.Snapshot    `json:"sources"`
	RateTWDChange *float64           `json:"rate_twd_change,omitempty"`
}

// Latest runs a live collection pass and returns the normalized view.
// Nothing is persisted. Per-source failures surface only as nil fields,
// so Latest itself cannot fail.
func (s *MarketService) Latest(ctx context.Context) LatestResult {
	today := s.clock.Now().UTC().Format(DateLayout)

	if s.cache != nil {
		if res, ok, err := s.cache.Get(ctx, today); err != nil {
			s.log.Warn("latest_cache_get_failed", zap.Error(err))
		} else if ok {
			return res
		}
	}

	snap := s.collector.Collect(ctx)
	res := LatestResult{
		Record:  Normalize(today, snap),
		Sources: snap,
	}
	res.RateTWDChange = s.rateTWDChange(ctx, today, res.Record.RateTWD)

	if s.cache != nil {
		if err := s.cache.Set(ctx, today, res); err != nil {
			s.log.Warn("latest_cache_set_failed", zap.Error(err))
		}
	}
	return res
}

// rateTWDChange compares the live TWD rate against the most recent
// prior persisted record that holds one. Read-only and best effort: any
// failure yields nil, never an error.
func (s *MarketService) rateTWDChange(ctx context.Context, today string, current *float64) *float64 {
	if current == nil || s.records == nil {
		return nil
	}
	now := s.clock.Now().UTC()
	from := now.AddDate(0, 0, -historyDefaultDays).Format(DateLayout)
	to := now.AddDate(0, 0, -1).Format(DateLayout)

	recs, err := s.records.Range(ctx, from, to)
	if err != nil {
		s.log.Warn("rate_twd_change_lookup_failed", zap.Error(err))
		return nil
	}
	for _, r := range recs { // descending, first hit is most recent
		if r.Date >= today || r.RateTWD == nil {
			continue
		}
		d := *current - *r.RateTWD
		return &d
	}
	return nil
}

// History returns persisted records in [from, to], most recent first.
// Empty bounds default to the trailing 30 days.
func (s *MarketService) History(ctx context.Context, from, to string) ([]domain.DailyRecord, error) {
	now := s.clock.Now().UTC()
	if to == "" {
		to = now.Format(DateLayout)
	}
	if from == "" {
		from = now.AddDate(0, 0, -historyDefaultDays).Format(DateLayout)
	}
	return s.records.Range(ctx, from, to)
}

// ReconcileToday merges a canonical record into today's persisted row
// under the per-field maximum-wins policy. When rec is nil a live
// collection pass supplies it. Only persistence failures propagate.
func (s *MarketService) ReconcileToday(ctx context.Context, rec *domain.DailyRecord) (domain.DailyRecord, error) {
	today := s.clock.Now().UTC().Format(DateLayout)

	var incoming domain.DailyRecord
	if rec != nil {
		incoming = *rec
	} else {
		incoming = Normalize(today, s.collector.Collect(ctx))
	}
	incoming.Date = today

	existing, err := s.records.Get(ctx, today)
	if errors.Is(err, ErrNotFound) {
		out, err := s.records.Insert(ctx, incoming)
		if err != nil {
			return domain.DailyRecord{}, err
		}
		s.log.Info("daily_record_inserted", zap.String("date", today))
		return out, nil
	}
	if err != nil {
		return domain.DailyRecord{}, err
	}

	_, updates := domain.MergeMax(existing, incoming)
	if len(updates) == 0 {
		return existing, nil
	}
	out, err := s.records.Update(ctx, today, updates)
	if err != nil {
		return domain.DailyRecord{}, err
	}
	s.log.Info("daily_record_updated", zap.String("date", today), zap.Int("fields", len(updates)))
	return out, nil
}
