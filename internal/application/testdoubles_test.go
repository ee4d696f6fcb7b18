package application

import (
	"context"
	"errors"
	"sort"
	"time"

	"metalprices-service/internal/domain"
)

var ErrRepo = errors.New("repo error")

type fakeRecordRepo struct {
	store map[string]domain.DailyRecord
	err   error

	inserts   int
	updates   int
	lastRange [2]string
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{store: map[string]domain.DailyRecord{}}
}

func (f *fakeRecordRepo) Get(_ context.Context, date string) (domain.DailyRecord, error) {
	if f.err != nil {
		return domain.DailyRecord{}, f.err
	}
	r, ok := f.store[date]
	if !ok {
		return domain.DailyRecord{}, ErrNotFound
	}
	return r, nil
}

func (f *fakeRecordRepo) Insert(_ context.Context, rec domain.DailyRecord) (domain.DailyRecord, error) {
	if f.err != nil {
		return domain.DailyRecord{}, f.err
	}
	f.inserts++
	f.store[rec.Date] = rec
	return rec, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, date string, fields map[string]float64) (domain.DailyRecord, error) {
	if f.err != nil {
		return domain.DailyRecord{}, f.err
	}
	r, ok := f.store[date]
	if !ok {
		return domain.DailyRecord{}, ErrNotFound
	}
	f.updates++
	for name, v := range fields {
		val := v
		switch name {
		case domain.FieldShanghai:
			r.Shanghai = &val
		case domain.FieldRateTWD:
			r.RateTWD = &val
		case domain.FieldLME:
			r.LME = &val
		case domain.FieldUsdCny:
			r.UsdCny = &val
		case domain.FieldGold:
			r.Gold = &val
		}
	}
	f.store[date] = r
	return r, nil
}

func (f *fakeRecordRepo) Range(_ context.Context, from, to string) ([]domain.DailyRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastRange = [2]string{from, to}
	var out []domain.DailyRecord
	for d, r := range f.store {
		if d >= from && d <= to {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// fakeSources serves fixed payloads; a source listed in fail errors
// instead.
type fakeSources struct {
	snap domain.Snapshot
	fail map[string]bool
}

func (f *fakeSources) Shanghai(context.Context) (domain.ShanghaiQuote, error) {
	if f.fail["shanghai"] || f.snap.Shanghai == nil {
		return domain.ShanghaiQuote{}, errors.New("shfe: unreachable")
	}
	return *f.snap.Shanghai, nil
}

func (f *fakeSources) RateTWD(context.Context) (string, error) {
	if f.fail["rate_twd"] || f.snap.RateTWD == nil {
		return "", errors.New("bot: unreachable")
	}
	return *f.snap.RateTWD, nil
}

func (f *fakeSources) LME(context.Context) (domain.LMEQuote, error) {
	if f.fail["lme"] || f.snap.LME == nil {
		return domain.LMEQuote{}, errors.New("kme: unreachable")
	}
	return *f.snap.LME, nil
}

func (f *fakeSources) UsdCny(context.Context) (domain.FXQuote, error) {
	if f.fail["usd_cny"] || f.snap.UsdCny == nil {
		return domain.FXQuote{}, errors.New("yahoo: unreachable")
	}
	return *f.snap.UsdCny, nil
}

func (f *fakeSources) Gold(context.Context) (domain.GoldQuote, error) {
	if f.fail["gold"] || f.snap.Gold == nil {
		return domain.GoldQuote{}, errors.New("kitco: unreachable")
	}
	return *f.snap.Gold, nil
}

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

func strPtr(s string) *string { return &s }
func fPtr(v float64) *float64 { return &v }
