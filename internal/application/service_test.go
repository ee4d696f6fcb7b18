package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"metalprices-service/internal/domain"
)

var testNow = time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

func testService(repo RecordRepo, sources Sources, opts ...Option) *MarketService {
	opts = append([]Option{WithClock(fakeClock{t: testNow})}, opts...)
	return NewMarketService(repo, NewCollector(sources, nil), opts...)
}

func fullSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Shanghai: &domain.ShanghaiQuote{ContractName: "cu2604", LastPrice: "103570", UpdateTime: "2026-02-26 15:00:00"},
		RateTWD:  strPtr("31.24"),
		LME:      &domain.LMEQuote{Date: "26.02.2026", USD: "9.680,00"},
		UsdCny:   &domain.FXQuote{Price: 7.24},
		Gold:     &domain.GoldQuote{Bid: 2950, Ask: 2952},
	}
}

func Test_Latest_LiveSnapshot(t *testing.T) {
	t.Parallel()
	svc := testService(newFakeRecordRepo(), &fakeSources{snap: fullSnapshot()})

	res := svc.Latest(context.Background())

	require.Equal(t, "2026-02-26", res.Record.Date)
	require.Equal(t, 103570.0, *res.Record.Shanghai)
	require.Equal(t, 31.24, *res.Record.RateTWD)
	require.Equal(t, 9680.0, *res.Record.LME)
	require.Equal(t, 7.24, *res.Record.UsdCny)
	require.Equal(t, 2950.0, *res.Record.Gold)
	require.NotNil(t, res.Sources.Shanghai)
}

func Test_Latest_PartialFailure(t *testing.T) {
	t.Parallel()
	sources := &fakeSources{snap: fullSnapshot(), fail: map[string]bool{"lme": true, "gold": true}}
	svc := testService(newFakeRecordRepo(), sources)

	res := svc.Latest(context.Background())

	require.Nil(t, res.Record.LME)
	require.Nil(t, res.Record.Gold)
	require.NotNil(t, res.Record.Shanghai)
	require.NotNil(t, res.Record.RateTWD)
	require.NotNil(t, res.Record.UsdCny)
}

func Test_Latest_RateTWDChange(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	repo.store["2026-02-24"] = domain.DailyRecord{Date: "2026-02-24", RateTWD: fPtr(31.00)}
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	res := svc.Latest(context.Background())

	require.NotNil(t, res.RateTWDChange)
	require.InDelta(t, 0.24, *res.RateTWDChange, 1e-9)
}

func Test_Latest_RateTWDChange_BestEffort(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	repo.err = ErrRepo
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	// Repo failure must not fail the read, only drop the enrichment.
	res := svc.Latest(context.Background())
	require.Nil(t, res.RateTWDChange)
	require.NotNil(t, res.Record.RateTWD)
}

func Test_History_DefaultsToTrailing30Days(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	_, err := svc.History(context.Background(), "", "")
	require.NoError(t, err)
	require.Equal(t, "2026-01-27", repo.lastRange[0])
	require.Equal(t, "2026-02-26", repo.lastRange[1])
}

func Test_History_ExplicitRange(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	for _, d := range []string{"2026-01-30", "2026-02-01", "2026-02-03", "2026-02-05", "2026-02-07"} {
		repo.store[d] = domain.DailyRecord{Date: d, Gold: fPtr(2900)}
	}
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	recs, err := svc.History(context.Background(), "2026-02-01", "2026-02-05")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "2026-02-05", recs[0].Date)
	require.Equal(t, "2026-02-03", recs[1].Date)
	require.Equal(t, "2026-02-01", recs[2].Date)
}

func Test_ReconcileToday_InsertsWhenAbsent(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	sources := &fakeSources{snap: fullSnapshot(), fail: map[string]bool{"gold": true}}
	svc := testService(repo, sources)

	rec, err := svc.ReconcileToday(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, repo.inserts)
	require.Equal(t, "2026-02-26", rec.Date)
	require.Equal(t, 103570.0, *rec.Shanghai)
	require.Nil(t, rec.Gold) // failed source inserted as null, not skipped
}

func Test_ReconcileToday_MaxWinsMerge(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	repo.store["2026-02-26"] = domain.DailyRecord{
		Date:     "2026-02-26",
		Shanghai: fPtr(103500),
		RateTWD:  fPtr(31.85),
		LME:      fPtr(9680.5),
		UsdCny:   fPtr(7.20),
	}
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	incoming := domain.DailyRecord{
		Shanghai: fPtr(103600),
		LME:      fPtr(9680.5),
		UsdCny:   fPtr(7.24),
		Gold:     fPtr(2950),
	}
	rec, err := svc.ReconcileToday(context.Background(), &incoming)
	require.NoError(t, err)

	require.Equal(t, 103600.0, *rec.Shanghai)
	require.Equal(t, 31.85, *rec.RateTWD) // incoming nil never regresses the field
	require.Equal(t, 9680.5, *rec.LME)    // tie does not write
	require.Equal(t, 7.24, *rec.UsdCny)
	require.Equal(t, 2950.0, *rec.Gold)
	require.Equal(t, 1, repo.updates)
}

func Test_ReconcileToday_SecondApplyIsNoop(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	incoming := domain.DailyRecord{Shanghai: fPtr(103600), Gold: fPtr(2950)}

	first, err := svc.ReconcileToday(context.Background(), &incoming)
	require.NoError(t, err)
	second, err := svc.ReconcileToday(context.Background(), &incoming)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, repo.inserts)
	require.Equal(t, 0, repo.updates) // no qualifying field, no write issued
}

func Test_ReconcileToday_Commutative(t *testing.T) {
	t.Parallel()
	a := domain.DailyRecord{Shanghai: fPtr(103600), LME: fPtr(9600)}
	b := domain.DailyRecord{Shanghai: fPtr(103550), LME: fPtr(9700), Gold: fPtr(2950)}

	repoAB := newFakeRecordRepo()
	svcAB := testService(repoAB, &fakeSources{snap: fullSnapshot()})
	_, err := svcAB.ReconcileToday(context.Background(), &a)
	require.NoError(t, err)
	ab, err := svcAB.ReconcileToday(context.Background(), &b)
	require.NoError(t, err)

	repoBA := newFakeRecordRepo()
	svcBA := testService(repoBA, &fakeSources{snap: fullSnapshot()})
	_, err = svcBA.ReconcileToday(context.Background(), &b)
	require.NoError(t, err)
	ba, err := svcBA.ReconcileToday(context.Background(), &a)
	require.NoError(t, err)

	require.Equal(t, ab, ba)
}

func Test_ReconcileToday_PersistenceErrorPropagates(t *testing.T) {
	t.Parallel()
	repo := newFakeRecordRepo()
	repo.err = ErrRepo
	svc := testService(repo, &fakeSources{snap: fullSnapshot()})

	_, err := svc.ReconcileToday(context.Background(), nil)
	require.ErrorIs(t, err, ErrRepo)
}
