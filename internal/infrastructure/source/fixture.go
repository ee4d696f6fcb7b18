package source

import (
	"context"

	"metalprices-service/internal/application"
	"metalprices-service/internal/domain"
)

// Ensure Fixture implements application.Sources.
var _ application.Sources = (*Fixture)(nil)

// Fixture serves deterministic quotes for local development and tests,
// selected over the live adapters at construction.
type Fixture struct{}

func NewFixture() *Fixture { return &Fixture{} }

func (*Fixture) Shanghai(context.Context) (domain.ShanghaiQuote, error) {
	value := 70.0
	rate := value / 103500 * 100
	return domain.ShanghaiQuote{
		ContractName: "cu2604",
		LastPrice:    "103570",
		UpdateTime:   "2026-02-26 15:00:00",
		UpDownValue:  &value,
		UpDownRate:   &rate,
	}, nil
}

func (*Fixture) RateTWD(context.Context) (string, error) { return "31.24", nil }

func (*Fixture) LME(context.Context) (domain.LMEQuote, error) {
	change := 55.0
	pct := change / 9625.0 * 100
	return domain.LMEQuote{
		Date:          "26.02.2026",
		USD:           "9.680,00",
		Change:        &change,
		ChangePercent: &pct,
	}, nil
}

func (*Fixture) UsdCny(context.Context) (domain.FXQuote, error) {
	change := 0.02
	pct := change / 7.22 * 100
	return domain.FXQuote{Price: 7.24, Change: &change, ChangePercent: &pct}, nil
}

func (*Fixture) Gold(context.Context) (domain.GoldQuote, error) {
	return domain.GoldQuote{Bid: 2950.1, Ask: 2952.3, Change: 12.4, ChangePercentage: 0.42}, nil
}
