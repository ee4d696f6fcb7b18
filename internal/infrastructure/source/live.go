package source

import (
	"context"

	"metalprices-service/internal/application"
	"metalprices-service/internal/domain"
	"metalprices-service/internal/infrastructure/httpx"
)

// Live is the production adapter set, one client per upstream.
type Live struct {
	Shfe  *ShanghaiSource
	Bot   *TWDRateSource
	Kme   *LMESource
	Yahoo *USDCNYSource
	Kitco *GoldSource
}

var _ application.Sources = (*Live)(nil)

// Endpoints carries the base URLs of the five upstreams.
type Endpoints struct {
	Shfe  string
	Bot   string
	Kme   string
	Yahoo string
	Kitco string
}

// NewLive wires all five adapters onto one shared HTTP client; the
// client's timeout bounds each fetch.
func NewLive(ep Endpoints, client *httpx.Client) *Live {
	return &Live{
		Shfe:  &ShanghaiSource{BaseURL: ep.Shfe, Client: client},
		Bot:   &TWDRateSource{BaseURL: ep.Bot, Client: client},
		Kme:   &LMESource{BaseURL: ep.Kme, Client: client},
		Yahoo: &USDCNYSource{BaseURL: ep.Yahoo, Client: client},
		Kitco: &GoldSource{BaseURL: ep.Kitco, Client: client},
	}
}

func (l *Live) Shanghai(ctx context.Context) (domain.ShanghaiQuote, error) { return l.Shfe.Fetch(ctx) }
func (l *Live) RateTWD(ctx context.Context) (string, error)               { return l.Bot.Fetch(ctx) }
func (l *Live) LME(ctx context.Context) (domain.LMEQuote, error)          { return l.Kme.Fetch(ctx) }
func (l *Live) UsdCny(ctx context.Context) (domain.FXQuote, error)        { return l.Yahoo.Fetch(ctx) }
func (l *Live) Gold(ctx context.Context) (domain.GoldQuote, error)        { return l.Kitco.Fetch(ctx) }
