package source

import (
	"context"
	"encoding/json"
	"net/http"

	"metalprices-service/internal/domain"
	"metalprices-service/internal/infrastructure/httpx"
)

const yahooName = "yahoo"

// USDCNYSource reads the USD/CNY spot rate from the Yahoo Finance chart
// endpoint.
type USDCNYSource struct {
	BaseURL string
	Client  *httpx.Client
}

type yahooChartResp struct {
	Chart struct {
		Result []struct {
			Meta map[string]json.RawMessage `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (s *USDCNYSource) Fetch(ctx context.Context) (domain.FXQuote, error) {
	u := s.BaseURL + "/v8/finance/chart/CNY=X"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.FXQuote{}, fetchErr(yahooName, err)
	}

	var body yahooChartResp
	if err := s.Client.DoJSON(ctx, req, &body); err != nil {
		return domain.FXQuote{}, fetchErr(yahooName, err)
	}
	if len(body.Chart.Result) == 0 {
		return domain.FXQuote{}, &ParseError{Source: yahooName, Reason: "no chart result"}
	}
	meta := body.Chart.Result[0].Meta

	price, ok := pickNumber(meta, "regularMarketPrice")
	if !ok {
		return domain.FXQuote{}, &ParseError{Source: yahooName, Reason: "regularMarketPrice not found"}
	}
	q := domain.FXQuote{Price: price}

	// Previous close travels under either name; first non-null wins.
	if prev, ok := pickNumber(meta, "chartPreviousClose", "previousClose"); ok {
		change := price - prev
		q.Change = &change
		if prev != 0 {
			pct := change / prev * 100
			q.ChangePercent = &pct
		}
	}
	return q, nil
}
