package source

import (
	"context"
	"net/url"
	"time"

	"metalprices-service/internal/domain"
	"metalprices-service/internal/infrastructure/htmlx"
	"metalprices-service/internal/infrastructure/httpx"
)

const lmeName = "kme"

// kmeDateLayout is dd.mm.yyyy, the query format the KME site expects.
const kmeDateLayout = "02.01.2006"

// LMESource scrapes the KME historical copper table over the trailing
// week and reports the most recent close.
type LMESource struct {
	BaseURL string
	Client  *httpx.Client
	Now     func() time.Time // nil means time.Now
}

func (s *LMESource) Fetch(ctx context.Context) (domain.LMEQuote, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	q := url.Values{}
	q.Set("met", "CU")
	q.Set("datada", now.AddDate(0, 0, -7).Format(kmeDateLayout))
	q.Set("dataa", now.Format(kmeDateLayout))
	u := s.BaseURL + "/en/services/metal-prices/historical/historical-copper-values/?" + q.Encode()

	body, err := s.Client.GetText(ctx, u, map[string]string{"Accept": "text/html"})
	if err != nil {
		return domain.LMEQuote{}, fetchErr(lmeName, err)
	}

	tableRows, err := htmlx.TableRows(body)
	if err != nil {
		return domain.LMEQuote{}, &ParseError{Source: lmeName, Reason: "unparseable html"}
	}
	type row struct{ date, usd string }
	var rows []row
	for _, cells := range tableRows {
		if len(cells) >= 2 && cells[0] != "" && cells[1] != "" {
			rows = append(rows, row{date: cells[0], usd: cells[1]})
		}
	}
	if len(rows) == 0 {
		return domain.LMEQuote{}, &ParseError{Source: lmeName, Reason: "no rows found in table"}
	}

	// Rows run oldest to newest; the last two give the day change.
	last := rows[len(rows)-1]
	quote := domain.LMEQuote{Date: last.date, USD: last.usd}
	if len(rows) >= 2 {
		prev := rows[len(rows)-2]
		lastVal, errLast := domain.ParseEuropean(last.usd)
		prevVal, errPrev := domain.ParseEuropean(prev.usd)
		if errLast == nil && errPrev == nil && prevVal != 0 {
			change := lastVal - prevVal
			pct := change / prevVal * 100
			quote.Change = &change
			quote.ChangePercent = &pct
		}
	}
	return quote, nil
}
