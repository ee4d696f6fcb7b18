package source

import (
	"context"
	"strings"

	"metalprices-service/internal/infrastructure/htmlx"
	"metalprices-service/internal/infrastructure/httpx"
)

const botName = "bot"

// usdMarkers are the accepted first-cell markers for the US dollar row
// of the Bank of Taiwan rate board.
var usdMarkers = []string{"USD", "美元"}

// TWDRateSource scrapes the Bank of Taiwan exchange-rate board for the
// USD spot buy rate. The rate is returned as the unparsed cell text;
// numeric conversion happens at normalization time.
type TWDRateSource struct {
	BaseURL string
	Client  *httpx.Client
}

func (s *TWDRateSource) Fetch(ctx context.Context) (string, error) {
	u := s.BaseURL + "/xrt?Lang=zh-TW"
	body, err := s.Client.GetText(ctx, u, map[string]string{"Accept": "text/html"})
	if err != nil {
		return "", fetchErr(botName, err)
	}

	rows, err := htmlx.TableRows(body)
	if err != nil {
		return "", &ParseError{Source: botName, Reason: "unparseable html"}
	}

	var spotBuy string
	for _, cells := range rows {
		if len(cells) < 4 {
			continue
		}
		for _, marker := range usdMarkers {
			if strings.Contains(cells[0], marker) {
				// 4th cell is the spot buy rate.
				spotBuy = cells[3]
				break
			}
		}
	}
	if spotBuy == "" {
		return "", &ParseError{Source: botName, Reason: "USD rate not found"}
	}
	return spotBuy, nil
}
