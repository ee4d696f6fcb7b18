package source

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"metalprices-service/internal/domain"
	"metalprices-service/internal/infrastructure/httpx"
)

const kitcoName = "kitco"

const metalQuoteQuery = `query MetalQuote($symbol: String!, $currency: String!) {
  GetMetalQuoteV3(symbol: $symbol, currency: $currency) {
    results {
      bid
      ask
      change
      changePercentage
    }
  }
}`

// GoldSource queries the Kitco GraphQL gateway for the gold spot quote
// in USD.
type GoldSource struct {
	BaseURL string
	Client  *httpx.Client
}

type goldRequest struct {
	OperationName string            `json:"operationName"`
	Query         string            `json:"query"`
	Variables     map[string]string `json:"variables"`
}

type goldResponse struct {
	Data struct {
		GetMetalQuoteV3 struct {
			Results []domain.GoldQuote `json:"results"`
		} `json:"GetMetalQuoteV3"`
	} `json:"data"`
}

func (s *GoldSource) Fetch(ctx context.Context) (domain.GoldQuote, error) {
	payload, err := json.Marshal(goldRequest{
		OperationName: "MetalQuote",
		Query:         metalQuoteQuery,
		Variables:     map[string]string{"symbol": "AU", "currency": "USD"},
	})
	if err != nil {
		return domain.GoldQuote{}, fetchErr(kitcoName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/", bytes.NewReader(payload))
	if err != nil {
		return domain.GoldQuote{}, fetchErr(kitcoName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The gateway rejects requests without a site origin.
	req.Header.Set("Origin", "https://www.kitco.com")
	req.Header.Set("Referer", "https://www.kitco.com/")

	var body goldResponse
	if err := s.Client.DoJSON(ctx, req, &body); err != nil {
		return domain.GoldQuote{}, fetchErr(kitcoName, err)
	}
	results := body.Data.GetMetalQuoteV3.Results
	if len(results) == 0 {
		return domain.GoldQuote{}, &ParseError{Source: kitcoName, Reason: "no result data"}
	}
	return results[0], nil
}
