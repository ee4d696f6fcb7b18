package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"metalprices-service/internal/domain"
	"metalprices-service/internal/infrastructure/httpx"
)

const shanghaiName = "shfe"

// ShanghaiSource reads the SHFE delayed-market feed for the copper
// contract.
type ShanghaiSource struct {
	BaseURL string
	Client  *httpx.Client
}

type shanghaiResp struct {
	DelayMarket []map[string]json.RawMessage `json:"delaymarket"`
}

func (s *ShanghaiSource) Fetch(ctx context.Context) (domain.ShanghaiQuote, error) {
	// Cache-busting timestamp, same as the upstream's own frontend.
	u := fmt.Sprintf("%s/data/tradedata/future/delaymarket/delaymarket_cu.dat?_=%d",
		s.BaseURL, time.Now().UnixMilli())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.ShanghaiQuote{}, fetchErr(shanghaiName, err)
	}
	req.Header.Set("Referer", "https://www.shfe.com.cn/")

	var body shanghaiResp
	if err := s.Client.DoJSON(ctx, req, &body); err != nil {
		return domain.ShanghaiQuote{}, fetchErr(shanghaiName, err)
	}
	if len(body.DelayMarket) == 0 {
		return domain.ShanghaiQuote{}, &ParseError{Source: shanghaiName, Reason: "no delaymarket entries"}
	}
	entry := body.DelayMarket[0]

	last, okLast := pickNumber(entry, "lastprice", "LASTPRICE")
	preSettle, okPre := pickNumber(entry, "presettlementprice", "PRESETTLEMENTPRICE")
	name, _ := pickString(entry, "contractname", "CONTRACTNAME")
	updated, _ := pickString(entry, "updatetime", "UPDATETIME")

	q := domain.ShanghaiQuote{ContractName: name, UpdateTime: updated}
	if okLast {
		// Last price travels in text form, a display artifact of the feed.
		q.LastPrice = strconv.FormatFloat(last, 'f', -1, 64)
	}

	// Provided day change wins; otherwise derive it from last and
	// pre-settlement prices when both are numeric.
	updown, okUD := pickNumber(entry, "upperdown", "UPPERDOWN")
	if !okUD && okLast && okPre {
		updown = last - preSettle
		okUD = true
	}
	if okUD {
		q.UpDownValue = &updown
	}
	if okUD && okPre && preSettle != 0 {
		rate := updown / preSettle * 100
		q.UpDownRate = &rate
	}
	return q, nil
}
