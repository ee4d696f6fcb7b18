package domain

// ShanghaiQuote is the parsed SHFE delayed-market payload for the copper
// contract. LastPrice keeps the text form the upstream serves; it is
// converted to a number at normalization time.
type ShanghaiQuote struct {
	ContractName string   `json:"contractname"`
	LastPrice    string   `json:"lastprice"`
	UpdateTime   string   `json:"updatetime"`
	UpDownValue  *float64 `json:"updownvalue"`
	UpDownRate   *float64 `json:"updownrate"`
}

// LMEQuote is the most recent row of the KME historical copper table.
// USD stays in the upstream's European format ("9.680,00").
type LMEQuote struct {
	Date          string   `json:"date"`
	USD           string   `json:"usd"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
}

// FXQuote is a spot exchange-rate quote with optional day change.
type FXQuote struct {
	Price         float64  `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
}

// GoldQuote is one Kitco metal quote entry.
type GoldQuote struct {
	Bid              float64 `json:"bid"`
	Ask              float64 `json:"ask"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
}

// Snapshot is the sparse, all-settled result of one fan-out collection
// pass. A nil slot means that source failed this pass; an entirely
// failed pass is still a valid (empty) snapshot.
type Snapshot struct {
	Shanghai *ShanghaiQuote `json:"shanghai"`
	RateTWD  *string        `json:"rate_twd"`
	LME      *LMEQuote      `json:"lme"`
	UsdCny   *FXQuote       `json:"usd_cny"`
	Gold     *GoldQuote     `json:"gold"`
}
