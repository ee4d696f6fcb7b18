package domain

// Price field names, matching the persisted column names.
const (
	FieldShanghai = "shanghai"
	FieldRateTWD  = "rate_twd"
	FieldLME      = "lme"
	FieldUsdCny   = "usd_cny"
	FieldGold     = "gold"
)

// RecordFields lists all price fields in column order.
var RecordFields = []string{FieldShanghai, FieldRateTWD, FieldLME, FieldUsdCny, FieldGold}

// DailyRecord is the canonical per-date price snapshot. One row exists
// per calendar date; every price field is independently nullable, so a
// failed source never blocks persisting the others.
type DailyRecord struct {
	Date     string   `json:"date"`
	Shanghai *float64 `json:"shanghai"`
	RateTWD  *float64 `json:"rate_twd"`
	LME      *float64 `json:"lme"`
	UsdCny   *float64 `json:"usd_cny"`
	Gold     *float64 `json:"gold"`
}

// Field returns the value of the named price field.
func (r *DailyRecord) Field(name string) *float64 {
	switch name {
	case FieldShanghai:
		return r.Shanghai
	case FieldRateTWD:
		return r.RateTWD
	case FieldLME:
		return r.LME
	case FieldUsdCny:
		return r.UsdCny
	case FieldGold:
		return r.Gold
	}
	return nil
}

func (r *DailyRecord) setField(name string, v float64) {
	switch name {
	case FieldShanghai:
		r.Shanghai = &v
	case FieldRateTWD:
		r.RateTWD = &v
	case FieldLME:
		r.LME = &v
	case FieldUsdCny:
		r.UsdCny = &v
	case FieldGold:
		r.Gold = &v
	}
}

// MergeMax applies the per-field maximum-wins policy: an incoming value
// replaces the existing one only when it is non-nil and the existing
// value is nil or strictly smaller. Equal values never count as an
// update. It returns the merged record and the map of fields that
// changed; an empty map means nothing needs writing.
func MergeMax(existing, incoming DailyRecord) (DailyRecord, map[string]float64) {
	merged := existing
	updates := make(map[string]float64)
	for _, f := range RecordFields {
		in := incoming.Field(f)
		if in == nil {
			continue
		}
		cur := existing.Field(f)
		if cur == nil || *in > *cur {
			merged.setField(f, *in)
			updates[f] = *in
		}
	}
	return merged, updates
}
