package application

import (
	"strconv"
	"strings"

	"metalprices-service/internal/domain"
)

// Normalize maps a sparse snapshot onto the canonical record for the
// given date. Missing slots and unparseable values become nil fields,
// never errors: each field converts independently.
//
// Conversions: SHFE last price and the BOT spot rate arrive as plain
// decimal text; the KME USD value arrives in European notation; the
// Yahoo price and Kitco bid are already numeric.
func Normalize(date string, snap domain.Snapshot) domain.DailyRecord {
	rec := domain.DailyRecord{Date: date}

	if snap.Shanghai != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(snap.Shanghai.LastPrice), 64); err == nil {
			rec.Shanghai = &v
		}
	}
	if snap.RateTWD != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(*snap.RateTWD), 64); err == nil {
			rec.RateTWD = &v
		}
	}
	if snap.LME != nil {
		if v, err := domain.ParseEuropean(snap.LME.USD); err == nil {
			rec.LME = &v
		}
	}
	if snap.UsdCny != nil {
		v := snap.UsdCny.Price
		rec.UsdCny = &v
	}
	if snap.Gold != nil {
		v := snap.Gold.Bid
		rec.Gold = &v
	}
	return rec
}
