package source

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Some upstream feeds flip field casing or rename fields between
// deploys, so each logical field carries an ordered list of accepted
// keys; the first present, non-null key wins.

func pickRaw(entry map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := entry[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

// pickString decodes the first present key as a string.
func pickString(entry map[string]json.RawMessage, keys ...string) (string, bool) {
	raw, ok := pickRaw(entry, keys...)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return strings.TrimSpace(string(raw)), true
}

// pickNumber decodes the first present key as a float64, accepting both
// JSON numbers and numeric strings.
func pickNumber(entry map[string]json.RawMessage, keys ...string) (float64, bool) {
	raw, ok := pickRaw(entry, keys...)
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
