package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// EncodeRecords serializes the collection as a pretty-printed JSON array
// with field names date, br, na, notes. The same format backs both the
// persisted blob and the JSON backup file, and it round-trips through
// DecodeRecords without loss.
func EncodeRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// DecodeRecords is the lenient counterpart used when reading persisted
// or backed-up data: content that is not a JSON array yields an empty
// collection, counters are coerced parse-or-zero, notes to
// string-or-empty, and an entry whose date does not parse is dropped.
// This is the only place malformed data is tolerated instead of
// rejected.
func DecodeRecords(data []byte) []Record {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []storedRecord
	if err := dec.Decode(&raw); err != nil {
		return []Record{}
	}
	records := make([]Record, 0, len(raw))
	for _, entry := range raw {
		d, err := ParseDate(stringValue(entry.Date))
		if err != nil {
			continue
		}
		records = append(records, Record{
			Date:  d,
			BR:    counterValue(entry.BR),
			NA:    counterValue(entry.NA),
			Notes: stringValue(entry.Notes),
		})
	}
	return records
}

// storedRecord mirrors the persisted shape with untyped fields so a
// single bad value cannot fail the whole array.
type storedRecord struct {
	Date  any `json:"date"`
	BR    any `json:"br"`
	NA    any `json:"na"`
	Notes any `json:"notes"`
}

func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// counterValue coerces a decoded counter value parse-or-zero. Integer
// text is parsed exactly so every encodable counter survives a round
// trip; fractional numbers truncate toward zero; negatives and values
// outside the int range become 0.
func counterValue(v any) int {
	switch n := v.(type) {
	case json.Number:
		if parsed, err := strconv.Atoi(n.String()); err == nil {
			if parsed < 0 {
				return 0
			}
			return parsed
		}
		f, err := n.Float64()
		if err != nil || f < 0 || f >= math.MaxInt {
			return 0
		}
		return int(f)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
