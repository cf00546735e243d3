package negotiation

import (
	"sort"
	"strconv"
	"strings"
)

// ClientEntry is one comma-separated element of an Accept* header after
// parsing: the stated value, its quality weight and any remaining parameters.
// Entries are request-local and discarded after matching.
type ClientEntry struct {
	// Value is the stated value, e.g. "text/html", "en-US", "gzip" or "*".
	Value string

	// Quality is the q weight in [0,1]. Entries without a q parameter carry
	// 1.0; entries whose q parameter failed to parse carry 0.
	Quality float64

	// Params holds parameters other than q, used as matching criteria for
	// media types (e.g. "level" or "charset" on an Accept entry).
	Params map[string]string
}

// ParseHeader tokenizes a raw Accept* header into client entries ordered by
// descending quality. Entries with equal quality keep their original
// left-to-right position, preserving the client's textual preference.
//
// Malformed input never produces an error: empty segments are dropped,
// unparsable quality values degrade the entry to quality 0, and a header with
// no valid entries yields an empty slice, which callers treat as "no
// preference stated".
func ParseHeader(header string) []ClientEntry {
	parts := strings.Split(header, ",")
	entries := make([]ClientEntry, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		segments := strings.Split(part, ";")
		value := strings.TrimSpace(segments[0])
		if value == "" {
			continue
		}

		entry := ClientEntry{Value: value, Quality: 1.0}

		for _, segment := range segments[1:] {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}

			key, val, _ := strings.Cut(segment, "=")
			key = strings.ToLower(strings.TrimSpace(key))
			val = strings.TrimSpace(val)

			if key == "q" {
				entry.Quality = parseQuality(val)
				continue
			}

			if key == "" {
				continue
			}

			if entry.Params == nil {
				entry.Params = make(map[string]string)
			}
			entry.Params[key] = val
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quality > entries[j].Quality
	})

	return entries
}

// parseQuality parses an RFC 7231 qvalue: a decimal in [0,1] with at most
// three fraction digits. Any value outside the grammar is treated as 0, which
// excludes the entry from selection.
func parseQuality(raw string) float64 {
	if !isQValue(raw) {
		return 0
	}

	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || q < 0 || q > 1 {
		return 0
	}

	return q
}

// isQValue reports whether raw matches the qvalue grammar:
// ("0"|"1") ["." up to 3 digits].
func isQValue(raw string) bool {
	if raw == "" {
		return false
	}

	if raw[0] != '0' && raw[0] != '1' {
		return false
	}

	if len(raw) == 1 {
		return true
	}

	if raw[1] != '.' || len(raw) > 5 {
		return false
	}

	for i := 2; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}

	return true
}
