package negotiation

import "strings"

// PriorityEntry is one server-supported value in a priority table. Rank is
// the position in the configured list; a lower rank means the server prefers
// the value more. Entries are immutable once constructed.
type PriorityEntry struct {
	// Value is the supported value, e.g. "application/json", "en", "gzip".
	Value string

	// Params holds media type parameters declared alongside the value,
	// e.g. "text/html;level=1". Only the media type family uses them.
	Params map[string]string

	// Rank is the declaration index in the priority list.
	Rank int
}

// PriorityTable is the server's ranked list of supported values for one
// header family. It is built once at configuration time and read-only
// afterwards, so it may be shared across concurrent negotiations.
type PriorityTable struct {
	family  Family
	entries []PriorityEntry
}

// NewPriorityTable builds a priority table from an ordered list of supported
// values. Declaration order defines the rank. Values may carry semicolon
// separated parameters ("text/html;level=1"); empty values are dropped.
// A nil table is returned when no usable values remain, which callers treat
// as "family not negotiated".
func NewPriorityTable(family Family, values []string) *PriorityTable {
	entries := make([]PriorityEntry, 0, len(values))

	for _, raw := range values {
		value, params := splitValueParams(raw)
		if value == "" {
			continue
		}

		entries = append(entries, PriorityEntry{
			Value:  value,
			Params: params,
			Rank:   len(entries),
		})
	}

	if len(entries) == 0 {
		return nil
	}

	return &PriorityTable{family: family, entries: entries}
}

// Family returns the header family the table belongs to.
func (t *PriorityTable) Family() Family {
	return t.family
}

// Entries returns the entries in rank order.
func (t *PriorityTable) Entries() []PriorityEntry {
	return t.entries
}

// Default returns the table's default entry, the first configured value.
// It is used as fallback when the client states no usable preference and
// defaults are enabled.
func (t *PriorityTable) Default() PriorityEntry {
	return t.entries[0]
}

// IsEmpty reports whether the table holds no entries. A nil table is empty.
func (t *PriorityTable) IsEmpty() bool {
	return t == nil || len(t.entries) == 0
}

// splitValueParams splits a configured value into its token and any
// semicolon separated parameters.
func splitValueParams(raw string) (value string, params map[string]string) {
	segments := strings.Split(raw, ";")
	value = strings.TrimSpace(segments[0])

	for _, segment := range segments[1:] {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		key, val, _ := strings.Cut(segment, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		if params == nil {
			params = make(map[string]string)
		}
		params[key] = strings.TrimSpace(val)
	}

	return value, params
}
