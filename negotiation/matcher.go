package negotiation

// MatchResult is the outcome of pairing client entries against a priority
// table: the selected server value plus the entries that produced it, kept
// for traceability.
type MatchResult struct {
	// Value is the selected server-supported value.
	Value string

	// Params holds the media type parameters of the selected priority entry.
	Params map[string]string

	// Priority is the priority entry that won the match.
	Priority PriorityEntry

	// Client is the client entry that covered the winning priority entry.
	// Zero when the value was supplied by default fallback.
	Client ClientEntry

	// Default reports whether the value came from the table's default entry
	// rather than from a client-stated preference.
	Default bool
}

// score orders candidate pairings: client quality first, then specificity,
// then the server's own preference (lower rank wins).
type score struct {
	quality     float64
	specificity int
	rank        int
}

// better reports whether s outranks other.
func (s score) better(other score) bool {
	if s.quality != other.quality {
		return s.quality > other.quality
	}
	if s.specificity != other.specificity {
		return s.specificity > other.specificity
	}
	return s.rank < other.rank
}

// Match selects the single best pairing of client entries against the
// priority table using the family's strategy, or reports that no priority
// entry is acceptable.
//
// Each priority entry takes its effective quality from the most specific
// client entry covering it, so an explicit "gzip;q=0" rejects gzip even when
// a later "*;q=0.5" would cover it. An effective quality of 0 never wins.
func Match(clients []ClientEntry, table *PriorityTable, strategy MatchStrategy) (MatchResult, bool) {
	var (
		best      MatchResult
		bestScore score
		found     bool
	)

	for _, priority := range table.Entries() {
		client, specificity, ok := coveringEntry(clients, priority, strategy)
		if !ok || client.Quality == 0 {
			continue
		}

		candidate := score{
			quality:     client.Quality,
			specificity: specificity,
			rank:        priority.Rank,
		}

		if !found || candidate.better(bestScore) {
			best = MatchResult{
				Value:    priority.Value,
				Params:   priority.Params,
				Priority: priority,
				Client:   client,
			}
			bestScore = candidate
			found = true
		}
	}

	return best, found
}

// coveringEntry returns the most specific client entry covering the priority
// entry. Clients arrive sorted by descending quality, so among entries of
// equal specificity the highest-quality one is kept.
func coveringEntry(
	clients []ClientEntry,
	priority PriorityEntry,
	strategy MatchStrategy,
) (ClientEntry, int, bool) {
	var (
		best     ClientEntry
		bestSpec int
		found    bool
	)

	for _, client := range clients {
		specificity, ok := strategy.Match(client, priority)
		if !ok {
			continue
		}

		if !found || specificity > bestSpec {
			best = client
			bestSpec = specificity
			found = true
		}
	}

	return best, bestSpec, found
}
