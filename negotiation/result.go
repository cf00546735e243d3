package negotiation

import "context"

// Result aggregates the four per-family outcomes of one request's
// negotiation. It is created once per request and discarded with it.
type Result struct {
	outcomes map[Family]Outcome
}

// Outcome returns the outcome for a family. The second return value is false
// when the family was not negotiated (no configured priorities).
func (r *Result) Outcome(family Family) (MatchResult, bool) {
	outcome, ok := r.outcomes[family]
	if !ok || !outcome.Applicable {
		return MatchResult{}, false
	}
	return outcome.Match, true
}

// MediaType returns the negotiated media type, if the family was negotiated.
func (r *Result) MediaType() (MatchResult, bool) {
	return r.Outcome(FamilyMediaType)
}

// Language returns the negotiated language, if the family was negotiated.
func (r *Result) Language() (MatchResult, bool) {
	return r.Outcome(FamilyLanguage)
}

// Encoding returns the negotiated encoding, if the family was negotiated.
func (r *Result) Encoding() (MatchResult, bool) {
	return r.Outcome(FamilyEncoding)
}

// Charset returns the negotiated charset, if the family was negotiated.
func (r *Result) Charset() (MatchResult, bool) {
	return r.Outcome(FamilyCharset)
}

// contextKey is the private type for context keys in this package.
type contextKey struct{}

// resultKey stores the negotiation result on a request context.
var resultKey contextKey

// NewContext returns a context carrying the negotiation result.
func NewContext(ctx context.Context, result *Result) context.Context {
	return context.WithValue(ctx, resultKey, result)
}

// FromContext extracts the negotiation result from a context.
func FromContext(ctx context.Context) (*Result, bool) {
	result, ok := ctx.Value(resultKey).(*Result)
	return result, ok
}
