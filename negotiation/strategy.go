package negotiation

import "strings"

// Match specificity levels. Exact matches always outrank wildcard matches at
// equal client quality; media type parameter matches outrank bare exact
// matches.
const (
	specWildcard    = 0
	specPartial     = 1
	specExact       = 2
	specExactParams = 3
)

// MatchStrategy decides whether a client entry covers a priority entry and
// how specific the pairing is. Wildcard semantics differ per header family,
// so each family plugs its own strategy into the shared matcher.
type MatchStrategy interface {
	// Match returns the specificity of the pairing and whether the client
	// entry covers the priority entry at all.
	Match(client ClientEntry, priority PriorityEntry) (specificity int, ok bool)
}

// StrategyFor returns the matching strategy for a header family. Media types
// use type/subtype wildcards and parameter matching, languages use primary
// tag matching, encodings and charsets use plain token equality with "*".
func StrategyFor(family Family) MatchStrategy {
	switch family {
	case FamilyMediaType:
		return mediaTypeStrategy{}
	case FamilyLanguage:
		return languageStrategy{}
	default:
		return tokenStrategy{}
	}
}

// mediaTypeStrategy matches type/subtype pairs. "*" and "*/*" cover
// everything, "type/*" covers every subtype of the type, and an exact match
// with matching parameters is the most specific pairing.
type mediaTypeStrategy struct{}

func (mediaTypeStrategy) Match(client ClientEntry, priority PriorityEntry) (int, bool) {
	cType, cSub := splitMediaType(client.Value)
	pType, pSub := splitMediaType(priority.Value)

	switch {
	case cType == "*":
		return specWildcard, true

	case !strings.EqualFold(cType, pType):
		return 0, false

	case cSub == "*":
		return specPartial, true

	case !strings.EqualFold(cSub, pSub):
		return 0, false
	}

	// Exact type/subtype. A client range with parameters only covers
	// priority entries carrying the same parameter values, and counts as
	// more specific than a bare range.
	if len(client.Params) == 0 {
		return specExact, true
	}

	for key, val := range client.Params {
		if priority.Params[key] != val {
			return 0, false
		}
	}

	return specExactParams, true
}

// splitMediaType splits "type/subtype" into its components. A bare "*" is
// treated as "*/*"; a missing subtype matches nothing but a full wildcard.
func splitMediaType(value string) (mainType, subType string) {
	if value == "*" {
		return "*", "*"
	}

	mainType, subType, _ = strings.Cut(value, "/")
	return mainType, subType
}

// languageStrategy matches language tags. An exact tag match is most
// specific, tags sharing a primary tag match ignoring region ("en" covers
// "en-US"), and "*" covers everything.
type languageStrategy struct{}

func (languageStrategy) Match(client ClientEntry, priority PriorityEntry) (int, bool) {
	c := strings.ToLower(client.Value)
	p := strings.ToLower(priority.Value)

	switch {
	case c == "*":
		return specWildcard, true

	case c == p:
		return specExact, true

	case primaryTag(c) == primaryTag(p):
		return specPartial, true
	}

	return 0, false
}

// primaryTag returns the language tag up to the first subtag separator.
func primaryTag(tag string) string {
	primary, _, _ := strings.Cut(tag, "-")
	return primary
}

// tokenStrategy matches plain tokens case-insensitively, with "*" as the
// only wildcard. Used for encodings and charsets.
type tokenStrategy struct{}

func (tokenStrategy) Match(client ClientEntry, priority PriorityEntry) (int, bool) {
	switch {
	case client.Value == "*":
		return specWildcard, true

	case strings.EqualFold(client.Value, priority.Value):
		return specExact, true
	}

	return 0, false
}
