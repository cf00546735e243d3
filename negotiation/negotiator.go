package negotiation

import (
	"github.com/rickvanderzwet/negotiation-middleware/observability"
)

// Outcome is the terminal state of one family's negotiation. A family whose
// priority table is absent or empty is not negotiated at all and yields an
// inapplicable outcome, which is distinct from a failure.
type Outcome struct {
	// Applicable reports whether the family was negotiated.
	Applicable bool

	// Match holds the selected value when Applicable is true.
	Match MatchResult
}

// Negotiator runs parse, match and default fallback for one header family.
// It is stateless across requests and safe for concurrent use.
type Negotiator struct {
	family         Family
	strategy       MatchStrategy
	supplyDefaults bool
	logger         observability.Logger
}

// NegotiatorOption is a functional option for configuring a negotiator.
type NegotiatorOption func(*Negotiator)

// WithSupplyDefaults controls whether an empty or unmatched header falls
// back to the priority table's default entry instead of failing.
func WithSupplyDefaults(supply bool) NegotiatorOption {
	return func(n *Negotiator) {
		n.supplyDefaults = supply
	}
}

// WithNegotiatorLogger sets the logger for the negotiator.
func WithNegotiatorLogger(logger observability.Logger) NegotiatorOption {
	return func(n *Negotiator) {
		n.logger = logger
	}
}

// NewNegotiator creates a negotiator for one header family. Defaults are
// supplied unless disabled via WithSupplyDefaults(false).
func NewNegotiator(family Family, opts ...NegotiatorOption) *Negotiator {
	n := &Negotiator{
		family:         family,
		strategy:       StrategyFor(family),
		supplyDefaults: true,
		logger:         observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Family returns the header family the negotiator handles.
func (n *Negotiator) Family() Family {
	return n.family
}

// Negotiate resolves the raw header value against the priority table.
//
// An absent or empty table means the family is not negotiated and yields an
// inapplicable outcome. An empty client list, or one with no acceptable
// pairing, falls back to the table's default entry when defaults are
// supplied; otherwise the negotiation fails with a *NoMatchError.
func (n *Negotiator) Negotiate(header string, table *PriorityTable) (Outcome, error) {
	if table.IsEmpty() {
		return Outcome{}, nil
	}

	clients := ParseHeader(header)

	if len(clients) == 0 {
		if n.supplyDefaults {
			return n.defaultOutcome(table), nil
		}
		return Outcome{}, &NoMatchError{Family: n.family, Header: header}
	}

	match, ok := Match(clients, table, n.strategy)
	if !ok {
		if n.supplyDefaults {
			n.logger.Debug("no acceptable pairing, falling back to default",
				observability.String("family", n.family.String()),
				observability.String("header", header),
			)
			return n.defaultOutcome(table), nil
		}
		return Outcome{}, &NoMatchError{Family: n.family, Header: header}
	}

	n.logger.Debug("negotiated value selected",
		observability.String("family", n.family.String()),
		observability.String("header", header),
		observability.String("selected", match.Value),
	)

	return Outcome{Applicable: true, Match: match}, nil
}

// defaultOutcome wraps the table's default entry in a matched outcome.
func (n *Negotiator) defaultOutcome(table *PriorityTable) Outcome {
	def := table.Default()
	return Outcome{
		Applicable: true,
		Match: MatchResult{
			Value:    def.Value,
			Params:   def.Params,
			Priority: def,
			Default:  true,
		},
	}
}
