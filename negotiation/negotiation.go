package negotiation

import (
	"time"

	"github.com/rickvanderzwet/negotiation-middleware/observability"
)

// AcceptHeaders carries the raw Accept* header values of one request, keyed
// by family. Absent headers are empty strings.
type AcceptHeaders struct {
	MediaType string
	Language  string
	Encoding  string
	Charset   string
}

// Get returns the raw header value for a family.
func (h AcceptHeaders) Get(family Family) string {
	switch family {
	case FamilyMediaType:
		return h.MediaType
	case FamilyLanguage:
		return h.Language
	case FamilyEncoding:
		return h.Encoding
	case FamilyCharset:
		return h.Charset
	default:
		return ""
	}
}

// Tables holds the per-family priority tables. A nil table means the family
// is not negotiated. Tables are immutable and shared across requests.
type Tables struct {
	MediaTypes *PriorityTable
	Languages  *PriorityTable
	Encodings  *PriorityTable
	Charsets   *PriorityTable
}

// NewTables builds priority tables from ordered value lists. Empty lists
// produce nil tables, skipping the family.
func NewTables(mediaTypes, languages, encodings, charsets []string) Tables {
	return Tables{
		MediaTypes: NewPriorityTable(FamilyMediaType, mediaTypes),
		Languages:  NewPriorityTable(FamilyLanguage, languages),
		Encodings:  NewPriorityTable(FamilyEncoding, encodings),
		Charsets:   NewPriorityTable(FamilyCharset, charsets),
	}
}

// Get returns the table for a family.
func (t Tables) Get(family Family) *PriorityTable {
	switch family {
	case FamilyMediaType:
		return t.MediaTypes
	case FamilyLanguage:
		return t.Languages
	case FamilyEncoding:
		return t.Encodings
	case FamilyCharset:
		return t.Charsets
	default:
		return nil
	}
}

// Negotiation runs the four per-family negotiators for a request. It is
// built once from immutable tables and safe for concurrent use.
type Negotiation struct {
	tables         Tables
	negotiators    map[Family]*Negotiator
	supplyDefaults bool
	negotiateAll   bool
	logger         observability.Logger
	metrics        *Metrics
}

// Option is a functional option for configuring the negotiation.
type Option func(*Negotiation)

// WithLogger sets the logger for the negotiation and its negotiators.
func WithLogger(logger observability.Logger) Option {
	return func(n *Negotiation) {
		n.logger = logger
	}
}

// WithDefaults controls default fallback for all families. When disabled, an
// empty or unmatched header fails the family instead of resolving to the
// table's first entry.
func WithDefaults(supply bool) Option {
	return func(n *Negotiation) {
		n.supplyDefaults = supply
	}
}

// WithNegotiateAll evaluates every configured family even after one has
// failed, instead of short-circuiting on the first failure. The returned
// error is still the first failure in family order.
func WithNegotiateAll(all bool) Option {
	return func(n *Negotiation) {
		n.negotiateAll = all
	}
}

// New creates a negotiation engine over the given priority tables.
func New(tables Tables, opts ...Option) *Negotiation {
	n := &Negotiation{
		tables:         tables,
		supplyDefaults: true,
		logger:         observability.NopLogger(),
		metrics:        GetMetrics(),
	}

	for _, opt := range opts {
		opt(n)
	}

	n.negotiators = make(map[Family]*Negotiator, len(Families))
	for _, family := range Families {
		n.negotiators[family] = NewNegotiator(family,
			WithSupplyDefaults(n.supplyDefaults),
			WithNegotiatorLogger(n.logger),
		)
	}

	return n
}

// Negotiate resolves all configured families against the request's Accept*
// headers. The first failing family aborts the remaining ones and surfaces
// as a *NoMatchError, unless WithNegotiateAll was set, in which case every
// family is evaluated before the first failure is returned.
func (n *Negotiation) Negotiate(headers AcceptHeaders) (*Result, error) {
	start := time.Now()
	defer func() {
		n.metrics.ObserveDuration(time.Since(start).Seconds())
	}()

	result := &Result{outcomes: make(map[Family]Outcome, len(Families))}

	var firstErr error
	for _, family := range Families {
		outcome, err := n.negotiators[family].Negotiate(headers.Get(family), n.tables.Get(family))
		if err != nil {
			n.metrics.RecordFailure(family)
			n.logger.Debug("negotiation failed",
				observability.String("family", family.String()),
				observability.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			if !n.negotiateAll {
				return nil, firstErr
			}
			continue
		}

		n.metrics.RecordNegotiation(family, resultLabel(outcome))
		result.outcomes[family] = outcome
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return result, nil
}

// resultLabel maps an outcome to its metrics label.
func resultLabel(outcome Outcome) string {
	switch {
	case !outcome.Applicable:
		return ResultNotApplicable
	case outcome.Match.Default:
		return ResultDefault
	default:
		return ResultSelected
	}
}
