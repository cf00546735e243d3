// Package middleware provides net/http middleware that performs content
// negotiation and attaches the result to the request context.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rickvanderzwet/negotiation-middleware/config"
	"github.com/rickvanderzwet/negotiation-middleware/negotiation"
	"github.com/rickvanderzwet/negotiation-middleware/observability"
)

// negotiationTracer is the OTEL tracer used for negotiation operations.
var negotiationTracer = otel.Tracer("negotiation-middleware/middleware")

// HeaderVary is the Vary response header name.
const HeaderVary = "Vary"

// NegotiationFromConfig creates an HTTP middleware that negotiates the
// request's Accept* headers against the configured priority lists. On
// success the aggregated result is attached to the request context and the
// negotiated header families are appended to the Vary response header. When
// no representation is acceptable the request terminates with 406 and the
// downstream handler never runs.
func NegotiationFromConfig(
	cfg *config.NegotiationConfig,
	logger observability.Logger,
) func(http.Handler) http.Handler {
	if cfg.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	if logger == nil {
		logger = observability.NopLogger()
	}

	tables := negotiation.NewTables(cfg.MediaTypes, cfg.Languages, cfg.Encodings, cfg.Charsets)
	engine := negotiation.New(tables,
		negotiation.WithLogger(logger),
		negotiation.WithDefaults(cfg.SupplyDefaults),
		negotiation.WithNegotiateAll(cfg.NegotiateAll),
	)

	return Negotiation(engine, logger)
}

// Negotiation creates an HTTP middleware around an existing negotiation
// engine. Use NegotiationFromConfig unless the engine is shared or built
// programmatically.
func Negotiation(
	engine *negotiation.Negotiation,
	logger observability.Logger,
) func(http.Handler) http.Handler {
	if logger == nil {
		logger = observability.NopLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := negotiationTracer.Start(r.Context(), "negotiation.negotiate")

			result, err := engine.Negotiate(AcceptHeadersFromRequest(r))
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
				span.End()

				logNoMatch(logger, r, err)
				http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
				return
			}

			setVary(w, result)
			span.SetAttributes(resultAttributes(result)...)
			span.End()

			ctx = negotiation.NewContext(ctx, result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AcceptHeadersFromRequest extracts the four Accept* header values from a
// request.
func AcceptHeadersFromRequest(r *http.Request) negotiation.AcceptHeaders {
	return negotiation.AcceptHeaders{
		MediaType: r.Header.Get(negotiation.FamilyMediaType.HeaderName()),
		Language:  r.Header.Get(negotiation.FamilyLanguage.HeaderName()),
		Encoding:  r.Header.Get(negotiation.FamilyEncoding.HeaderName()),
		Charset:   r.Header.Get(negotiation.FamilyCharset.HeaderName()),
	}
}

// logNoMatch logs a negotiation failure with its failing family when known.
func logNoMatch(logger observability.Logger, r *http.Request, err error) {
	fields := []observability.Field{
		observability.String("path", r.URL.Path),
		observability.Error(err),
	}

	var noMatch *negotiation.NoMatchError
	if errors.As(err, &noMatch) {
		fields = append(fields, observability.String("family", noMatch.Family.String()))
	}

	logger.Debug("request not acceptable", fields...)
}

// setVary appends the negotiated request headers to the Vary response
// header, so caches key the response on them.
func setVary(w http.ResponseWriter, result *negotiation.Result) {
	names := make([]string, 0, len(negotiation.Families))
	for _, family := range negotiation.Families {
		if _, ok := result.Outcome(family); ok {
			names = append(names, family.HeaderName())
		}
	}

	if len(names) > 0 {
		w.Header().Add(HeaderVary, strings.Join(names, ", "))
	}
}

// resultAttributes converts negotiated values into span attributes.
func resultAttributes(result *negotiation.Result) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(negotiation.Families))
	for _, family := range negotiation.Families {
		if match, ok := result.Outcome(family); ok {
			attrs = append(attrs, attribute.String("negotiation."+family.String(), match.Value))
		}
	}
	return attrs
}
