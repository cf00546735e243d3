// Package ginmiddleware provides the gin adapter for the negotiation
// middleware. Negotiated values are stored under the configured attribute
// keys on the gin context as well as on the request context.
package ginmiddleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rickvanderzwet/negotiation-middleware/config"
	"github.com/rickvanderzwet/negotiation-middleware/middleware"
	"github.com/rickvanderzwet/negotiation-middleware/negotiation"
	"github.com/rickvanderzwet/negotiation-middleware/observability"
)

// NegotiationFromConfig creates a gin middleware that negotiates the
// request's Accept* headers against the configured priority lists. A request
// with no acceptable representation is aborted with 406.
func NegotiationFromConfig(
	cfg *config.NegotiationConfig,
	logger observability.Logger,
) gin.HandlerFunc {
	if cfg.IsEmpty() {
		return func(c *gin.Context) { c.Next() }
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

	keys := cfg.AttributeKeys()

	return func(c *gin.Context) {
		result, err := engine.Negotiate(middleware.AcceptHeadersFromRequest(c.Request))
		if err != nil {
			logger.Debug("request not acceptable",
				observability.String("path", c.Request.URL.Path),
				observability.Error(err),
			)
			c.AbortWithStatus(http.StatusNotAcceptable)
			return
		}

		setAttributes(c, keys, result)
		c.Request = c.Request.WithContext(negotiation.NewContext(c.Request.Context(), result))

		c.Next()
	}
}

// setAttributes stores negotiated values on the gin context under the
// configured keys, skipping families that were not negotiated.
func setAttributes(c *gin.Context, keys *config.AttributeConfig, result *negotiation.Result) {
	if match, ok := result.MediaType(); ok {
		c.Set(keys.MediaType, match.Value)
	}
	if match, ok := result.Language(); ok {
		c.Set(keys.Language, match.Value)
	}
	if match, ok := result.Encoding(); ok {
		c.Set(keys.Encoding, match.Value)
	}
	if match, ok := result.Charset(); ok {
		c.Set(keys.Charset, match.Value)
	}
}
