package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickvanderzwet/negotiation-middleware/config"
	"github.com/rickvanderzwet/negotiation-middleware/negotiation"
)

func testConfig() *config.NegotiationConfig {
	return &config.NegotiationConfig{
		MediaTypes:     []string{"application/json", "text/html"},
		Languages:      []string{"en", "fr"},
		Encodings:      []string{"gzip", "deflate"},
		SupplyDefaults: true,
	}
}

func TestNegotiationFromConfig_AttachesResult(t *testing.T) {
	var got *negotiation.Result

	handler := NegotiationFromConfig(testConfig(), nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = negotiation.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Accept", "text/html;q=0.9, application/json;q=0.2")
	req.Header.Set("Accept-Language", "fr")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)

	mediaType, ok := got.MediaType()
	require.True(t, ok)
	assert.Equal(t, "text/html", mediaType.Value)

	language, ok := got.Language()
	require.True(t, ok)
	assert.Equal(t, "fr", language.Value)

	encoding, ok := got.Encoding()
	require.True(t, ok)
	assert.Equal(t, "gzip", encoding.Value)
	assert.True(t, encoding.Default)

	_, ok = got.Charset()
	assert.False(t, ok)
}

func TestNegotiationFromConfig_VaryHeader(t *testing.T) {
	handler := NegotiationFromConfig(testConfig(), nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "Accept, Accept-Language, Accept-Encoding", rec.Header().Get("Vary"))
}

func TestNegotiationFromConfig_NotAcceptable(t *testing.T) {
	cfg := testConfig()
	cfg.SupplyDefaults = false

	downstream := false
	handler := NegotiationFromConfig(cfg, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			downstream = true
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/pdf")
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.False(t, downstream, "downstream handler must not run on failure")
}

func TestNegotiationFromConfig_ExplicitRejection(t *testing.T) {
	var got *negotiation.Result

	handler := NegotiationFromConfig(testConfig(), nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = negotiation.FromContext(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip;q=0, *;q=0.5")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.NotNil(t, got)
	encoding, ok := got.Encoding()
	require.True(t, ok)
	assert.Equal(t, "deflate", encoding.Value)
}

func TestNegotiationFromConfig_EmptyConfigPassesThrough(t *testing.T) {
	called := false
	handler := NegotiationFromConfig(&config.NegotiationConfig{}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, ok := negotiation.FromContext(r.Context())
			assert.False(t, ok)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/pdf")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestAcceptHeadersFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept-Charset", "utf-8")

	headers := AcceptHeadersFromRequest(req)

	assert.Equal(t, "application/json", headers.MediaType)
	assert.Equal(t, "en", headers.Language)
	assert.Equal(t, "gzip", headers.Encoding)
	assert.Equal(t, "utf-8", headers.Charset)
}
