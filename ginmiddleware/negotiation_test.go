package ginmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickvanderzwet/negotiation-middleware/config"
	"github.com/rickvanderzwet/negotiation-middleware/negotiation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.NegotiationConfig {
	return &config.NegotiationConfig{
		MediaTypes:     []string{"application/json", "text/html"},
		Languages:      []string{"en", "fr"},
		SupplyDefaults: true,
	}
}

func TestNegotiationFromConfig_SetsAttributes(t *testing.T) {
	router := gin.New()
	router.Use(NegotiationFromConfig(testConfig(), nil))

	var (
		mediaType any
		language  any
		result    *negotiation.Result
	)
	router.GET("/", func(c *gin.Context) {
		mediaType, _ = c.Get("content-type")
		language, _ = c.Get("language")
		result, _ = negotiation.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Language", "fr;q=0.9, en;q=0.1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", mediaType)
	assert.Equal(t, "fr", language)

	require.NotNil(t, result)
	match, ok := result.MediaType()
	require.True(t, ok)
	assert.Equal(t, "text/html", match.Value)
}

func TestNegotiationFromConfig_CustomAttributeKeys(t *testing.T) {
	cfg := testConfig()
	cfg.Attributes = &config.AttributeConfig{MediaType: "negotiated-type"}

	router := gin.New()
	router.Use(NegotiationFromConfig(cfg, nil))

	var mediaType any
	router.GET("/", func(c *gin.Context) {
		mediaType, _ = c.Get("negotiated-type")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "application/json", mediaType)
}

func TestNegotiationFromConfig_AbortsNotAcceptable(t *testing.T) {
	cfg := testConfig()
	cfg.SupplyDefaults = false

	router := gin.New()
	router.Use(NegotiationFromConfig(cfg, nil))

	downstream := false
	router.GET("/", func(c *gin.Context) {
		downstream = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/pdf")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.False(t, downstream, "downstream handler must not run on failure")
}

func TestNegotiationFromConfig_EmptyConfigPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(NegotiationFromConfig(&config.NegotiationConfig{}, nil))

	called := false
	router.GET("/", func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/pdf")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
