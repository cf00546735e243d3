// Package config provides configuration types and loading for the
// negotiation middleware.
package config

// Config is the root configuration for the negotiation server.
type Config struct {
	// Listen is the address the demo server binds to, e.g. ":8080".
	Listen string `yaml:"listen,omitempty" json:"listen,omitempty"`

	// Negotiation configures the negotiation middleware.
	Negotiation *NegotiationConfig `yaml:"negotiation,omitempty" json:"negotiation,omitempty"`

	// Logging configures structured logging.
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// NegotiationConfig configures the four negotiated header families. Each
// list is ordered by server preference; an empty list skips the family.
type NegotiationConfig struct {
	// MediaTypes lists supported media types for the Accept header, in
	// preference order. Values may carry parameters ("text/html;level=1").
	MediaTypes []string `yaml:"mediaTypes,omitempty" json:"mediaTypes,omitempty"`

	// Languages lists supported languages for the Accept-Language header.
	Languages []string `yaml:"languages,omitempty" json:"languages,omitempty"`

	// Encodings lists supported content codings for the Accept-Encoding header.
	Encodings []string `yaml:"encodings,omitempty" json:"encodings,omitempty"`

	// Charsets lists supported charsets for the Accept-Charset header.
	Charsets []string `yaml:"charsets,omitempty" json:"charsets,omitempty"`

	// SupplyDefaults falls back to the first configured value when a request
	// states no usable preference. When false, such requests are rejected
	// with 406.
	SupplyDefaults bool `yaml:"supplyDefaults" json:"supplyDefaults"`

	// NegotiateAll evaluates every family even after one has failed instead
	// of short-circuiting on the first failure.
	NegotiateAll bool `yaml:"negotiateAll,omitempty" json:"negotiateAll,omitempty"`

	// Attributes names the keys under which negotiated values are stored on
	// the request. Frameworks with keyed stores (gin) use them verbatim.
	Attributes *AttributeConfig `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// AttributeConfig names the per-family storage keys for negotiated values.
type AttributeConfig struct {
	MediaType string `yaml:"mediaType,omitempty" json:"mediaType,omitempty"`
	Language  string `yaml:"language,omitempty" json:"language,omitempty"`
	Encoding  string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Charset   string `yaml:"charset,omitempty" json:"charset,omitempty"`
}

// LoggingConfig configures structured logging output.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	Level string `yaml:"level,omitempty" json:"level,omitempty"`

	// Format is "json" or "console".
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Output is "stdout" or "stderr".
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
}

// DefaultAttributeConfig returns the default storage key names.
func DefaultAttributeConfig() *AttributeConfig {
	return &AttributeConfig{
		MediaType: "content-type",
		Language:  "language",
		Encoding:  "encoding",
		Charset:   "charset",
	}
}

// DefaultNegotiationConfig returns a negotiation configuration serving JSON
// and HTML in English, with default fallback enabled.
func DefaultNegotiationConfig() *NegotiationConfig {
	return &NegotiationConfig{
		MediaTypes:     []string{"application/json", "text/html"},
		Languages:      []string{"en"},
		SupplyDefaults: true,
		Attributes:     DefaultAttributeConfig(),
	}
}

// DefaultConfig returns the default root configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:      ":8080",
		Negotiation: DefaultNegotiationConfig(),
		Logging: &LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// IsEmpty returns true if the NegotiationConfig has no configured families.
func (nc *NegotiationConfig) IsEmpty() bool {
	if nc == nil {
		return true
	}
	return len(nc.MediaTypes) == 0 &&
		len(nc.Languages) == 0 &&
		len(nc.Encodings) == 0 &&
		len(nc.Charsets) == 0
}

// AttributeKeys returns the configured storage keys, falling back to the
// defaults for unset names.
func (nc *NegotiationConfig) AttributeKeys() *AttributeConfig {
	keys := DefaultAttributeConfig()
	if nc == nil || nc.Attributes == nil {
		return keys
	}

	if nc.Attributes.MediaType != "" {
		keys.MediaType = nc.Attributes.MediaType
	}
	if nc.Attributes.Language != "" {
		keys.Language = nc.Attributes.Language
	}
	if nc.Attributes.Encoding != "" {
		keys.Encoding = nc.Attributes.Encoding
	}
	if nc.Attributes.Charset != "" {
		keys.Charset = nc.Attributes.Charset
	}

	return keys
}
