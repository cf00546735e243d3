package negotiation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []ClientEntry
	}{
		{
			name:   "single value",
			header: "application/json",
			want: []ClientEntry{
				{Value: "application/json", Quality: 1.0},
			},
		},
		{
			name:   "multiple values default quality",
			header: "application/json, application/xml",
			want: []ClientEntry{
				{Value: "application/json", Quality: 1.0},
				{Value: "application/xml", Quality: 1.0},
			},
		},
		{
			name:   "sorted by descending quality",
			header: "application/xml;q=0.8, application/json;q=0.9, text/html",
			want: []ClientEntry{
				{Value: "text/html", Quality: 1.0},
				{Value: "application/json", Quality: 0.9},
				{Value: "application/xml", Quality: 0.8},
			},
		},
		{
			name:   "equal quality keeps textual order",
			header: "text/html;q=0.5, text/plain;q=0.5, application/json;q=0.5",
			want: []ClientEntry{
				{Value: "text/html", Quality: 0.5},
				{Value: "text/plain", Quality: 0.5},
				{Value: "application/json", Quality: 0.5},
			},
		},
		{
			name:   "whitespace trimmed",
			header: "  text/html ;  q=0.7  ,  application/json  ",
			want: []ClientEntry{
				{Value: "application/json", Quality: 1.0},
				{Value: "text/html", Quality: 0.7},
			},
		},
		{
			name:   "empty segments dropped",
			header: ", text/html, ,",
			want: []ClientEntry{
				{Value: "text/html", Quality: 1.0},
			},
		},
		{
			name:   "invalid quality degrades to zero",
			header: "gzip;q=abc",
			want: []ClientEntry{
				{Value: "gzip", Quality: 0},
			},
		},
		{
			name:   "quality above one degrades to zero",
			header: "gzip;q=1.5",
			want: []ClientEntry{
				{Value: "gzip", Quality: 0},
			},
		},
		{
			name:   "too many fraction digits degrades to zero",
			header: "gzip;q=0.1234",
			want: []ClientEntry{
				{Value: "gzip", Quality: 0},
			},
		},
		{
			name:   "three fraction digits accepted",
			header: "gzip;q=0.125",
			want: []ClientEntry{
				{Value: "gzip", Quality: 0.125},
			},
		},
		{
			name:   "one point zero zero zero accepted",
			header: "gzip;q=1.000",
			want: []ClientEntry{
				{Value: "gzip", Quality: 1.0},
			},
		},
		{
			name:   "parameters other than q retained",
			header: "text/html;level=1;q=0.9",
			want: []ClientEntry{
				{Value: "text/html", Quality: 0.9, Params: map[string]string{"level": "1"}},
			},
		},
		{
			name:   "charset parameter on accept entry retained",
			header: "application/json; charset=utf-8",
			want: []ClientEntry{
				{Value: "application/json", Quality: 1.0, Params: map[string]string{"charset": "utf-8"}},
			},
		},
		{
			name:   "empty header",
			header: "",
			want:   []ClientEntry{},
		},
		{
			name:   "entirely malformed header",
			header: ",;,;  , ;",
			want:   []ClientEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHeader(tt.header)
			assert.Equal(t, len(tt.want), len(got))
			for i, want := range tt.want {
				if i >= len(got) {
					break
				}
				assert.Equal(t, want.Value, got[i].Value)
				assert.InDelta(t, want.Quality, got[i].Quality, 0.0001)
				assert.Equal(t, want.Params, got[i].Params)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "bare one", raw: "1", want: 1.0},
		{name: "bare zero", raw: "0", want: 0},
		{name: "decimal", raw: "0.5", want: 0.5},
		{name: "three digits", raw: "0.001", want: 0.001},
		{name: "empty", raw: "", want: 0},
		{name: "negative", raw: "-0.5", want: 0},
		{name: "above one", raw: "1.001", want: 0},
		{name: "no leading digit", raw: ".5", want: 0},
		{name: "trailing garbage", raw: "0.5x", want: 0},
		{name: "four fraction digits", raw: "0.5000", want: 0},
		{name: "two", raw: "2", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseQuality(tt.raw), 0.0001)
		})
	}
}
