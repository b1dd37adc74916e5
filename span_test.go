package thousands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/thousands"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		policy thousands.SeparatorPolicy
		prefix string
		digits string
		suffix string
	}{
		{
			name:   "bare number",
			input:  "12345",
			policy: thousands.CommaPolicy,
			digits: "12345",
		},
		{
			name:   "sign and fraction",
			input:  "-1234.5",
			policy: thousands.CommaPolicy,
			prefix: "-",
			digits: "1234",
			suffix: ".5",
		},
		{
			name:   "no digits",
			input:  "abc",
			policy: thousands.CommaPolicy,
			prefix: "abc",
		},
		{
			name:   "empty input",
			input:  "",
			policy: thousands.CommaPolicy,
		},
		{
			name:   "first run wins",
			input:  "x123y456z",
			policy: thousands.CommaPolicy,
			prefix: "x",
			digits: "123",
			suffix: "y456z",
		},
		{
			name:   "multi-byte prefix",
			input:  "€1234",
			policy: thousands.CommaPolicy,
			prefix: "€",
			digits: "1234",
		},
		{
			name:   "hex run stops at non-hex character",
			input:  "deadbeef!",
			policy: thousands.HexFourPolicy,
			digits: "deadbeef",
			suffix: "!",
		},
		{
			name:   "unit suffix",
			input:  "1500m",
			policy: thousands.SpacePolicy,
			digits: "1500",
			suffix: "m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prefix, digits, suffix := thousands.Span(tt.input, tt.policy)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.digits, digits)
			assert.Equal(t, tt.suffix, suffix)
			assert.Equal(t, tt.input, prefix+digits+suffix, "span must reconstitute the input")
		})
	}
}
