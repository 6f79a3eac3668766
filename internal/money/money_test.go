package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLenient(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,204.50", 1204.50},
		{"1204.50", 1204.50},
		{" $99 ", 99},
		{"Unknown", 0},
		{"", 0},
		{"$", 0},
		{"12,000", 12000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLenient(tc.in), "input %q", tc.in)
	}
}
