package interval

import (
	"errors"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token       string
		start, stop float64
	}{
		{"0-10", 0, 10},
		{"5-10", 5, 10},
		{"5.5-10.25", 5.5, 10.25},
		{"-10--5", -10, -5},
		{"-10 - -5", -10, -5},
		{"-10 --5", -10, -5},
		{"+3-+4", 3, 4},
		{" 1-2", 1, 2},
	}

	for _, tt := range tests {
		iv, err := Parse(tt.token)
		expect.NoError(t, err)
		expect.EQ(t, iv.Start(), tt.start)
		expect.EQ(t, iv.Stop(), tt.stop)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, token := range []string{"", "10", "10-", "-", "a-b", "ten-twenty"} {
		_, err := Parse(token)
		expect.True(t, errors.Is(err, ErrParse))
	}
}

func TestParseInverted(t *testing.T) {
	// The token matches the grammar but describes an inverted pair.
	_, err := Parse("10-5")
	expect.True(t, errors.Is(err, ErrInvalidInterval))
}
