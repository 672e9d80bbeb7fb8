package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNIM(t *testing.T) {
	testCases := []struct {
		name  string
		nim   string
		valid bool
	}{
		{name: "Plain digits", nim: "2110511001", valid: true},
		{name: "Single digit", nim: "7", valid: true},
		{name: "Empty", nim: "", valid: false},
		{name: "Letters", nim: "21A0511", valid: false},
		{name: "Leading space", nim: " 2110511", valid: false},
		{name: "Trailing newline", nim: "2110511\n", valid: false},
		{name: "Negative number", nim: "-2110511", valid: false},
		{name: "Decimal", nim: "21.10511", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, NIM(tc.nim))
		})
	}
}
