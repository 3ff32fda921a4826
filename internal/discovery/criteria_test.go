package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"empty", "", nil},
		{"garbage", "abc", nil},
		{"trailing junk", "3.5x", nil},
		{"integer", "40", f64(40)},
		{"decimal", "3.5", f64(3.5)},
		{"zero", "0", f64(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseBound(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}
