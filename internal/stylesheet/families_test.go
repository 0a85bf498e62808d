package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLonghands(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]string
		want  []string
	}{
		{
			name:  "shorthand expands",
			props: map[string]string{"padding": "1rem"},
			want:  []string{"padding-bottom", "padding-left", "padding-right", "padding-top"},
		},
		{
			name:  "longhand stays",
			props: map[string]string{"padding-top": "1rem"},
			want:  []string{"padding-top"},
		},
		{
			name:  "overlapping properties are deduplicated",
			props: map[string]string{"padding-inline": "1rem", "padding-left": "2rem"},
			want:  []string{"padding-left", "padding-right"},
		},
		{
			name:  "vendor prefix normalized",
			props: map[string]string{"-webkit-backdrop-filter": "blur(4px)", "backdrop-filter": "blur(4px)"},
			want:  []string{"backdrop-filter"},
		},
		{
			name:  "custom properties ignored next to real ones",
			props: map[string]string{"--tw-ring-color": "red", "color": "red"},
			want:  []string{"color"},
		},
		{
			name:  "custom properties alone",
			props: map[string]string{"--tw-space-x": "1", "--tw-space-y": "1"},
			want:  []string{"--tw-space-x", "--tw-space-y"},
		},
		{
			name:  "empty",
			props: map[string]string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longhands(tt.props)
			assert.ElementsMatch(t, tt.want, got)
			assert.IsIncreasing(t, got)
		})
	}
}
