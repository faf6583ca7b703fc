package passgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeparatorSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		symbols []string
		spec    SeparatorSpec
		want    []string
	}{
		{
			name:    "no repeat excludes doubled symbols",
			symbols: []string{"!", "@"},
			spec:    SeparatorSpec{MaxPerGap: 2, AllowRepeat: false},
			want:    []string{"", "!", "!@", "@", "@!"},
		},
		{
			name:    "repeat allowed is full cartesian power",
			symbols: []string{"!", "@"},
			spec:    SeparatorSpec{MaxPerGap: 2, AllowRepeat: true},
			want:    []string{"", "!", "!!", "!@", "@", "@!", "@@"},
		},
		{
			name:    "no symbols keeps only the empty gap",
			symbols: nil,
			spec:    SeparatorSpec{MaxPerGap: 3, AllowRepeat: true},
			want:    []string{""},
		},
		{
			name:    "max zero keeps only the empty gap",
			symbols: []string{"!"},
			spec:    SeparatorSpec{MaxPerGap: 0, AllowRepeat: true},
			want:    []string{""},
		},
		{
			name:    "duplicate symbol cannot fake a repeat",
			symbols: []string{"!", "!"},
			spec:    SeparatorSpec{MaxPerGap: 2, AllowRepeat: false},
			want:    []string{"", "!"},
		},
		{
			name:    "no repeat length capped at distinct symbols",
			symbols: []string{"_"},
			spec:    SeparatorSpec{MaxPerGap: 3, AllowRepeat: false},
			want:    []string{"", "_"},
		},
		{
			name:    "single symbol repeated to max length",
			symbols: []string{"_"},
			spec:    SeparatorSpec{MaxPerGap: 3, AllowRepeat: true},
			want:    []string{"", "_", "__", "___"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, separatorSequences(tt.symbols, tt.spec))
		})
	}
}
