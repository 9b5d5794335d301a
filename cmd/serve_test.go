package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePort(t *testing.T) {
	testMatrix := map[string]struct {
		args     []string
		fallback int
		want     int
		wantErr  bool
	}{
		"no argument uses fallback": {
			args:     nil,
			fallback: defaultPort,
			want:     defaultPort,
		},
		"positional wins": {
			args:     []string{"3000"},
			fallback: defaultPort,
			want:     3000,
		},
		"non-integer fails": {
			args:     []string{"abc"},
			fallback: defaultPort,
			wantErr:  true,
		},
		"trailing garbage fails": {
			args:     []string{"8000x"},
			fallback: defaultPort,
			wantErr:  true,
		},
	}

	for name, test := range testMatrix {
		t.Run(name, func(t *testing.T) {
			got, err := parsePort(test.args, test.fallback)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
