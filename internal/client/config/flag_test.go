package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-u", "http://store:8080", "-k", "key", "-h", "store:50051", "-g", "gem", "-i", "10"},
			expected: &Config{
				StoreURL: "http://store:8080", StoreKey: "key", HealthAddr: "store:50051",
				GeneratorKey: "gem", OnlineCheckInterval: 10 * time.Second,
			},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-config", "x.json", "-u=http://eq:1", "-z", "zz"},
			expected: &Config{StoreURL: "http://eq:1"},
		},
		{name: "incorrect check interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
