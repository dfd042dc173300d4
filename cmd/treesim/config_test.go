package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		want    Config
		wantErr string
	}{
		{
			name: "no path",
			path: func(t *testing.T) string { return "" },
			want: defaultConfig,
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			want: defaultConfig,
		},
		{
			name: "partial",
			path: func(t *testing.T) string {
				return writeConfig(t, "pattern: avl-tree\nspeed: 2.5\nseed: 42\n")
			},
			want: Config{
				Pattern:   "avl-tree",
				Size:      defaultConfig.Size,
				Algorithm: defaultConfig.Algorithm,
				Speed:     2.5,
				Seed:      42,
				Workers:   defaultConfig.Workers,
				Rounds:    defaultConfig.Rounds,
			},
		},
		{
			name: "malformed",
			path: func(t *testing.T) string {
				return writeConfig(t, "pattern: [unclosed\n")
			},
			wantErr: "parsing config",
		},
		{
			name: "unknown pattern",
			path: func(t *testing.T) string {
				return writeConfig(t, "pattern: splay-tree\n")
			},
			wantErr: "unknown pattern",
		},
		{
			name: "unknown algorithm",
			path: func(t *testing.T) string {
				return writeConfig(t, "algorithm: dfs-sideways\n")
			},
			wantErr: "unknown algorithm",
		},
		{
			name: "size out of range",
			path: func(t *testing.T) string {
				return writeConfig(t, "size: 51\n")
			},
			wantErr: "size 51 is outside [5, 50]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.path(t))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLoadConfig_DoesNotModifyDefaults(t *testing.T) {
	before := defaultConfig

	_, err := LoadConfig(writeConfig(t, "size: 20\n"))
	require.NoError(t, err)
	assert.Equal(t, before, defaultConfig)
}

func TestConfig_Merged(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x"}
		addTreeFlags(cmd)
		cmd.Flags().String("algorithm", defaultConfig.Algorithm, "")
		cmd.Flags().Float64("speed", defaultConfig.Speed, "")
		return cmd
	}
	base := Config{
		Pattern:   "min-heap",
		Size:      30,
		Algorithm: "dfs-inorder",
		Speed:     3,
		Workers:   2,
		Rounds:    1,
	}

	t.Run("file values kept", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags(nil))

		got, err := base.merged(cmd)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("flags win", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--size", "7", "--speed", "0.5"}))

		got, err := base.merged(cmd)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Size)
		assert.Equal(t, 0.5, got.Speed)
		assert.Equal(t, "min-heap", got.Pattern)
		assert.Equal(t, 30, base.Size, "merged works on a copy")
	})

	t.Run("bad flag value", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--pattern", "trie"}))

		_, err := base.merged(cmd)
		assert.ErrorContains(t, err, "unknown pattern")
	})
}
