package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestYAMLLoader(t *testing.T) {
	t.Parallel()

	t.Run("supplies flag defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, strings.Join([]string{
			"provider: gemini",
			"max-length: 4000",
			"settle_delay: 2s",
			"fetcher: http",
		}, "\n"))

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader, path))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"scrape", "https://example.com"})
		require.NoError(t, err)

		assert.Equal(t, "gemini", cli.Provider)
		assert.Equal(t, 4000, cli.MaxLength)
		assert.Equal(t, 2*time.Second, cli.SettleDelay)
		assert.Equal(t, "http", cli.Fetcher)
	})

	t.Run("flags override file values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max-length: 4000\n")

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader, path))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--max-length=100", "scrape", "https://example.com"})
		require.NoError(t, err)

		assert.Equal(t, 100, cli.MaxLength)
	})

	t.Run("skips missing files", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}),
			kong.Configuration(main.YAMLLoader, filepath.Join(t.TempDir(), "missing.yaml")))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"scrape", "https://example.com"})
		require.NoError(t, err)

		assert.Equal(t, 6000, cli.MaxLength)
	})

	t.Run("accepts empty file", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(strings.NewReader(""))

		require.NoError(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(strings.NewReader("provider: [unterminated"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}
