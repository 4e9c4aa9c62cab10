package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v3"
)

// YAMLLoader is a kong.ConfigurationLoader for flat YAML files whose keys
// are flag names, with either dashes or underscores:
//
//	provider: gemini
//	max-length: 4000
//	settle_delay: 5s
//
// Command-line flags override values from the file.
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok && v != nil {
				return fmt.Sprint(v), nil
			}
		}
		return nil, nil
	}), nil
}

// defaultConfigPaths returns the config files read on startup, in order.
// Missing files are skipped.
func defaultConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".pagesift", "config.yaml"))
	}
	if path := os.Getenv("PAGESIFT_CONFIG"); path != "" {
		paths = append(paths, path)
	}
	return paths
}
