package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	nbconvert "github.com/Shawnzheng011019/notebook-automation"
)

// settings are the environment backed defaults, read once at
// startup. Command line flags take precedence.
type settings struct {
	denylist []string
	logLevel string
}

// loadSettings reads a .env file if one sits in the working
// directory, then the NBCONVERT_* variables.
func loadSettings() settings {
	godotenv.Load()

	return settings{
		denylist: splitFragments(getEnv("NBCONVERT_DENYLIST", "")),
		logLevel: getEnv("NBCONVERT_LOG_LEVEL", "warning"),
	}
}

func (s settings) options() nbconvert.Options {
	opts := nbconvert.DefaultOptions()
	if s.denylist != nil {
		opts.Denylist = s.denylist
	}
	return opts
}

// splitFragments splits the comma separated denylist value.
// An empty value keeps the built-in denylist.
func splitFragments(v string) []string {
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fragments = append(fragments, p)
		}
	}
	return fragments
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
