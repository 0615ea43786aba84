package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config carries everything resolved once at startup. The corpus root is
// explicit here and threaded through every component; nothing below main
// consults the environment or the working directory.
type Config struct {
	// Root is the corpus root holding the 26 shard directories.
	Root string

	// Workers bounds concurrent document processing.
	Workers int

	// Listen is the serve-mode bind address.
	Listen string

	// KeepGoing collects structural failures per document and reports them
	// all instead of aborting on the first one. Default off: a structural
	// failure means the extraction rules are incomplete, and the run must
	// visibly fail rather than emit a partial collection.
	KeepGoing bool
}

func Load() Config {
	return Config{
		Root:      envOr("SRDEX_ROOT", defaultRoot()),
		Workers:   envInt("SRDEX_WORKERS", 8),
		Listen:    envOr("SRDEX_LISTEN", ":8090"),
		KeepGoing: envBool("SRDEX_KEEP_GOING", false),
	}
}

// defaultRoot is the spells directory next to the executable.
func defaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "spells"
	}
	return filepath.Join(filepath.Dir(exe), "spells")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
