// Package data locates corpus resource files on the local data search path.
//
// The search path is assembled from the CORPUS_DATA environment variable, the
// configured data directory, and a set of conventional per-platform
// locations. Every entry has its home-directory marker expanded before it is
// used, so callers never see a path with a leading tilde.
package data

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/corpusdata/corpus-cli/internal/corpus/config"
	"github.com/corpusdata/corpus-cli/internal/corpus/util"
)

// EnvVar names the environment variable holding extra search-path roots,
// separated by the platform's path-list separator.
const EnvVar = "CORPUS_DATA"

// DirName is the conventional name of a corpus data directory.
const DirName = "corpus_data"

// SearchPath returns the ordered list of roots to search for resources:
// CORPUS_DATA entries first, then the configured data_dir, then the platform
// defaults. Entries are tilde-expanded and deduplicated; order is preserved.
// cfg may be nil.
func SearchPath(cfg *config.Config) []string {
	var roots []string

	if env := os.Getenv(EnvVar); env != "" {
		for _, p := range strings.Split(env, string(os.PathListSeparator)) {
			if p != "" {
				roots = append(roots, p)
			}
		}
	}

	if cfg != nil && cfg.DataDir != "" {
		roots = append(roots, cfg.DataDir)
	}

	roots = append(roots, defaultRoots()...)

	return dedupe(util.ExpandSearchPath(roots))
}

func defaultRoots() []string {
	roots := []string{"~/" + DirName}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			roots = append(roots, filepath.Join(appData, DirName))
		}
		return roots
	}

	return append(roots,
		"/usr/share/"+DirName,
		"/usr/local/share/"+DirName,
		"/usr/lib/"+DirName,
		"/usr/local/lib/"+DirName,
	)
}

func dedupe(roots []string) []string {
	seen := make(map[string]struct{}, len(roots))
	out := roots[:0]
	for _, r := range roots {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
