package util

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandUser expands a leading home-directory marker (~ or ~user) in a path.
// The remainder of the path is preserved byte-for-byte; no cleaning or
// separator normalization is applied. If the home directory cannot be
// resolved (or the named user does not exist), the original path is returned
// unchanged. ExpandUser never fails.
//
// A tilde anywhere other than the start of the path is left alone, and only
// the leading marker is substituted.
func ExpandUser(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	// ~ or ~/rest (also ~\rest on Windows)
	if len(path) == 1 || os.IsPathSeparator(path[1]) {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" {
			return path
		}
		return homeDir + path[1:]
	}

	// ~user or ~user/rest
	name := path[1:]
	rest := ""
	if i := strings.IndexFunc(name, isPathSeparator); i >= 0 {
		name, rest = name[:i], path[1+i:]
	}
	u, err := user.Lookup(name)
	if err != nil || u.HomeDir == "" {
		return path
	}
	return u.HomeDir + rest
}

func isPathSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

// ExpandPath expands environment variables and a leading home-directory
// marker in file paths, then normalizes the result. It handles:
// - Empty paths (returns empty string)
// - Environment variable expansion (e.g., $HOME/config)
// - Home directory expansion (e.g., ~/config, ~ or ~user/config)
// - Path normalization for cross-platform compatibility
//
// Unlike ExpandUser, the result is passed through filepath.Clean, so use
// ExpandUser directly where the remainder of the path must be preserved
// exactly.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	expanded := ExpandUser(os.ExpandEnv(path))

	return filepath.Clean(expanded)
}

// ExpandSearchPath expands the home-directory marker in every entry of a
// search-path list. The input slice is not modified.
func ExpandSearchPath(paths []string) []string {
	if paths == nil {
		return nil
	}
	expanded := make([]string, len(paths))
	for i, p := range paths {
		expanded[i] = ExpandUser(p)
	}
	return expanded
}
