package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/corpusdata/corpus-cli/internal/corpus/logging"
	"github.com/corpusdata/corpus-cli/internal/corpus/util"
)

// NotFoundError is returned by Find when a resource exists under none of the
// searched roots.
type NotFoundError struct {
	Resource string
	Roots    []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "resource %q not found; searched in:", e.Resource)
	for _, root := range e.Roots {
		fmt.Fprintf(&b, "\n  - %s", root)
	}
	fmt.Fprintf(&b, "\nSet the %s environment variable or data_dir to add search locations", EnvVar)
	return b.String()
}

// Find locates a resource (e.g. "tokenizers/punkt/english") under the given
// search roots and returns the path of the first match. The resource itself
// is tilde-expanded first; an absolute resource is checked directly and
// returned as-is when it exists. Roots are tried in order, and each is
// expanded before the existence check. A miss returns a *NotFoundError.
func Find(resource string, roots []string) (string, error) {
	if resource == "" {
		return "", fmt.Errorf("resource name is empty")
	}

	resource = util.ExpandUser(resource)

	if filepath.IsAbs(resource) {
		if exists(resource) {
			return resource, nil
		}
		return "", &NotFoundError{Resource: resource, Roots: []string{filepath.Dir(resource)}}
	}

	searched := make([]string, 0, len(roots))
	for _, root := range roots {
		root = util.ExpandUser(root)
		if root == "" {
			continue
		}
		searched = append(searched, root)

		candidate := filepath.Join(root, resource)
		if exists(candidate) {
			logging.Debug("resource found",
				zap.String("resource", resource),
				zap.String("path", candidate),
			)
			return candidate, nil
		}
	}

	return "", &NotFoundError{Resource: resource, Roots: searched}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
