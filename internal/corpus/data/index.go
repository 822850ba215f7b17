package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/corpusdata/corpus-cli/internal/corpus/logging"
)

// IndexFileName is the per-root manifest listing installed data packages.
const IndexFileName = "index.yaml"

// Package describes one installed data package as recorded in a root's
// index file.
type Package struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	// Root is the search-path root the package was found under. It is set by
	// ListPackages; a root recorded in the index file itself is ignored.
	Root string `yaml:"root,omitempty" json:"root"`
}

type indexFile struct {
	Packages []Package `yaml:"packages"`
}

// ListPackages reads the index file of every root that has one and merges
// the results. When the same package id appears under several roots, the
// entry with the highest semantic version wins. Entries with unparsable
// versions are skipped with a warning. Roots without an index file are not
// an error.
func ListPackages(roots []string) ([]Package, error) {
	byID := make(map[string]Package)

	for _, root := range roots {
		idx, err := readIndex(filepath.Join(root, IndexFileName))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading index for %s: %w", root, err)
		}

		for _, pkg := range idx.Packages {
			if pkg.ID == "" {
				logging.Warn("skipping index entry without id", zap.String("root", root))
				continue
			}
			version, err := semver.NewVersion(pkg.Version)
			if err != nil {
				logging.Warn("skipping package with invalid version",
					zap.String("id", pkg.ID),
					zap.String("version", pkg.Version),
					zap.String("root", root),
				)
				continue
			}

			pkg.Root = root
			existing, ok := byID[pkg.ID]
			if !ok {
				byID[pkg.ID] = pkg
				continue
			}
			existingVersion, err := semver.NewVersion(existing.Version)
			if err == nil && version.GreaterThan(existingVersion) {
				byID[pkg.ID] = pkg
			}
		}
	}

	packages := make([]Package, 0, len(byID))
	for _, pkg := range byID {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].ID < packages[j].ID
	})

	return packages, nil
}

func readIndex(path string) (*indexFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var idx indexFile
	if err := yaml.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &idx, nil
}
