package fileutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/core"
	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
	"github.com/bmatcuk/doublestar/v4"
)

const globMeta = "*?[{"

type resolver struct {
	logger lumber.Logger
}

// NewResolver returns a FileResolver that accepts literal paths and doublestar patterns
func NewResolver(logger lumber.Logger) core.FileResolver {
	return &resolver{logger: logger}
}

// CheckIfExists checks if file or directory exists in the given path.
func CheckIfExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsPattern reports whether path contains glob meta characters
func IsPattern(path string) bool {
	return strings.ContainsAny(path, globMeta)
}

// Resolve returns the single regular file designated by pattern.
func (r *resolver) Resolve(pattern string) (string, error) {
	if !IsPattern(pattern) {
		return r.resolveLiteral(pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		r.logger.Errorf("invalid coverage file pattern %s, error: %v", pattern, err)
		return "", err
	}
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if info, statErr := os.Stat(match); statErr == nil && info.Mode().IsRegular() {
			files = append(files, match)
		}
	}
	sort.Strings(files)

	switch len(files) {
	case 0:
		return "", errs.ErrCoverageFileNotFound
	case 1:
		r.logger.Debugf("pattern %s resolved to %s", pattern, files[0])
		return files[0], nil
	default:
		return "", errs.ErrAmbiguousCoverageFile(pattern, files)
	}
}

func (r *resolver) resolveLiteral(path string) (string, error) {
	exists, err := CheckIfExists(path)
	if err != nil {
		return "", err
	}
	if !exists {
		r.logger.Errorf("coverage file %s not found", path)
		return "", errs.ErrCoverageFileNotFound
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", errs.ErrCoverageFileIsDir
	}
	return filepath.Clean(path), nil
}
