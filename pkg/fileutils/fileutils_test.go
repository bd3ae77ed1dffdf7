package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<coverage/>"), 0600))
	}
}

func TestCheckIfExists(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "coverage.xml")

	exists, err := CheckIfExists(filepath.Join(dir, "coverage.xml"))
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = CheckIfExists(filepath.Join(dir, "missing.xml"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestResolve(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	dir := t.TempDir()
	createFiles(t, dir,
		"tests/unit/coverage.cobertura.xml",
		"tests/integration/coverage.cobertura.xml",
		"diff/coverage.diff.json",
	)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.xml"), 0755))

	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr error
	}{
		{"Literal path", filepath.Join(dir, "diff/coverage.diff.json"), filepath.Join(dir, "diff/coverage.diff.json"), nil},
		{"Literal path not found", filepath.Join(dir, "coverage.xml"), "", errs.ErrCoverageFileNotFound},
		{"Literal directory", filepath.Join(dir, "dir.xml"), "", errs.ErrCoverageFileIsDir},
		{"Globstar single match", filepath.Join(dir, "**/*.diff.json"), filepath.Join(dir, "diff/coverage.diff.json"), nil},
		{"Glob without match", filepath.Join(dir, "**/lcov.info"), "", errs.ErrCoverageFileNotFound},
		{"Glob skips directories", filepath.Join(dir, "*.xml"), "", errs.ErrCoverageFileNotFound},
	}
	r := NewResolver(logger)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.pattern)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Glob with several matches", func(t *testing.T) {
		_, err := r.Resolve(filepath.Join(dir, "tests/**/coverage.cobertura.xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "matched 2 files")
	})
}
