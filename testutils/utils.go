package testutils

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
)

// getCurrentWorkingDir give the root directory of the module
func getCurrentWorkingDir() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errs.New("runtime.Calller(1) was unable to recover information")
	}
	filepath := path.Join(path.Dir(filename), "../")
	return filepath, nil
}

// GetLogger returns a dummy lumber.Logger.
func GetLogger() (lumber.Logger, error) {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{ConsoleLevel: lumber.Debug}, true, lumber.InstanceLogrusLogger)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// GetPath returns the absolute path of a file relative to the module root.
func GetPath(relativePath string) (string, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return "", err
	}
	return path.Join(cwd, relativePath), nil
}

// LoadFile returns the content of a file relative to the module root.
func LoadFile(relativePath string) ([]byte, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return nil, err
	}
	absPath := fmt.Sprintf("%s/%s", cwd, relativePath)
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	return data, err
}
