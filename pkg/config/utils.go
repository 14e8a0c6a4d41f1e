package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile returns the path of filename in the working directory or the
// closest parent that has one. An empty filename means ".env".
func FindEnvFile(filename string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findUpward(wd, filename)
}

func findUpward(dir, filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
