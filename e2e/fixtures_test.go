//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "fuzzypick-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = workspace
	return workspace, nil
}

// WriteFiles creates files relative to the workspace
func (tf *TUITestFramework) WriteFiles(files map[string]string) error {
	for name, content := range files {
		path := filepath.Join(tf.workspace, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
