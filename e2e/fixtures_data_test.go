//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory holding a dataset
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir, err := os.MkdirTemp("", "contribcard-test-*")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateDataset writes an index listing logins and one document per login
// in docs. It returns the dataset root.
func (tf *TUITestFramework) CreateDataset(logins []string, docs ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	root := filepath.Join(tf.workspace, "dataset")
	data := filepath.Join(root, "data")
	if err := os.MkdirAll(data, 0755); err != nil {
		return "", err
	}

	entries := make([]string, len(logins))
	for i, login := range logins {
		entries[i] = fmt.Sprintf(`{%q: %d}`, login, i+1)
	}
	index := "[" + strings.Join(entries, ", ") + "]"
	if err := os.WriteFile(filepath.Join(data, "contributors.json"), []byte(index), 0644); err != nil {
		return "", err
	}

	for _, login := range docs {
		doc := fmt.Sprintf(`{
  "id": 1,
  "login": %q,
  "contributions": {"total": 1, "by_kind": [{"commit": 1}]},
  "years": [2024],
  "repositories": ["website"],
  "first_contribution": {"kind": "commit", "owner": "kubernetes", "repository": "website", "sha": "abc123", "title": "First", "ts": 1704067200}
}`, login)
		if err := os.WriteFile(filepath.Join(data, login+".json"), []byte(doc), 0644); err != nil {
			return "", err
		}
	}
	return root, nil
}

// StartWithDataset starts the app on a dataset with a fast search delay
func (tf *TUITestFramework) StartWithDataset(root string) error {
	cfg := filepath.Join(tf.workspace, "config.toml")
	content := "[search]\nmin_characters = 2\ndelay_ms = 50\n"
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		return err
	}
	return tf.StartApp("--config", cfg, "--data-dir", root, "--log-file", filepath.Join(tf.workspace, "contribcard.log"))
}
