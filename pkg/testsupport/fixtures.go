// Package testsupport locates the shared export fixtures used across package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// FixturePath returns the absolute path of a file under testsupport/testdata.
func FixturePath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// LoadFixture reads a fixture by name.
func LoadFixture(name string) ([]byte, error) {
	return os.ReadFile(FixturePath(name))
}

// LoadGolden decodes a JSON golden file into v.
func LoadGolden(name string, v any) error {
	data, err := os.ReadFile(FixturePath(name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
