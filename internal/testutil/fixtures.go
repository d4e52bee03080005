package testutil

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// Template returns the squid.conf.in fixture.
func Template() []byte {
	data, err := LoadFixture("squid.conf.in")
	if err != nil {
		panic(err)
	}
	return data
}

// WriteFixture copies a fixture to dir and returns its path.
func WriteFixture(dir, name string) (string, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
