package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/sievelabs/assessrec/core"
)

func writeCatalogFile(path string, assessments []*core.Assessment) error {
	data, err := json.MarshalIndent(assessments, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}

func readCatalogFile(path string) ([]*core.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var assessments []*core.Assessment
	if err := json.Unmarshal(data, &assessments); err != nil {
		return nil, fmt.Errorf("decoding catalog file: %w", err)
	}
	return assessments, nil
}
