package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// parseNumbers converts command line arguments to float64 values.
func parseNumbers(args []string) ([]float64, error) {
	xs := make([]float64, 0, len(args))
	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// readNumbersFile reads a YAML (or JSON) sequence of numbers.
func readNumbersFile(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var xs []float64
	if err := yaml.Unmarshal(data, &xs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return xs, nil
}
