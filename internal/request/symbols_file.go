package request

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LoadSymbolsFromFile reads symbols from a file.
// Supported formats:
//   - .txt  : one or more symbols per line, '#' lines are treated as comments
//   - .json : JSON array of strings
func LoadSymbolsFromFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symbols file %s: %w", path, err)
	}

	var raw []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON %s: %w", path, err)
		}
	case ".txt":
		raw = parseSymbolsFromText(string(content))
	default:
		return nil, fmt.Errorf("unsupported symbols file extension %q (use .txt or .json)", filepath.Ext(path))
	}

	symbols, err := normalizeSymbols(raw)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded symbols from file", "count", len(symbols), "path", path)
	return symbols, nil
}

func parseSymbolsFromText(s string) []string {
	var symbols []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		symbols = append(symbols, strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}
	return symbols
}
