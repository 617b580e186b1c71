package saver

import (
	"strings"

	"ohlc-data/internal/model"
)

// BarSaver persists one series of bars to a single file, replacing any existing file at path.
// The orchestrator only depends on this interface; main picks the implementation.
type BarSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewBarSaver creates an implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewBarSaver(format string) BarSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv", "":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
