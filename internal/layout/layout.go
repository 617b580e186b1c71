// Package layout maps intervals to output folders and builds file paths under the data root.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is the data directory used when none is configured.
const DefaultRoot = "ohlc_csv"

// ErrNoFolder is returned when an interval has no output folder. It is fatal for that request.
var ErrNoFolder = errors.New("no output folder for interval")

var folders = map[string]string{
	"5m":  "m5",
	"15m": "m15",
	"30m": "m30",
	"1h":  "h1",
	"4h":  "h4",
	"1d":  "d1",
}

// Folders returns every timeframe subfolder in interval order.
func Folders() []string {
	return []string{"m5", "m15", "m30", "h1", "h4", "d1"}
}

// Folder returns the subfolder for interval, or false when it is not one of the presets.
func Folder(interval string) (string, bool) {
	f, ok := folders[interval]
	return f, ok
}

// FileName is {symbol}_{period}_{interval}.{ext}. An empty period leaves a double underscore.
func FileName(symbol, period, interval, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", symbol, period, interval, ext)
}

// FilePath returns root/{folder}/{symbol}_{period}_{interval}.{ext}.
func FilePath(root, symbol, period, interval, ext string) (string, error) {
	folder, ok := Folder(interval)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrNoFolder, interval)
	}
	return filepath.Join(root, folder, FileName(symbol, period, interval, ext)), nil
}

// Bootstrap creates root and its timeframe subfolders. Safe to call repeatedly.
// created is true when root did not exist before.
func Bootstrap(root string) (created bool, err error) {
	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		created = true
	}
	for _, f := range Folders() {
		if err := os.MkdirAll(filepath.Join(root, f), 0o755); err != nil {
			return created, fmt.Errorf("create %s: %w", filepath.Join(root, f), err)
		}
	}
	return created, nil
}
