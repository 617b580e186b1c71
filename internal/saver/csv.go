package saver

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"ohlc-data/internal/model"
)

// CSVHeader is the first row of every CSV file.
var CSVHeader = []string{"timestamp", "open", "high", "low", "close", "volume"}

// CSVSaver writes bars as CSV: a header row, then one row per bar.
// Timestamps keep the provider's location and are written as RFC 3339.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)

	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			b.Timestamp.Format(time.RFC3339),
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			strconv.FormatInt(b.Volume, 10),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
