package saver

import (
	"github.com/parquet-go/parquet-go"

	"ohlc-data/internal/model"
)

// parquetRow is the on-disk parquet schema; the timestamp is Unix milliseconds.
type parquetRow struct {
	Timestamp int64   `parquet:"timestamp"`
	Open      float64 `parquet:"open"`
	High      float64 `parquet:"high"`
	Low       float64 `parquet:"low"`
	Close     float64 `parquet:"close"`
	Volume    int64   `parquet:"volume"`
}

// ParquetSaver writes bars as a parquet file.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	rows := make([]parquetRow, len(bars))
	for i, b := range bars {
		rows[i] = parquetRow{
			Timestamp: b.Timestamp.UnixMilli(),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
		}
	}
	return parquet.WriteFile(path, rows)
}
