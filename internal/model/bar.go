package model

import (
	"sort"
	"time"
)

// Bar represents one OHLCV bar as returned by a provider.
// Shared by provider adapters, savers and serialization (json, parquet via saver.parquetRow).
type Bar struct {
	Timestamp time.Time `json:"timestamp"` // bar open time, in the location the provider reports
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// SortBars orders bars by timestamp ascending (stable for equal timestamps).
func SortBars(bars []Bar) {
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Timestamp.Before(bars[j].Timestamp) })
}
