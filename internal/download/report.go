package download

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	successReport = ".lastrun.success.json"
	failedReport  = ".lastrun.failed.json"
)

type successEntry struct {
	Symbol string `json:"symbol"`
	Path   string `json:"path"`
	Bars   int    `json:"bars"`
}

type failedEntry struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

type runReport[T any] struct {
	RunID    string    `json:"run_id"`
	Provider string    `json:"provider"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Entries  []T       `json:"entries"`
}

// writeRunReport replaces the reports of the previous run. A side with no entries has its file removed.
func writeRunReport(root string, sum Summary) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	ok := make([]successEntry, 0, len(sum.Succeeded))
	for _, r := range sum.Succeeded {
		ok = append(ok, successEntry{Symbol: r.Symbol, Path: r.Path, Bars: r.Bars})
	}
	failed := make([]failedEntry, 0, len(sum.Failed))
	for _, r := range sum.Failed {
		failed = append(failed, failedEntry{Symbol: r.Symbol, Reason: r.Err.Error()})
	}
	if err := writeReportFile(filepath.Join(root, successReport), newReport(sum, ok)); err != nil {
		return err
	}
	return writeReportFile(filepath.Join(root, failedReport), newReport(sum, failed))
}

func newReport[T any](sum Summary, entries []T) runReport[T] {
	return runReport[T]{
		RunID:    sum.RunID,
		Provider: sum.Provider,
		Started:  sum.Started,
		Finished: sum.Finished,
		Entries:  entries,
	}
}

func writeReportFile[T any](path string, rep runReport[T]) error {
	if len(rep.Entries) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	slog.Debug("report wrote", "path", path, "entries", len(rep.Entries))
	return nil
}

// FailedReasons joins failures as "SYM: reason; ..." and truncates after five when there are many.
func FailedReasons(failed []Result) string {
	if len(failed) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range failed {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Symbol)
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
		if i >= 4 && len(failed) > 6 {
			b.WriteString(fmt.Sprintf(" (+%d more)", len(failed)-5))
			break
		}
	}
	return b.String()
}
