package trace

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVLog writes one row per Decision, the harness's equivalent of the
// original scheduler's EnableCSVLogging: open once, Write per decision,
// Close when the replay is done.
type CSVLog struct {
	file   *os.File
	writer *csv.Writer
}

// OpenCSVLog creates path and writes the header row.
func OpenCSVLog(path string) (*CSVLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "kind", "core_id", "job_id"}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	return &CSVLog{file: f, writer: w}, nil
}

// Record appends one decision row and flushes immediately, mirroring the
// original logger's per-event flush.
func (l *CSVLog) Record(d Decision) {
	l.writer.Write([]string{
		strconv.Itoa(d.Time),
		d.Kind,
		strconv.Itoa(d.CoreID),
		strconv.Itoa(d.JobID),
	})
	l.writer.Flush()
}

// Close flushes and closes the underlying file.
func (l *CSVLog) Close() error {
	l.writer.Flush()
	return l.file.Close()
}
