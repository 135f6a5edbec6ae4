package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager owns the telemetry CSV file. A nil manager (empty dir) is a
// valid no-op sink, mirroring how the rest of the code treats telemetry as
// optional.
type OutputManager struct {
	dir  string
	file *os.File
}

// NewOutputManager creates dir and opens telemetry.csv inside it. Returns
// nil when dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	return &OutputManager{dir: dir, file: f}, nil
}

// WriteTicks appends the records to telemetry.csv, writing the header on the
// first call.
func (om *OutputManager) WriteTicks(records []TickRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	offset, err := om.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("telemetry.csv: %w", err)
	}
	if offset == 0 {
		if err := gocsv.MarshalFile(&records, om.file); err != nil {
			return fmt.Errorf("writing telemetry.csv: %w", err)
		}
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(&records, om.file); err != nil {
		return fmt.Errorf("writing telemetry.csv: %w", err)
	}
	return nil
}

// Dir returns the output directory, or empty for a disabled manager.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the underlying file.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.file.Close()
}
