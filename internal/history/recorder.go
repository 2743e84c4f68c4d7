package history

import "ptd/internal/domain"

// Recorder persists run summaries so past runs can be compared.
type Recorder interface {
	Record(meta domain.RunMeta) error
	Recent(limit int) ([]domain.RunMeta, error)
	Close() error
}

// NopRecorder is used when no history database is configured. All
// operations succeed without doing anything.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(domain.RunMeta) error { return nil }

// Recent implements Recorder.
func (NopRecorder) Recent(int) ([]domain.RunMeta, error) { return nil, nil }

// Close implements Recorder.
func (NopRecorder) Close() error { return nil }
