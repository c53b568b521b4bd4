package orchestrator

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// AnalysisRecord tracks one run of the pipeline. It is safe for concurrent
// use; read it through Snapshot.
type AnalysisRecord struct {
	mu        sync.Mutex
	id        string
	filename  string
	status    Status
	progress  int
	createdAt time.Time
	updatedAt time.Time
	errMsg    string
	metadata  map[string]any
	now       func() time.Time
}

// RecordSnapshot is the serializable state of a record.
type RecordSnapshot struct {
	AnalysisID   string         `json:"analysis_id" yaml:"analysis_id"`
	Filename     string         `json:"filename" yaml:"filename"`
	Status       Status         `json:"status" yaml:"status"`
	Progress     int            `json:"progress" yaml:"progress"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" yaml:"updated_at"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Metadata     map[string]any `json:"metadata" yaml:"metadata"`
}

func NewAnalysisRecord(filename string) *AnalysisRecord {
	return newRecord(filename, time.Now)
}

func newRecord(filename string, now func() time.Time) *AnalysisRecord {
	t := now()
	return &AnalysisRecord{
		id:        uuid.NewString(),
		filename:  filename,
		status:    StatusPending,
		createdAt: t,
		updatedAt: t,
		metadata:  map[string]any{},
		now:       now,
	}
}

func (r *AnalysisRecord) ID() string { return r.id }

func (r *AnalysisRecord) SetStatus(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
	r.updatedAt = r.now()
}

// SetProgress clamps p to 0..100.
func (r *AnalysisRecord) SetProgress(p int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = max(0, min(100, p))
	r.updatedAt = r.now()
}

// Fail marks the record failed with msg.
func (r *AnalysisRecord) Fail(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusFailed
	r.errMsg = msg
	r.updatedAt = r.now()
}

// Complete marks the record completed at full progress.
func (r *AnalysisRecord) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusCompleted
	r.progress = 100
	r.updatedAt = r.now()
}

func (r *AnalysisRecord) AddMetadata(key string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata[key] = v
	r.updatedAt = r.now()
}

func (r *AnalysisRecord) Snapshot() RecordSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RecordSnapshot{
		AnalysisID:   r.id,
		Filename:     r.filename,
		Status:       r.status,
		Progress:     r.progress,
		CreatedAt:    r.createdAt,
		UpdatedAt:    r.updatedAt,
		ErrorMessage: r.errMsg,
		Metadata:     maps.Clone(r.metadata),
	}
}

// Result is everything one run produced.
type Result struct {
	Record     RecordSnapshot
	Raw        evaluation.RawResults
	Transcript string
	Report     *evaluation.Report
	// Dir is where the run was persisted.
	Dir string
	// RadarPath is set when the visualization service rendered a chart.
	RadarPath string
}
