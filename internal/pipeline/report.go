package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/pagesmith/internal/fsutil"
	"git.home.luguber.info/inful/pagesmith/internal/metrics"
	"git.home.luguber.info/inful/pagesmith/internal/version"
)

// RunOutcome is the final state of a run.
type RunOutcome string

const (
	OutcomeSuccess  RunOutcome = "success"
	OutcomeFailed   RunOutcome = "failed"
	OutcomeCanceled RunOutcome = "canceled"
)

// StageRecord is the report entry of one stage.
type StageRecord struct {
	Stage    StageName
	Result   StageResult
	Duration time.Duration
}

// RunReport captures what a run did and how it ended.
type RunReport struct {
	SchemaVersion int
	RunID         string
	Project       string
	Version       string
	Start         time.Time
	End           time.Time
	Stages        []StageRecord
	Errors        []error
	Outcome       RunOutcome
	Manifest      []string // copied asset file names
	Artifacts     []string // written file paths
}

// NewRunReport constructs a report for a run that starts now.
func NewRunReport(runID, project string) *RunReport {
	return &RunReport{
		SchemaVersion: 1,
		RunID:         runID,
		Project:       project,
		Version:       version.Version,
		Start:         time.Now(),
	}
}

// RecordStage appends a stage entry and emits the stage result metric.
func (r *RunReport) RecordStage(stage StageName, res StageResult, d time.Duration, recorder metrics.Recorder) {
	r.Stages = append(r.Stages, StageRecord{Stage: stage, Result: res, Duration: d})
	if recorder == nil {
		return
	}
	switch res {
	case StageResultSuccess:
		recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	case StageResultFatal:
		recorder.IncStageResult(string(stage), metrics.ResultFatal)
	case StageResultCanceled:
		recorder.IncStageResult(string(stage), metrics.ResultCanceled)
	case StageResultSkipped:
		recorder.IncStageResult(string(stage), metrics.ResultSkipped)
	}
}

// Result returns the recorded result of stage, if it was recorded.
func (r *RunReport) Result(stage StageName) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s.Result, true
		}
	}
	return "", false
}

// Finish sets the end time of the report.
func (r *RunReport) Finish() { r.End = time.Now() }

// DeriveOutcome sets Outcome from the recorded errors.
func (r *RunReport) DeriveOutcome() {
	if len(r.Errors) == 0 {
		r.Outcome = OutcomeSuccess
		return
	}
	for _, e := range r.Errors {
		var se *StageError
		if errors.As(e, &se) && se.Kind == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	r.Outcome = OutcomeFailed
}

// Summary returns a human-readable single-line summary.
func (r *RunReport) Summary() string {
	dur := r.End.Sub(r.Start)
	return fmt.Sprintf("project=%s stages=%d assets=%d artifacts=%d duration=%s outcome=%s",
		r.Project, len(r.Stages), len(r.Manifest), len(r.Artifacts), dur.Truncate(time.Millisecond), r.Outcome)
}

// Persist writes the report as JSON to path, replacing any previous report.
func (r *RunReport) Persist(path string) error {
	if r.End.IsZero() {
		r.Finish()
		r.DeriveOutcome()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("ensure directory for report: %w", err)
	}
	jb, err := json.MarshalIndent(r.Serializable(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, append(jb, '\n'), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Serializable returns a JSON friendly copy with errors as strings and
// durations in milliseconds.
func (r *RunReport) Serializable() *RunReportSerializable {
	s := &RunReportSerializable{
		SchemaVersion: r.SchemaVersion,
		RunID:         r.RunID,
		Project:       r.Project,
		Version:       r.Version,
		Start:         r.Start,
		End:           r.End,
		Stages:        make([]StageRecordSerializable, len(r.Stages)),
		Errors:        make([]string, len(r.Errors)),
		Outcome:       string(r.Outcome),
		Manifest:      r.Manifest,
		Artifacts:     r.Artifacts,
	}
	for i, st := range r.Stages {
		s.Stages[i] = StageRecordSerializable{
			Stage:      string(st.Stage),
			Result:     string(st.Result),
			DurationMS: float64(st.Duration) / float64(time.Millisecond),
		}
	}
	for i, e := range r.Errors {
		s.Errors[i] = e.Error()
	}
	if s.Manifest == nil {
		s.Manifest = []string{}
	}
	if s.Artifacts == nil {
		s.Artifacts = []string{}
	}
	return s
}

// RunReportSerializable mirrors RunReport for JSON output.
type RunReportSerializable struct {
	SchemaVersion int                       `json:"schema_version"`
	RunID         string                    `json:"run_id"`
	Project       string                    `json:"project"`
	Version       string                    `json:"version,omitempty"`
	Start         time.Time                 `json:"start"`
	End           time.Time                 `json:"end"`
	Stages        []StageRecordSerializable `json:"stages"`
	Errors        []string                  `json:"errors"`
	Outcome       string                    `json:"outcome"`
	Manifest      []string                  `json:"manifest"`
	Artifacts     []string                  `json:"artifacts"`
}

type StageRecordSerializable struct {
	Stage      string  `json:"stage"`
	Result     string  `json:"result"`
	DurationMS float64 `json:"duration_ms"`
}
