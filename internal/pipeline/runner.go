package pipeline

import (
	"context"
	"errors"
	"time"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/observability"
)

// RunStages executes stages in order, recording timing and stopping on the
// first failure. Stages not reached are recorded as skipped.
func RunStages(ctx context.Context, rs *RunState, stages []StageDef) error {
	for i, st := range stages {
		stageCtx := observability.WithStage(ctx, string(st.Name))
		if err := ctx.Err(); err != nil {
			se := NewCanceledStageError(st.Name, err)
			rs.complete(stageCtx, st.Name, 0, StageResultCanceled, se)
			rs.skip(stages[i+1:])
			return se
		}

		rs.observer.OnStageStart(st.Name)
		observability.DebugContext(stageCtx, "Stage started")

		t0 := time.Now()
		err := st.Fn(stageCtx, rs)
		dur := time.Since(t0)

		se := classifyStageError(st.Name, err)
		res := resultFor(se)
		rs.complete(stageCtx, st.Name, dur, res, se)
		if se != nil {
			rs.skip(stages[i+1:])
			return se
		}
	}
	return nil
}

func (rs *RunState) complete(ctx context.Context, stage StageName, dur time.Duration, res StageResult, se *StageError) {
	if se != nil {
		rs.Report.Errors = append(rs.Report.Errors, se)
	}
	rs.Report.RecordStage(stage, res, dur, rs.recorder)
	rs.observer.OnStageComplete(stage, dur, res)

	result := logfields.Result(string(res))
	duration := logfields.DurationMS(float64(dur) / float64(time.Millisecond))
	if se != nil {
		observability.ErrorContext(ctx, "Stage failed", result, duration, logfields.Error(se.Err))
		return
	}
	observability.InfoContext(ctx, "Stage completed", result, duration)
}

func (rs *RunState) skip(stages []StageDef) {
	for _, st := range stages {
		rs.Report.RecordStage(st.Name, StageResultSkipped, 0, rs.recorder)
		rs.observer.OnStageComplete(st.Name, 0, StageResultSkipped)
	}
}

// classifyStageError normalizes a raw stage error into a StageError.
func classifyStageError(stage StageName, err error) *StageError {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return se
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewCanceledStageError(stage, err)
	}
	return NewFatalStageError(stage, err)
}

func resultFor(se *StageError) StageResult {
	switch {
	case se == nil:
		return StageResultSuccess
	case se.Kind == StageErrorCanceled:
		return StageResultCanceled
	default:
		return StageResultFatal
	}
}
