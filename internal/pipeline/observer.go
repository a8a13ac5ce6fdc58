package pipeline

import (
	"time"

	"git.home.luguber.info/inful/pagesmith/internal/metrics"
)

// Observer receives callbacks around stage execution and the run lifecycle.
type Observer interface {
	OnStageStart(stage StageName)
	OnStageComplete(stage StageName, duration time.Duration, result StageResult)
	OnRunComplete(report *RunReport)
}


// RecorderObserver adapts metrics.Recorder into an Observer.
type RecorderObserver struct{ Recorder metrics.Recorder }

func (r RecorderObserver) OnStageStart(StageName) {}

func (r RecorderObserver) OnStageComplete(stage StageName, d time.Duration, res StageResult) {
	if r.Recorder != nil && res != StageResultSkipped {
		r.Recorder.ObserveStageDuration(string(stage), d)
	}
}

func (r RecorderObserver) OnRunComplete(report *RunReport) {
	if r.Recorder == nil {
		return
	}
	r.Recorder.ObserveRunDuration(report.End.Sub(report.Start))
	r.Recorder.IncRunOutcome(string(report.Outcome))
	r.Recorder.SetAssetsCopied(len(report.Manifest))
	r.Recorder.SetArtifactsWritten(len(report.Artifacts))
}

// observers fans callbacks out in order.
type observers []Observer

func (o observers) OnStageStart(stage StageName) {
	for _, ob := range o {
		ob.OnStageStart(stage)
	}
}

func (o observers) OnStageComplete(stage StageName, d time.Duration, res StageResult) {
	for _, ob := range o {
		ob.OnStageComplete(stage, d, res)
	}
}

func (o observers) OnRunComplete(report *RunReport) {
	for _, ob := range o {
		ob.OnRunComplete(report)
	}
}
