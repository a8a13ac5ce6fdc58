package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)

// gather sums every counter and gauge sample by metric family name.
func gather(t *testing.T, reg *prom.Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return out
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("copy_assets", 150*time.Millisecond)
	pr.ObserveRunDuration(500 * time.Millisecond)
	pr.IncStageResult("copy_assets", ResultSuccess)
	pr.IncStageResult("copy_assets", ResultSuccess)
	pr.IncRunOutcome("success")
	pr.SetAssetsCopied(3)
	pr.SetArtifactsWritten(9)

	values := gather(t, reg)
	assert.InDelta(t, 2, values["pagesmith_stage_results_total"], 0)
	assert.InDelta(t, 1, values["pagesmith_run_outcomes_total"], 0)
	assert.InDelta(t, 3, values["pagesmith_assets_copied"], 0)
	assert.InDelta(t, 9, values["pagesmith_artifacts_written"], 0)
	assert.Same(t, reg, pr.Registry())
}

func TestPrometheusRecorder_NilRegistry(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	require.NotNil(t, pr.Registry())
	pr.IncRunOutcome("failed")
	assert.InDelta(t, 1, gather(t, pr.Registry())["pagesmith_run_outcomes_total"], 0)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveStageDuration("s", time.Second)
		pr.IncStageResult("s", ResultFatal)
		pr.IncRunOutcome("failed")
	})
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncStageResult("scaffold_project", ResultFatal)
	pr.IncRunOutcome("failed")

	path := filepath.Join(t.TempDir(), "metrics", "pagesmith.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pagesmith_stage_results_total{result="fatal",stage="scaffold_project"} 1`)
	assert.Contains(t, string(data), `pagesmith_run_outcomes_total{outcome="failed"} 1`)
}
