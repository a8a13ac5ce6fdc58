// Package metrics records run and stage metrics for the scaffolder.
//
// Components receive a Recorder and default to NoopRecorder, so callers never
// check for nil. When the CLI is asked for a metrics file it injects a
// PrometheusRecorder and writes the registry in the node_exporter textfile
// format once the run finishes:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	// ... run the pipeline with rec ...
//	err := rec.WriteTextfile("pagesmith.prom")
package metrics
