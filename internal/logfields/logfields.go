package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyProject    = "project"
	KeyStage      = "stage"
	KeyResult     = "result"
	KeyDurationMS = "duration_ms"
	KeySection    = "section"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDir        = "dir"
	KeyCommand    = "command"
	KeyExitStatus = "exit_status"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Project(name string) slog.Attr   { return slog.String(KeyProject, name) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Result(r string) slog.Attr       { return slog.String(KeyResult, r) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func ExitStatus(s int) slog.Attr      { return slog.Int(KeyExitStatus, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
