// Package diag holds the logging, warning, and fingerprinting conventions
// shared by every lzcomplex subpackage. It is the one place those ambient
// concerns are implemented so each package's tracer() stays a one-liner.
package diag

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// Tracer returns a trace selected under the given dotted name, e.g.
// "lzcomplex.suffixtree". Packages call this once to build their own
// package-local tracer() function, mirroring the teacher's convention of
// tracing.Select("gorgo.lr").
func Tracer(name string) tracing.Trace {
	return tracing.Select(name)
}

// Warn is the sink for observability events (§7): large-L warnings and
// similar non-fatal conditions a caller may want surfaced to a console.
// It defaults to a pterm-backed warning line; embedders of this engine in
// a non-interactive context may reassign it (e.g. to route into their own
// structured logger instead of the console).
var Warn = func(format string, args ...any) {
	pterm.Warning.Printfln(format, args...)
}
