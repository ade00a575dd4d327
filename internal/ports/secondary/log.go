package secondary

// DiagnosticSink defines the interface for surfacing diagnostic output.
// It is injected into each component rather than held as global state, so
// callers control where query and mutation diagnostics go.
type DiagnosticSink interface {
	// Debugf reports progress detail (conditionals added, chunks fetched).
	Debugf(format string, args ...any)

	// Errorf reports a failure, including remote diagnostic stack lines
	// in their original order.
	Errorf(format string, args ...any)
}
