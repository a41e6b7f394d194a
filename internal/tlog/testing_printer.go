package tlog

// TestingPrinter is the part of *testing.T the helpers need to report errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
