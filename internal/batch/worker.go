package batch

// Worker is a background job whose state can be polled from a handler.
type Worker interface {
	StartWork()
	// Result is nil until the job is done, and stays nil when it failed.
	Result() []RowResult
	Progress() float64
	Done() bool
	Error() error
}
