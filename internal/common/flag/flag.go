package flag

// Job carries the flags of one worker invocation.
type Job struct {
	JobName string
	Version string
	// Date is the execution date, YYYY-MM-DD. Empty means today.
	Date string
	// DryRun lists what would run without writing.
	DryRun bool
}
