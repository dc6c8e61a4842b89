package proc

const (
	StageFork       = "Fork failed"
	StageExec       = "Exec failed"
	StageStartClock = "Failed to get start time"
	StageEndClock   = "Failed to get end time"
	StageUsage      = "Getrusage failed"
)

// StageError names the launch stage that failed alongside the OS error.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
