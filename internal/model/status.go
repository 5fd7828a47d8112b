package model

// InvocationStatus represents the lifecycle of a dispatched command
type InvocationStatus string

const (
	// StatusPending means the command was received but not yet started
	StatusPending InvocationStatus = "Pending"

	// StatusRunning means the handler is executing
	StatusRunning InvocationStatus = "Running"

	// StatusSucceeded means the handler returned without error
	StatusSucceeded InvocationStatus = "Succeeded"

	// StatusFailed means the handler returned an error
	StatusFailed InvocationStatus = "Failed"
)

// String returns the string representation of InvocationStatus
func (s InvocationStatus) String() string {
	return string(s)
}

// IsActive returns true if the invocation has not finished yet
func (s InvocationStatus) IsActive() bool {
	return s == StatusPending || s == StatusRunning
}

// IsFinished returns true if the invocation succeeded or failed
func (s InvocationStatus) IsFinished() bool {
	return s == StatusSucceeded || s == StatusFailed
}
