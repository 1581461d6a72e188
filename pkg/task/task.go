// Package task defines the status protocol exposed to a host task
// scheduler: a task's description, fractional progress, lifecycle status,
// terminal error, cancel signal, and the objects a successful run created.
package task

// Status is the lifecycle state of a task. Tasks start Waiting, move to
// Processing when run, and end in exactly one of the terminal states.
type Status int32

const (
	StatusWaiting Status = iota
	StatusProcessing
	StatusFinished
	StatusCanceled
	StatusError
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusProcessing:
		return "PROCESSING"
	case StatusFinished:
		return "FINISHED"
	case StatusCanceled:
		return "CANCELED"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the status is a final state.
func (s Status) Terminal() bool {
	switch s {
	case StatusFinished, StatusCanceled, StatusError:
		return true
	default:
		return false
	}
}

// Task is the contract a host scheduler polls while a unit of work runs.
// All accessors must be safe to call concurrently with the task's run loop.
type Task interface {
	// Description returns a human-readable description of the work.
	Description() string
	// Progress returns the completed fraction in [0,1].
	Progress() float64
	// Status returns the current lifecycle state.
	Status() Status
	// Err returns the terminal error of a task that ended in StatusError.
	Err() error
	// Cancel signals the task to stop at its next cancellation point.
	// A canceled task discards all work and publishes nothing.
	Cancel()
	// CreatedObjects returns the objects produced by a successful run.
	CreatedObjects() []any
}
