package launcher

import "fmt"

// Step identifies which phase of a launch an error belongs to.
type Step string

const (
	StepCapture Step = "capture"
	StepSwitch  Step = "switch"
	StepRestore Step = "restore"
)

// EnvironmentError reports a failure to read or change the process
// working directory. These are fatal: the workload either never ran or
// the environment could not be put back the way it was found.
type EnvironmentError struct {
	Step Step
	Dir  string
	Err  error
}

func (e *EnvironmentError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("working directory %s failed for %s: %v", e.Step, e.Dir, e.Err)
	}
	return fmt.Sprintf("working directory %s failed: %v", e.Step, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// InvocationError reports that the external command could not be
// started at all. A command that starts and exits non-zero is not an
// InvocationError; its exit code is passed through instead.
type InvocationError struct {
	Program string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Program, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
