// Package launcher runs one external command with the process working
// directory temporarily pinned to a target directory.
//
// The working directory is process-global state, so it is treated as a
// resource with acquire/release discipline: capture the original
// directory, switch, run, and restore on every exit path that made it
// past the switch. The invoked command's outcome never changes whether
// restoration happens.
package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Run executes program with args in targetDir and restores the original
// working directory before returning.
//
// The returned exit code is the command's own exit code whenever the
// command ran. If the command exits non-zero that is not an error here;
// the code is passed through for the caller to propagate. A non-nil
// error is returned only for environment faults (capture, switch,
// restore) and for commands that could not be started.
//
// If the switch to targetDir fails, nothing was changed and no
// restoration is attempted. A restore failure does not discard the
// command's outcome: the exit code is still returned and the fault is
// joined onto the error.
func Run(ctx context.Context, targetDir, program string, args ...string) (code int, err error) {
	origin, err := os.Getwd()
	if err != nil {
		return 0, &EnvironmentError{Step: StepCapture, Err: err}
	}

	if err := os.Chdir(targetDir); err != nil {
		return 0, &EnvironmentError{Step: StepSwitch, Dir: targetDir, Err: err}
	}

	// Restoration runs exactly once on every path past this point.
	defer func() {
		if rerr := os.Chdir(origin); rerr != nil {
			err = errors.Join(err, &EnvironmentError{Step: StepRestore, Dir: origin, Err: rerr})
		}
	}()

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	if runErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 1, &InvocationError{Program: program, Err: runErr}
}
