package proc

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Child is a spawned command awaiting collection.
type Child struct {
	cmd *exec.Cmd
}

// Launch starts the named command with stdin, stdout, and stderr shared
// with this process. A nil env inherits the parent environment, a non-nil
// env replaces it.
func Launch(name string, args []string, env []string) (*Child, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Start(); err != nil {
		return nil, classifyStart(err)
	}

	return &Child{cmd: cmd}, nil
}

// Fork and execve failures both surface through Start as a "fork/exec"
// *os.PathError, so the two stages can only be told apart by errno.
// Resource exhaustion at process creation maps to the fork stage;
// everything else (ENOENT, EACCES, ENOEXEC, lookup failures) is an exec
// problem with the requested command.
func classifyStart(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EAGAIN, syscall.ENOMEM:
			return &StageError{Stage: StageFork, Err: err}
		}
	}
	return &StageError{Stage: StageExec, Err: err}
}

func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// Wait blocks until the child terminates by any means and returns its exit
// code. The code is not part of the usage report.
func (c *Child) Wait() int {
	// an ExitError only means the child exited non-zero or was signaled
	_ = c.cmd.Wait()
	return c.cmd.ProcessState.ExitCode()
}

// ChildrenUsage is the kernel's aggregate accounting for every terminated
// child of this process.
func ChildrenUsage() (*unix.Rusage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &ru); err != nil {
		return nil, &StageError{Stage: StageUsage, Err: err}
	}
	return &ru, nil
}

// WallClockSec reads the realtime clock truncated to whole seconds. On
// failure the returned error carries the given stage description.
func WallClockSec(stage string) (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return 0, &StageError{Stage: stage, Err: err}
	}
	return ts.Sec, nil
}
