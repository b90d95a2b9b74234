package dispatch

import (
	"context"
	"errors"
	"os/exec"
)

// exitStatus converts the error returned by cmd.Run into an exit code.
// A process that ran and failed yields its code and a nil error. A process
// killed because ctx ended yields ctx's error. Any other error (the binary
// could not be started, for example) is returned as is.
func exitStatus(ctx context.Context, err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
