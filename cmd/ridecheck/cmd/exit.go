package cmd

import (
	"errors"
	"fmt"
)

// verdictExit is returned by check and validate to signal a refusal.
// Exit codes: 0=allowed, 1=denied, 2=error.
type verdictExit struct{ code int }

func (e verdictExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "denied"
	default:
		return fmt.Sprintf("check error (exit %d)", e.code)
	}
}

var errDenied = verdictExit{code: 1}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ve verdictExit
	if errors.As(err, &ve) {
		return ve.code
	}
	return 2
}

// IsVerdict reports whether err only carries an exit code and was
// already reported on stdout.
func IsVerdict(err error) bool {
	var ve verdictExit
	return errors.As(err, &ve)
}
