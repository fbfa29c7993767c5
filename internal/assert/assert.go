package assert

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Assert panics with the caller's file:line when condition is false. The
// optional args are a format string followed by its operands.
func Assert(condition bool, args ...any) {
	if condition {
		return
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}
	filename := filepath.Base(file)

	if len(args) > 0 {
		format, _ := args[0].(string)
		panic(errors.Errorf(
			"assertion failed: %s at %s:%d",
			fmt.Sprintf(format, args[1:]...),
			filename,
			line,
		))
	}
	panic(errors.Errorf("assertion failed at %s:%d", filename, line))
}

func NoError(err error) {
	if err != nil {
		panic(errors.Wrap(err, "assertion failed: expected no error"))
	}
}
