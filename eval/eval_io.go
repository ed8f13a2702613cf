package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/scm-mix/value"
)

// primDisplay writes a value's Display() form (unquoted strings) to
// the evaluator's configured writer and yields void. Writing through Evaluator.Out rather than a package-level
// global keeps concurrent TCP connections (package repl) from
// interleaving each other's output.
func primDisplay(out io.Writer, v value.Value) (value.Value, error) {
	fmt.Fprint(out, v.Display())
	return value.TheVoid, nil
}
