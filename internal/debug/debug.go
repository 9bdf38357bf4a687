//go:build debug

// Package debug provides opt-in tracing of the radix tree's Search and
// Insert calls, plus internal assertions. It is compiled out entirely
// unless the "debug" build tag is set, so production builds pay
// nothing for it.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"
)

// Enabled is true when the binary was built with the "debug" tag.
const Enabled = true

var debugFilter *regexp.Regexp

func init() {
	flag.Func("filter", "regexp to filter debug logs by", func(s string) (err error) {
		debugFilter, err = regexp.Compile(s)
		return err
	})
}

// Log prints a trace line to stderr, tagged with the package, file,
// line and goroutine id of the caller.
//
// context is optional leading fmt.Sprintf-style args rendered before
// operation; pass nil when there is nothing to add.
func Log(context []any, operation string, format string, args ...any) {
	pc, file, line, _ := runtime.Caller(1)

	fn := runtime.FuncForPC(pc)
	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/flier/radixset/")
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if debugFilter != nil && !debugFilter.MatchString(buf.String()) {
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. Only active in debug builds; use it
// for invariants that are expensive to check on every call.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("radixset: internal assertion failed: "+format, args...))
	}
}
