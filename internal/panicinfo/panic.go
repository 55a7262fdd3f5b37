package panicinfo

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Site is where a recovered panic was raised.
type Site struct {
	File     string
	Line     int
	Function string
}

func (s Site) String() string {
	if s.Function == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d %s", filepath.Base(s.File), s.Line, s.Function)
}

// Locate must be called directly from the deferred func that recovered r.
// It walks past the runtime frames of the panic and returns the first frame
// of user code.
func Locate(r interface{}) (site Site) {
	defer func() {
		// Locate itself never panics
		_ = recover()
	}()
	if r == nil {
		return site
	}
	var pcs [16]uintptr

	// Callers, Locate, the deferred func, gopanic
	n := runtime.Callers(4, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			return Site{File: frame.File, Line: frame.Line, Function: frame.Function}
		}
		if !more {
			return site
		}
	}
}
