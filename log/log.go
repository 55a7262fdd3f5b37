package log

import (
	"fmt"
	golog "log"
	"os"
)

// Won't compile if StdLogger can't be realized by a log.Logger
var _ StdLogger = &golog.Logger{}

// StdLogger is the subset of the stdlib logger the library writes to, so a
// *log.Logger, a logrus logger or a test logger can be plugged in.
type StdLogger interface {
	Print(...interface{})
	Printf(string, ...interface{})
	Println(...interface{})

	Fatal(...interface{})
	Fatalf(string, ...interface{})
	Fatalln(...interface{})

	Panic(...interface{})
	Panicf(string, ...interface{})
	Panicln(...interface{})
}

//provide a mutable logger so it can be changed
var Log StdLogger = golog.New(os.Stderr, "", golog.LstdFlags)

// Logf writes one component=<component> line, the rest in logfmt style,
// e.g. Logf("transport", "at=send operation=%s", op).
func Logf(component string, format string, args ...interface{}) {
	Log.Printf("component=%s %s", component, fmt.Sprintf(format, args...))
}
