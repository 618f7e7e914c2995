package utils

import (
	stdlog "log"
)

// customization points
var fatalf = stdlog.Fatalf // print fatal message
var printf = stdlog.Printf // print simple message

// IgnoreError simple helper that just prints error to log and ignores it
func IgnoreError(err error) {
	if err != nil { // unlikely
		printf("ERROR IGNORED: %s", err)
	}
}

// IgnoreErrorOn simple helper that is aimed to use with `defer`
func IgnoreErrorOn(f func() error) {
	IgnoreError(f())
}

// FatalOnError simple helper that just prints error to logs and calls os.Exit(1)
func FatalOnError(err error) {
	if err != nil { // unlikely
		fatalf("ERROR: %s", err) // os.Exit(1)
	}
}
