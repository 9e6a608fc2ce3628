// Package cli turns the jvav command line into an app.Config. It owns flag
// parsing, usage output and the exit codes reported for bad invocations.
package cli
