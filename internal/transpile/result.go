package transpile

import "github.com/Jvavscratch/utils/internal/codegen"

// Result is the outcome of generating one actor.
type Result struct {
	Actor   string
	IsStage bool
	// Text is the generated source. It is empty when Err is set.
	Text string
	// Err is set when generation for this actor failed. Other actors are
	// unaffected.
	Err error
	// Declarations and Entries count the preamble lines and the scripts.
	Declarations int
	Entries      int
	// Diagnostics lists the conditions generation recovered from.
	Diagnostics []codegen.Diagnostic
}

// OK reports whether the actor was generated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed returns the results that carry an error, in input order.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}
