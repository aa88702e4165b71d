package eval

import "github.com/cwbudde/rscript/internal/value"

// errReturn and errBreak are control-flow carriers, not user-visible
// errors (spec.md §4.4, §8 "control-flow containment"). They travel up
// the Go call stack as errors because the evaluator's Eval* methods
// already return (value.Dynamic, error); the loop statements catch
// errBreak, callUserFn catches errReturn, and Run turns one that reaches
// the top level (a script-level `return`) into an rterr.ErrRuntime. They
// stay unexported and private to this package — rterr's RuntimeError
// taxonomy deliberately does not include them.
type errReturn struct {
	value value.Dynamic
}

func (e *errReturn) Error() string { return "return outside function (internal)" }

type errBreak struct{}

func (e *errBreak) Error() string { return "break outside loop (internal)" }
