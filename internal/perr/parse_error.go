package perr

import (
	"fmt"

	"github.com/cwbudde/rscript/pkg/token"
)

// ParseErrorKind enumerates the ways parsing a script can fail (spec.md
// §4.2 "Error model", supplemented per SPEC_FULL.md with the full
// original_source/src/error.rs variant set).
type ParseErrorKind int

const (
	BadInput ParseErrorKind = iota
	UnexpectedEOF
	UnknownOperator
	MissingToken
	MalformedCallExpr
	MalformedIndexExpr
	DuplicatedProperty
	ForbiddenConstantExpr
	PropertyExpected
	VariableExpected
	ExprExpected
	WrongFnDefinition
	FnMissingName
	FnMissingParams
	FnDuplicatedParam
	FnMissingBody
	AssignmentToInvalidLHS
	AssignmentToCopy
	AssignmentToConstant
	LoopBreak
)

// ParseError is a single structured parse failure: a kind, up to two
// string payloads (meaning depends on Kind — see the constructors below),
// and the position the parser was looking at when it gave up. Parsing
// never recovers from an error: the first one aborts and is returned.
type ParseError struct {
	Kind ParseErrorKind
	A, B string
	Pos  token.Position
}

func New(kind ParseErrorKind, pos token.Position, args ...string) *ParseError {
	e := &ParseError{Kind: kind, Pos: pos}
	if len(args) > 0 {
		e.A = args[0]
	}
	if len(args) > 1 {
		e.B = args[1]
	}
	return e
}

// desc is the short, kind-specific description used when no payload-aware
// message applies.
func (e *ParseError) desc() string {
	switch e.Kind {
	case BadInput:
		if e.A != "" {
			return e.A
		}
		return "Invalid script input"
	case UnexpectedEOF:
		return "Script is incomplete"
	case UnknownOperator:
		return fmt.Sprintf("Unknown operator: '%s'", e.A)
	case MissingToken:
		return fmt.Sprintf("Expecting '%s' %s", e.A, e.B)
	case MalformedCallExpr:
		if e.A != "" {
			return e.A
		}
		return "Invalid expression in function call arguments"
	case MalformedIndexExpr:
		if e.A != "" {
			return e.A
		}
		return "Invalid index in indexing expression"
	case DuplicatedProperty:
		return fmt.Sprintf("Duplicated property '%s' for map literal", e.A)
	case ForbiddenConstantExpr:
		return fmt.Sprintf("Expecting a constant expression to assign to '%s'", e.A)
	case PropertyExpected:
		return "Expecting name of a property"
	case VariableExpected:
		return "Expecting name of a variable"
	case ExprExpected:
		return fmt.Sprintf("Expecting %s expression", e.A)
	case WrongFnDefinition:
		return "Function definitions must be at the top level of the script"
	case FnMissingName:
		return "Expecting name in function declaration"
	case FnMissingParams:
		return fmt.Sprintf("Expecting parameters in function '%s'", e.A)
	case FnDuplicatedParam:
		return fmt.Sprintf("Duplicated parameter '%s' for function '%s'", e.B, e.A)
	case FnMissingBody:
		return fmt.Sprintf("Expecting body for function '%s'", e.A)
	case AssignmentToInvalidLHS:
		return "Cannot assign to this expression"
	case AssignmentToCopy:
		return "Cannot assign to this expression because it will only change a copy of the value"
	case AssignmentToConstant:
		if e.A == "" {
			return "Cannot assign to a constant variable."
		}
		return fmt.Sprintf("Cannot assign to constant '%s'", e.A)
	case LoopBreak:
		return "break statement should only be used inside a loop"
	default:
		return "parse error"
	}
}

// Error renders "<message> (line L, position C)", with the EOF/None
// suffix handling spec.md §9 calls out as an Open Question: EOF renders
// the end-of-script phrase, None renders no suffix at all (the reverse of
// what the source's original comment describes — see DESIGN.md).
func (e *ParseError) Error() string {
	msg := e.desc()
	switch {
	case e.Pos.IsEOF():
		return msg + " at the end of the script but there is no more input"
	case e.Pos.IsNone():
		return msg
	default:
		return fmt.Sprintf("%s (%s)", msg, e.Pos.String())
	}
}
