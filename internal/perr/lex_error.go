// Package perr holds the lexical and parse-time error taxonomy (spec.md
// §4.1, §4.2, §7): a closed set of Go types implementing error, carrying
// a token.Position for the "(line L, position C)" suffix.
package perr

import "fmt"

// LexErrorKind enumerates the ways tokenizing a script can fail. The
// MalformedIdentifier variant is not reachable by this lexer's identifier
// grammar (leading letter/underscore, tail letter/digit/underscore always
// succeeds) but is kept to match the full original taxonomy — see
// SPEC_FULL.md "Supplemented features".
type LexErrorKind int

const (
	UnexpectedChar LexErrorKind = iota
	UnterminatedString
	MalformedEscapeSequence
	MalformedNumber
	MalformedChar
	MalformedIdentifier
)

// LexError is a lexer failure; it is always lifted into a ParseError via
// BadInput before being returned from Parse (spec.md §7).
type LexError struct {
	Kind   LexErrorKind
	Detail string // the offending character/sequence/literal text
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("Unexpected '%s'", e.Detail)
	case UnterminatedString:
		return "Open string is not terminated"
	case MalformedEscapeSequence:
		return fmt.Sprintf("Invalid escape sequence: '%s'", e.Detail)
	case MalformedNumber:
		return fmt.Sprintf("Invalid number: '%s'", e.Detail)
	case MalformedChar:
		return fmt.Sprintf("Invalid character: '%s'", e.Detail)
	case MalformedIdentifier:
		return fmt.Sprintf("Variable name is not proper: '%s'", e.Detail)
	default:
		return "lexical error"
	}
}
