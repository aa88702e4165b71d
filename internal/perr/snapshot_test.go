package perr

import (
	"testing"

	"github.com/cwbudde/rscript/pkg/token"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseErrorDisplaySnapshot snapshots the rendered Error() string for a
// representative spread of ParseErrorKind values across all three Position
// kinds, pinning down the EOF/none Display resolution spec.md §9 calls out
// as an Open Question (see DESIGN.md).
func TestParseErrorDisplaySnapshot(t *testing.T) {
	concrete := token.NewPosition(3, 7, 42)

	cases := []*ParseError{
		New(MissingToken, concrete, ";", "after statement"),
		New(MissingToken, token.EOF(), ";", "after statement"),
		New(MissingToken, token.None(), ";", "after statement"),
		New(ExprExpected, concrete, "a grouped"),
		New(UnknownOperator, concrete, "=>"),
		New(ForbiddenConstantExpr, concrete, "x"),
		New(FnDuplicatedParam, concrete, "add", "a"),
		New(AssignmentToConstant, concrete, "x"),
		New(LoopBreak, concrete),
	}

	for _, c := range cases {
		snaps.MatchSnapshot(t, c.Kind, c.Error())
	}
}

// TestLexErrorDisplaySnapshot snapshots the rendering of every
// LexErrorKind the lexer raises; MalformedIdentifier, which it never
// raises, is not covered.
func TestLexErrorDisplaySnapshot(t *testing.T) {
	cases := []*LexError{
		{Kind: UnexpectedChar, Detail: "$"},
		{Kind: UnterminatedString, Detail: ""},
		{Kind: MalformedEscapeSequence, Detail: "\\q"},
		{Kind: MalformedNumber, Detail: "0xZZ"},
		{Kind: MalformedChar, Detail: "ab"},
	}

	for _, c := range cases {
		snaps.MatchSnapshot(t, c.Kind, c.Error())
	}
}
