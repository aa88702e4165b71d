package lexer

import (
	"testing"

	"github.com/cwbudde/rscript/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `let x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"let", token.LET},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input, 64)

	for i, tt := range tests {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsAndOperators(t *testing.T) {
	input := `let const if else while loop for in break return true false fn
		&& || ! & | ^ << >> == != <= >= += -= *= /= %= <<= >>= &= |= ^=`

	tests := []token.Type{
		token.LET, token.CONST, token.IF, token.ELSE, token.WHILE, token.LOOP,
		token.FOR, token.IN, token.BREAK, token.RETURN, token.TRUE, token.FALSE, token.FN,
		token.AND, token.OR, token.NOT, token.BAND, token.BOR, token.BXOR,
		token.SHL, token.SHR, token.EQ, token.NE, token.LE, token.GE,
		token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN,
		token.BAND_ASSIGN, token.BOR_ASSIGN, token.BXOR_ASSIGN,
		token.EOF,
	}

	l := New(input, 64)
	for i, want := range tests {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, want, tok.Type, tok.Literal)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("foo bar", 64)

	peeked, err := l.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peeked.Literal != "foo" {
		t.Fatalf("Peek: got literal %q, want %q", peeked.Literal, "foo")
	}

	next, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Literal != "foo" {
		t.Fatalf("Next after Peek: got literal %q, want %q", next.Literal, "foo")
	}

	next2, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next2.Literal != "bar" {
		t.Fatalf("second Next: got literal %q, want %q", next2.Literal, "bar")
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"line1\nline2\t\"quoted\""`, 64)
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := "line1\nline2\t\"quoted\""
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestIllegalCharacterIsALexError(t *testing.T) {
	l := New("let x = @;", 64)
	for {
		tok, err := l.Next()
		if err != nil {
			return
		}
		if tok.Type == token.EOF {
			t.Fatalf("expected a lex error scanning %q, got none", "@")
		}
	}
}

func TestIntegerLiteralOverflowsUnsignedWidth(t *testing.T) {
	// 2^32, one past the widest bit pattern a 32-bit literal can hold.
	l := New("4294967296", 32)
	_, err := l.Next()
	if err == nil {
		t.Fatalf("expected a malformed-number error for a literal wider than 32 bits")
	}
}
