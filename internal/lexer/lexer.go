// Package lexer turns script source text into a restartable, peekable
// stream of (token, position) pairs (spec.md §4.1). It is hand-written: a
// single struct holding the rune slice, a cursor, and a one-token
// lookahead buffer, with no separate scanner-generator step.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/token"
)

// Lexer scans one source string. It is restartable via New but not
// resumable mid-stream; Peek is implemented with a single-slot
// look-ahead so the parser can examine the next token without consuming
// it.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int

	// integerWidth bounds numeric-literal overflow checking (32 or 64).
	integerWidth int

	peeked    *token.Token
	peekedErr error
	hasPeek   bool
}

// New creates a Lexer over source. integerWidth must be 32 or 64 (spec.md
// §6 integer_width); it governs overflow detection for integer literals.
func New(source string, integerWidth int) *Lexer {
	return &Lexer{
		src:          []rune(source),
		pos:          0,
		line:         1,
		col:          1,
		integerWidth: integerWidth,
	}
}

func (l *Lexer) curPos() token.Position {
	return token.NewPosition(l.line, l.col, l.pos)
}

// Pos returns the lexer's current source position, for attributing an
// error raised by Next/Peek to a location when the failed scan produced
// no token of its own.
func (l *Lexer) Pos() token.Position {
	return l.curPos()
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekRune(offset int) (rune, bool) {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// Peek returns the next token without consuming it. Calling Next
// afterwards returns the same token.
func (l *Lexer) Peek() (token.Token, error) {
	if !l.hasPeek {
		tok, err := l.scan()
		l.peeked = &tok
		l.peekedErr = err
		l.hasPeek = true
	}
	return *l.peeked, l.peekedErr
}

// Next returns and consumes the next token.
func (l *Lexer) Next() (token.Token, error) {
	if l.hasPeek {
		l.hasPeek = false
		return *l.peeked, l.peekedErr
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	if l.eof() {
		return token.New(token.EOF, "", l.curPos()), nil
	}

	pos := l.curPos()
	r, _ := l.peekRune(0)

	switch {
	case isIdentStart(r):
		return l.scanIdent(pos), nil
	case isDigit(r):
		return l.scanNumber(pos)
	case r == '"':
		return l.scanString(pos)
	case r == '\'':
		return l.scanChar(pos)
	default:
		return l.scanOperator(pos)
	}
}

func (l *Lexer) skipTrivia() error {
	for {
		r, ok := l.peekRune(0)
		if !ok {
			return nil
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.advance()
		case r == '/' && peekIs(l, 1, '/'):
			for {
				r, ok := l.peekRune(0)
				if !ok || r == '\n' {
					break
				}
				l.advance()
			}
		case r == '/' && peekIs(l, 1, '*'):
			start := l.curPos()
			l.advance()
			l.advance()
			closed := false
			for !l.eof() {
				if c, _ := l.peekRune(0); c == '*' && peekIs(l, 1, '/') {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return &perr.LexError{Kind: perr.UnterminatedString, Detail: "block comment"}
			}
			_ = start
		default:
			return nil
		}
	}
}

func peekIs(l *Lexer, offset int, want rune) bool {
	r, ok := l.peekRune(offset)
	return ok && r == want
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= utf8.RuneSelf
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) scanIdent(pos token.Position) token.Token {
	var sb strings.Builder
	for {
		r, ok := l.peekRune(0)
		if !ok || !isIdentPart(r) {
			break
		}
		sb.WriteRune(l.advance())
	}
	lit := sb.String()
	return token.New(token.LookupIdent(lit), lit, pos)
}

func (l *Lexer) scanNumber(pos token.Position) (token.Token, error) {
	var raw strings.Builder
	isFloat := false

	readDigits := func(valid func(rune) bool) {
		for {
			r, ok := l.peekRune(0)
			if !ok {
				return
			}
			if r == '_' {
				l.advance()
				continue
			}
			if !valid(r) {
				return
			}
			raw.WriteRune(l.advance())
		}
	}

	if r0, _ := l.peekRune(0); r0 == '0' {
		if r1, ok := l.peekRune(1); ok && (r1 == 'x' || r1 == 'X') {
			l.advance()
			l.advance()
			var hex strings.Builder
			for {
				r, ok := l.peekRune(0)
				if !ok {
					break
				}
				if r == '_' {
					l.advance()
					continue
				}
				if !isHexDigit(r) {
					break
				}
				hex.WriteRune(l.advance())
			}
			return l.finishInt(pos, hex.String(), 16)
		}
		if r1, ok := l.peekRune(1); ok && (r1 == 'o' || r1 == 'O') {
			l.advance()
			l.advance()
			var oct strings.Builder
			for {
				r, ok := l.peekRune(0)
				if !ok {
					break
				}
				if r == '_' {
					l.advance()
					continue
				}
				if r < '0' || r > '7' {
					break
				}
				oct.WriteRune(l.advance())
			}
			return l.finishInt(pos, oct.String(), 8)
		}
		if r1, ok := l.peekRune(1); ok && (r1 == 'b' || r1 == 'B') {
			l.advance()
			l.advance()
			var bin strings.Builder
			for {
				r, ok := l.peekRune(0)
				if !ok {
					break
				}
				if r == '_' {
					l.advance()
					continue
				}
				if r != '0' && r != '1' {
					break
				}
				bin.WriteRune(l.advance())
			}
			return l.finishInt(pos, bin.String(), 2)
		}
	}

	readDigits(isDigit)

	if r, ok := l.peekRune(0); ok && r == '.' {
		if r1, ok1 := l.peekRune(1); ok1 && isDigit(r1) {
			isFloat = true
			raw.WriteRune(l.advance()) // '.'
			readDigits(isDigit)
		}
	}

	if r, ok := l.peekRune(0); ok && (r == 'e' || r == 'E') {
		if r1, ok1 := l.peekRune(1); ok1 && (isDigit(r1) || ((r1 == '+' || r1 == '-') && func() bool {
			r2, ok2 := l.peekRune(2)
			return ok2 && isDigit(r2)
		}())) {
			isFloat = true
			raw.WriteRune(l.advance()) // e/E
			if r2, ok2 := l.peekRune(0); ok2 && (r2 == '+' || r2 == '-') {
				raw.WriteRune(l.advance())
			}
			readDigits(isDigit)
		}
	}

	text := raw.String()
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, &perr.LexError{Kind: perr.MalformedNumber, Detail: text}
		}
		return token.New(token.FLOAT, strconv.FormatFloat(v, 'g', -1, 64), pos), nil
	}
	return l.finishInt(pos, text, 10)
}

func (l *Lexer) finishInt(pos token.Position, digits string, base int) (token.Token, error) {
	if digits == "" {
		return token.Token{}, &perr.LexError{Kind: perr.MalformedNumber, Detail: digits}
	}
	bitSize := l.integerWidth
	if bitSize != 32 && bitSize != 64 {
		bitSize = 64
	}
	v, err := strconv.ParseUint(digits, base, bitSize)
	if err != nil {
		return token.Token{}, &perr.LexError{Kind: perr.MalformedNumber, Detail: digits}
	}
	return token.New(token.INT, strconv.FormatUint(v, 10), pos), nil
}

func (l *Lexer) scanString(pos token.Position) (token.Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		r, ok := l.peekRune(0)
		if !ok || r == '\n' {
			return token.Token{}, &perr.LexError{Kind: perr.UnterminatedString}
		}
		if r == '"' {
			l.advance()
			return token.New(token.STRING, sb.String(), pos), nil
		}
		if r == '\\' {
			decoded, err := l.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteRune(decoded)
			continue
		}
		sb.WriteRune(l.advance())
	}
}

func (l *Lexer) scanChar(pos token.Position) (token.Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	count := 0
	for {
		r, ok := l.peekRune(0)
		if !ok || r == '\n' {
			return token.Token{}, &perr.LexError{Kind: perr.UnterminatedString}
		}
		if r == '\'' {
			l.advance()
			break
		}
		if r == '\\' {
			decoded, err := l.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteRune(decoded)
			count++
			continue
		}
		sb.WriteRune(l.advance())
		count++
	}
	content := sb.String()
	runes := []rune(content)
	if len(runes) != 1 {
		return token.Token{}, &perr.LexError{Kind: perr.MalformedChar, Detail: content}
	}
	return token.New(token.CHAR, content, pos), nil
}

// scanEscape consumes a backslash escape sequence and returns the decoded
// rune. The leading backslash must still be present at the cursor.
func (l *Lexer) scanEscape() (rune, error) {
	start := l.pos
	l.advance() // '\\'
	r, ok := l.peekRune(0)
	if !ok {
		return 0, &perr.LexError{Kind: perr.MalformedEscapeSequence, Detail: "\\"}
	}
	switch r {
	case '\\':
		l.advance()
		return '\\', nil
	case '"':
		l.advance()
		return '"', nil
	case '\'':
		l.advance()
		return '\'', nil
	case 'n':
		l.advance()
		return '\n', nil
	case 'r':
		l.advance()
		return '\r', nil
	case 't':
		l.advance()
		return '\t', nil
	case 'x':
		l.advance()
		return l.scanHexEscape(2, start)
	case 'u':
		l.advance()
		return l.scanHexEscape(4, start)
	case 'U':
		l.advance()
		return l.scanHexEscape(8, start)
	default:
		seq := string(l.src[start:min(l.pos+1, len(l.src))])
		return 0, &perr.LexError{Kind: perr.MalformedEscapeSequence, Detail: seq}
	}
}

func (l *Lexer) scanHexEscape(n int, start int) (rune, error) {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		r, ok := l.peekRune(0)
		if !ok || !isHexDigit(r) {
			seq := string(l.src[start:min(l.pos+1, len(l.src))])
			return 0, &perr.LexError{Kind: perr.MalformedEscapeSequence, Detail: seq}
		}
		sb.WriteRune(l.advance())
	}
	v, err := strconv.ParseInt(sb.String(), 16, 32)
	if err != nil {
		return 0, &perr.LexError{Kind: perr.MalformedEscapeSequence, Detail: sb.String()}
	}
	return rune(v), nil
}

// operator table: longest lexeme first so matching is greedy.
var operators = []struct {
	lexeme string
	typ    token.Type
}{
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},
	{"==", token.EQ},
	{"!=", token.NE},
	{"<=", token.LE},
	{">=", token.GE},
	{"&&", token.AND},
	{"||", token.OR},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN},
	{"%=", token.PERCENT_ASSIGN},
	{"&=", token.BAND_ASSIGN},
	{"|=", token.BOR_ASSIGN},
	{"^=", token.BXOR_ASSIGN},
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"[", token.LBRACK},
	{"]", token.RBRACK},
	{"{", token.LBRACE},
	{"}", token.RBRACE},
	{",", token.COMMA},
	{";", token.SEMICOLON},
	{":", token.COLON},
	{".", token.DOT},
	{"#", token.HASH},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"<", token.LT},
	{">", token.GT},
	{"!", token.NOT},
	{"&", token.BAND},
	{"|", token.BOR},
	{"^", token.BXOR},
	{"=", token.ASSIGN},
}

func (l *Lexer) scanOperator(pos token.Position) (token.Token, error) {
	for _, op := range operators {
		if l.matchAt(op.lexeme) {
			for range op.lexeme {
				l.advance()
			}
			return token.New(op.typ, op.lexeme, pos), nil
		}
	}
	r, _ := l.peekRune(0)
	l.advance()
	return token.Token{}, &perr.LexError{Kind: perr.UnexpectedChar, Detail: string(r)}
}

func (l *Lexer) matchAt(lexeme string) bool {
	runes := []rune(lexeme)
	for i, want := range runes {
		got, ok := l.peekRune(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}
