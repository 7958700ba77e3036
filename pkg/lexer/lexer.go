package lexer

import "strings"

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // current token for context (e.g., unary minus handling)
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		line:         1,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	// '-' followed by digits is a signed number only where a binary operator could not appear
	if l.input[l.position] == '-' && l.prevAllowsUnary() {
		if lex, ok := NUM.Match(l.input[l.position:]); ok {
			tok := NewToken(NUM, lex, lex, l.currentPosition())
			l.advance(len(lex))
			l.currentToken = tok
			return tok
		}
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		char := string(l.input[l.position])
		tok := NewToken(ILLEGAL, char, "", l.currentPosition())
		l.advance(1)
		l.currentToken = tok
		return tok
	}

	var literal string
	switch tokenType {
	case NUM, ID:
		literal = lexeme
	case STRING:
		// Remove the surrounding quotes from the lexeme
		literal = lexeme[1 : len(lexeme)-1]
	case COMMENT:
		literal = lexeme[1:]
	}

	tok := NewToken(tokenType, lexeme, literal, l.currentPosition())
	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// Skip whitespace other than newlines, which are statement terminators
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]
		if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\v' && ch != '\f' {
			break
		}
		l.column++
		l.position++
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for range n {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// Check if the previous token allows a unary minus
func (l *Lexer) prevAllowsUnary() bool {
	switch l.currentToken.Type {
	case EOF, ASSIGN, LPAREN, COMMA, LBRACE, NEWLINE,
		PLUS, MINUS, MULT, DIV,
		LT, GT, LE, GE, EQ, NE:
		return true
	default:
		return false
	}
}

// Tokenize returns every token of s up to and including EOF
func Tokenize(s string) []Token {
	l := NewLexer(s)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

// BlockDepth returns the number of code blocks left open at the end of s.
// Braces inside strings and comments are not counted.
func BlockDepth(s string) int {
	depth := 0
	for _, tok := range Tokenize(s) {
		switch tok.Type {
		case LBRACE:
			depth++
		case RBRACE:
			depth--
		}
	}
	return depth
}

// Normalize strips all non-newline whitespace outside string literals and
// comments, drops carriage returns, and terminates the text with a newline.
func Normalize(src string) string {
	out, _ := NormalizeOffsets(src)
	return out
}

// NormalizeOffsets normalizes src like Normalize and also returns, for every
// byte of the result plus its end, the matching byte offset in src.
func NormalizeOffsets(src string) (string, []int) {
	var b strings.Builder
	b.Grow(len(src) + 1)
	offsets := make([]int, 0, len(src)+2)
	keep := func(i int) {
		b.WriteByte(src[i])
		offsets = append(offsets, i)
	}

	inString := false
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case inString:
			keep(i)
			if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
			keep(i)
		case ch == '#':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}
			comment := strings.TrimRight(src[i:i+end], "\r")
			for k := range len(comment) {
				keep(i + k)
			}
			i += end - 1
		case ch == '\n':
			keep(i)
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f':
			// insignificant
		default:
			keep(i)
		}
	}

	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
		offsets = append(offsets, len(src))
	}
	return b.String(), append(offsets, len(src))
}
