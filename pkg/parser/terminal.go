package parser

import (
	"worldlang/pkg/lexer"
)

// tok matches a single terminal of the given type at the current offset
type tok lexer.TokenType

func (t tok) match(p *Parser, pos int) (int, []*Node, bool) {
	lexeme, ok := lexer.TokenType(t).Match(p.input[pos:])
	if !ok {
		p.expect(pos, lexer.TokenType(t))
		return pos, nil, false
	}

	return pos + len(lexeme), nil, true
}

// eof matches only at the end of input
type eof struct{}

func (eof) match(p *Parser, pos int) (int, []*Node, bool) {
	if pos < len(p.input) {
		p.expect(pos, lexer.EOF)
		return pos, nil, false
	}

	return pos, nil, true
}

// terminalAt reports what token the lexer would produce at offset pos, for diagnostics
func (p *Parser) terminalAt(pos int) string {
	if pos >= len(p.input) {
		return "end of input"
	}

	tokenType, lexeme, matched := lexer.MatchToken(p.input[pos:])
	if !matched {
		return lexeme
	}
	if tokenType == lexer.NEWLINE {
		return "end of line"
	}

	return lexeme
}
