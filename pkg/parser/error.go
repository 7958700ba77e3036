package parser

import (
	"fmt"
	"slices"
	"strings"

	"worldlang/pkg/color"
	"worldlang/pkg/lexer"
)

// SyntaxError reports the farthest point the grammar could reach
type SyntaxError struct {
	Pos      lexer.Position    // where matching stopped
	Expected []lexer.TokenType // terminals that would have allowed progress
	Found    string            // what was there instead
	Message  string            // categorized summary
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at Line: %d, Column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Pretty renders the error for a terminal
func (e *SyntaxError) Pretty() string {
	msg := color.RedText(e.Message) + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, t := range e.Expected {
			names[i] = t.String()
		}
		msg += ": expected " + color.BlueText(strings.Join(names, ", ")) + ", found " + color.BlueText(e.Found)
	}
	return msg
}

// syntaxError builds the error for a failed parse
func (p *Parser) syntaxError() *SyntaxError {
	pos := p.farthest
	if pos < 0 {
		pos = 0
	}

	expected := make([]lexer.TokenType, 0, len(p.expected))
	for t := range p.expected {
		expected = append(expected, t)
	}
	slices.Sort(expected)

	found := p.terminalAt(pos)
	return &SyntaxError{
		Pos:      p.position(pos),
		Expected: expected,
		Found:    found,
		Message:  categorizeError(expected, found),
	}
}

// categorizeError provides a specific error message based on the expected terminals
func categorizeError(expected []lexer.TokenType, found string) string {
	has := func(t lexer.TokenType) bool { return slices.Contains(expected, t) }
	hasLiteral := slices.ContainsFunc(expected, func(t lexer.TokenType) bool {
		return t.GetCategory() == lexer.LITERAL
	})

	switch {
	case found == "end of input" && has(lexer.RBRACE):
		return "Missing closing brace"
	case found == "\"":
		return "Unterminated string"
	case has(lexer.RPAREN) && !has(lexer.NEWLINE):
		return "Missing closing parenthesis"
	case found == "end of line" && hasLiteral:
		return "Missing expression"
	case has(lexer.NEWLINE) && found != "end of line":
		return "Expected end of statement"
	}

	return "Syntax error"
}
