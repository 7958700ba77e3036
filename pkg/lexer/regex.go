package lexer

import (
	"regexp"
)

// Terminal patterns, anchored at the start of the remaining input
var tokenRegexes = map[TokenType]*regexp.Regexp{
	LE: regexp.MustCompile(`^<=`),
	GE: regexp.MustCompile(`^>=`),
	EQ: regexp.MustCompile(`^==`),
	NE: regexp.MustCompile(`^!=`),

	ASSIGN: regexp.MustCompile(`^=`),
	PLUS:   regexp.MustCompile(`^\+`),
	MINUS:  regexp.MustCompile(`^-`),
	MULT:   regexp.MustCompile(`^\*`),
	DIV:    regexp.MustCompile(`^/`),
	LT:     regexp.MustCompile(`^<`),
	GT:     regexp.MustCompile(`^>`),

	COMMA:   regexp.MustCompile(`^,`),
	LPAREN:  regexp.MustCompile(`^\(`),
	RPAREN:  regexp.MustCompile(`^\)`),
	LBRACE:  regexp.MustCompile(`^\{`),
	RBRACE:  regexp.MustCompile(`^\}`),
	NEWLINE: regexp.MustCompile(`^\n`),

	// \-?[0-9]+(.[0-9]+)?
	NUM:     regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?`),
	STRING:  regexp.MustCompile(`^"[^"]*"`),
	ID:      regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`),
	COMMENT: regexp.MustCompile(`^#[^\n]*`),
}

var whitespaceRegex = regexp.MustCompile(`^[^\S\n]+`)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	COMMENT, LE, GE, EQ, NE, ASSIGN, PLUS, MINUS, MULT, DIV, LT, GT, NUM,
	COMMA, LPAREN, RPAREN, LBRACE, RBRACE, NEWLINE, STRING, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex
	}

	return nil
}

// Match returns the lexeme of a token of type t at the start of s, if any
func (t TokenType) Match(s string) (string, bool) {
	re := t.Regex()
	if re == nil {
		return "", false
	}

	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", false
	}

	return s[:loc[1]], true
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if lexeme, ok := tokenType.Match(s); ok {
			return tokenType, lexeme, true
		}
	}

	return ILLEGAL, string(s[0]), false
}
