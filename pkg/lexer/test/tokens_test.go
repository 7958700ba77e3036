package lexer_test

import (
	"testing"

	"worldlang/pkg/lexer"
)

func TestTokens(t *testing.T) {
	input := "a,b = 10 / 2, -3\n" + "for(i, 0, 4) {\n" + "	print(\"i=\", i)\n" + "}\n" + "x = a-1 >= b"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.ID, lexer.COMMA, lexer.ID, lexer.ASSIGN, lexer.NUM, lexer.DIV, lexer.NUM, lexer.COMMA, lexer.NUM, lexer.NEWLINE,
		lexer.ID, lexer.LPAREN, lexer.ID, lexer.COMMA, lexer.NUM, lexer.COMMA, lexer.NUM, lexer.RPAREN, lexer.LBRACE, lexer.NEWLINE,
		lexer.ID, lexer.LPAREN, lexer.STRING, lexer.COMMA, lexer.ID, lexer.RPAREN, lexer.NEWLINE,
		lexer.RBRACE, lexer.NEWLINE,
		lexer.ID, lexer.ASSIGN, lexer.ID, lexer.MINUS, lexer.NUM, lexer.GE, lexer.ID,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks := lexer.Tokenize("a=1\n  b=2\n")
	if toks[4].Lexeme != "b" {
		t.Fatalf("expected b, got %s", toks[4])
	}
	if toks[4].Pos.Line != 2 || toks[4].Pos.Column != 3 {
		t.Errorf("expected b at 2:3, got %d:%d", toks[4].Pos.Line, toks[4].Pos.Column)
	}
}

func TestBlockDepth(t *testing.T) {
	tests := []struct {
		input string
		depth int
	}{
		{"a=1\n", 0},
		{"if(a){\n", 1},
		{"if(a){\nfor(i,0,1){\n", 2},
		{"if(a){\nb=1\n}\n", 0},
		{"s=\"{{\"\n", 0},
		{"# {\n", 0},
	}

	for _, test := range tests {
		if got := lexer.BlockDepth(test.input); got != test.depth {
			t.Errorf("BlockDepth(%q): expected %d, got %d", test.input, test.depth, got)
		}
	}
}

func TestPositionAt(t *testing.T) {
	text := "ab\ncd\n"
	tests := []struct {
		offset int
		want   string
	}{
		{0, "1:1"},
		{1, "1:2"},
		{3, "2:1"},
		{5, "2:3"},
		{6, "3:1"},
		{99, "3:1"},
	}

	for _, test := range tests {
		if got := lexer.PositionAt(text, test.offset).String(); got != test.want {
			t.Errorf("PositionAt(%d): expected %s, got %s", test.offset, test.want, got)
		}
	}
}
