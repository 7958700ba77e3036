package lexer_test

import (
	"testing"

	"worldlang/pkg/lexer"
)

func TestComments(t *testing.T) {
	input := `# test comment
x = 10 # another test comment
# another another test comment
y = 20.0`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{
		lexer.COMMENT, lexer.NEWLINE,
		lexer.ID, lexer.ASSIGN, lexer.NUM, lexer.COMMENT, lexer.NEWLINE,
		lexer.COMMENT, lexer.NEWLINE,
		lexer.ID, lexer.ASSIGN, lexer.NUM,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a = 1", "a=1\n"},
		{"a = 1\n", "a=1\n"},
		{"print( \"a b\" , c )\r\n", "print(\"a b\",c)\n"},
		{"if (x) {\n\tb = 1\n}\n", "if(x){\nb=1\n}\n"},
		{"# don't \"quote\n x = 1\n", "# don't \"quote\nx=1\n"},
		{"", "\n"},
	}

	for _, test := range tests {
		if got := lexer.Normalize(test.input); got != test.expected {
			t.Errorf("Normalize(%q): expected %q, got %q", test.input, test.expected, got)
		}
	}
}

func TestNormalizeOffsets(t *testing.T) {
	input := "a = 1 # c\r\n\tb"
	out, offsets := lexer.NormalizeOffsets(input)

	if out != "a=1# c\nb\n" {
		t.Fatalf("expected %q, got %q", "a=1# c\nb\n", out)
	}
	if len(offsets) != len(out)+1 {
		t.Fatalf("expected %d offsets, got %d", len(out)+1, len(offsets))
	}

	expected := []int{0, 2, 4, 6, 7, 8, 10, 12, 13, 13}
	for i, want := range expected {
		if offsets[i] != want {
			t.Errorf("offset %d: expected %d, got %d", i, want, offsets[i])
		}
	}
}
