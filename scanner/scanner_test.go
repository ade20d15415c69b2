package scanner

import (
	"testing"

	"github.com/loxscript/loxscript/token"
)

func TestScanTokens(t *testing.T) {
	input := `var x = 5;
x = x + 10.5;
// a comment
/* nested /* block */ comment */
"a string"
and class else false for fun if nil or print return super this true while break continue
! != = == < <= > >=
( ) { } , . + - ; * /`

	tests := []struct {
		expectedType   token.Type
		expectedLexeme string
	}{
		{token.VAR, "var"},
		{token.IDENT, "x"},
		{token.EQUAL, "="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "x"},
		{token.EQUAL, "="},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.NUMBER, "10.5"},
		{token.SEMICOLON, ";"},
		{token.STRING, `"a string"`},
		{token.AND, "and"},
		{token.CLASS, "class"},
		{token.ELSE, "else"},
		{token.FALSE, "false"},
		{token.FOR, "for"},
		{token.FUN, "fun"},
		{token.IF, "if"},
		{token.NIL, "nil"},
		{token.OR, "or"},
		{token.PRINT, "print"},
		{token.RETURN, "return"},
		{token.SUPER, "super"},
		{token.THIS, "this"},
		{token.TRUE, "true"},
		{token.WHILE, "while"},
		{token.BREAK, "break"},
		{token.CONTINUE, "continue"},
		{token.BANG, "!"},
		{token.BANG_EQUAL, "!="},
		{token.EQUAL, "="},
		{token.EQUAL_EQUAL, "=="},
		{token.LESS, "<"},
		{token.LESS_EQUAL, "<="},
		{token.GREATER, ">"},
		{token.GREATER_EQUAL, ">="},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.DOT, "."},
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.SEMICOLON, ";"},
		{token.STAR, "*"},
		{token.SLASH, "/"},
		{token.EOF, ""},
	}

	toks, errs := Scan(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}

	for i, tt := range tests {
		if i >= len(toks) {
			t.Fatalf("tests[%d] - ran out of tokens, expected %q", i, tt.expectedType)
		}
		tok := toks[i]
		if tok.Type != tt.expectedType {
			t.Errorf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Errorf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestScanAlwaysEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "1 + 1", "var x;", "\"unterminated"} {
		toks, _ := Scan(src)
		if len(toks) == 0 {
			t.Fatalf("Scan(%q) produced no tokens", src)
		}
		last := toks[len(toks)-1]
		if last.Type != token.EOF {
			t.Errorf("Scan(%q) last token = %s, want EOF", src, last.Type)
		}
		for _, tok := range toks[:len(toks)-1] {
			if tok.Type == token.EOF {
				t.Errorf("Scan(%q) produced an EOF token before the end", src)
			}
		}
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	_, errs := Scan(`"abc`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	_, errs := Scan(`/* never closed`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
}

func TestNestedBlockComments(t *testing.T) {
	toks, errs := Scan(`/* outer /* inner */ still outer */ 42`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(toks) != 2 || toks[0].Type != token.NUMBER || toks[0].Lexeme != "42" {
		t.Fatalf("expected a single NUMBER token before EOF, got %v", toks)
	}
}

func TestNumberLiteralParsesAsFloat(t *testing.T) {
	toks, errs := Scan("3.1415")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Literal.Kind != token.NumberLiteral || toks[0].Literal.Num != 3.1415 {
		t.Fatalf("expected literal 3.1415, got %+v", toks[0].Literal)
	}
}

func TestIllegalCharacterContinuesScanning(t *testing.T) {
	toks, errs := Scan("1 @ 2")
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	var types []token.Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []token.Type{token.NUMBER, token.ILLEGAL, token.NUMBER, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks, _ := Scan("var x;\nvar y;")
	// "y" on the second line is at line 1, column 4 (both 0-based).
	for _, tok := range toks {
		if tok.Lexeme == "y" {
			if tok.Pos.Line != 1 {
				t.Errorf("expected y on line 1 (0-based), got %d", tok.Pos.Line)
			}
			if tok.Pos.Column != 4 {
				t.Errorf("expected y at column 4 (0-based), got %d", tok.Pos.Column)
			}
			return
		}
	}
	t.Fatal("token 'y' not found")
}
