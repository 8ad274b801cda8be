package lexer

import "testing"

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, got []Kind, want ...Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBasicTokens(t *testing.T) {
	tokens, err := Tokenize("(+ 1 2)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, kinds(tokens), LeftParen, Symbol, Number, Number, RightParen)
	if tokens[1].Text != "+" {
		t.Errorf("Text = %q, want +", tokens[1].Text)
	}
	if tokens[2].Number != 1 || tokens[3].Number != 2 {
		t.Errorf("got numbers %v %v, want 1 2", tokens[2].Number, tokens[3].Number)
	}
}

func TestStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`("hello world" "with\nnewline")`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, kinds(tokens), LeftParen, String, String, RightParen)
	if tokens[1].Text != "hello world" {
		t.Errorf("Text = %q", tokens[1].Text)
	}
	if tokens[2].Text != "with\nnewline" {
		t.Errorf("Text = %q, want embedded newline", tokens[2].Text)
	}
}

func TestBooleanAndNil(t *testing.T) {
	tokens, err := Tokenize("(true false nil)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, kinds(tokens), LeftParen, Bool, Bool, Nil, RightParen)
	if !tokens[1].Bool || tokens[2].Bool {
		t.Errorf("got bools %v %v, want true false", tokens[1].Bool, tokens[2].Bool)
	}
}

func TestQuoteFamilyReaderMarkers(t *testing.T) {
	tokens, err := Tokenize("'x `(a ,b ,@c)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, kinds(tokens),
		Quote, Symbol,
		Quasiquote, LeftParen, Symbol, Unquote, Symbol, Splice, Symbol, RightParen)
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens, err := Tokenize("(+ 1 2) ; trailing comment\n(+ 3 4)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 10 {
		t.Fatalf("got %d tokens, want 10: %v", len(tokens), tokens)
	}
}

func TestUnterminatedStringFails(t *testing.T) {
	_, err := Tokenize(`("unterminated`)
	if err == nil || err.Kind != "UnterminatedString" {
		t.Fatalf("got %v, want UnterminatedString", err)
	}
}

func TestNegativeNumberVsMinusSymbol(t *testing.T) {
	tokens, err := Tokenize("(- -5 x)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, kinds(tokens), LeftParen, Symbol, Number, Symbol, RightParen)
	if tokens[1].Text != "-" {
		t.Errorf("got %q, want bare minus symbol", tokens[1].Text)
	}
	if tokens[2].Number != -5 {
		t.Errorf("got %v, want -5", tokens[2].Number)
	}
}
