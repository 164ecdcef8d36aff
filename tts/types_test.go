package tts

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple", input: "Cat sat.", want: []string{"Cat", "sat."}},
		{name: "extra whitespace", input: "  hello   world  ", want: []string{"hello", "world"}},
		{name: "empty", input: "", want: nil},
		{name: "only whitespace", input: " \t\n ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d", tt.input, len(tokens), len(tt.want))
			}
			for i, token := range tokens {
				if token.Text != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, token.Text, tt.want[i])
				}
				if token.Index != i {
					t.Errorf("token %d has index %d", i, token.Index)
				}
			}
		})
	}
}

func TestSpanDuration(t *testing.T) {
	s := Span{Start: 0.25, End: 0.85}
	if got := s.Duration(); got != 0.6 {
		t.Errorf("Duration() = %v, want 0.6", got)
	}
}
