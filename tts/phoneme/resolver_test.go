package phoneme

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/adam-cyclones/pitch-tts/tts"
)

// fakeTier is a scriptable tier that records how often it was called.
type fakeTier struct {
	name      string
	available bool
	answers   map[string][]string
	err       error
	calls     int
}

func (f *fakeTier) Name() string    { return f.name }
func (f *fakeTier) Available() bool { return f.available }

func (f *fakeTier) Phonemes(_ context.Context, word string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[word], nil
}

func TestResolveDictionaryFirst(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true}
	llm := &fakeTier{name: SourceLLM, available: true}
	r := NewResolver(NewDictionary(), g2p, llm)

	res := r.Resolve(context.Background(), "cat")
	if res.Source != SourceDictionary {
		t.Errorf("source = %q, want %q", res.Source, SourceDictionary)
	}
	want := []string{"K", "AE1", "T"}
	if !reflect.DeepEqual(res.Symbols, want) {
		t.Errorf("symbols = %v, want %v", res.Symbols, want)
	}

	// Later tiers must not run on a dictionary hit.
	if g2p.calls != 0 || llm.calls != 0 {
		t.Errorf("fallback tiers called: g2p=%d llm=%d", g2p.calls, llm.calls)
	}
}

func TestResolveFallsThroughTiers(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true,
		answers: map[string][]string{"FLUMMOX": {"F", "L", "AH1", "M", "AH0", "K", "S"}}}
	llm := &fakeTier{name: SourceLLM, available: true}
	r := NewResolver(NewDictionary(), g2p, llm)

	res := r.Resolve(context.Background(), "flummox")
	if res.Source != SourceG2P {
		t.Errorf("source = %q, want %q", res.Source, SourceG2P)
	}
	if g2p.calls != 1 {
		t.Errorf("g2p calls = %d, want 1", g2p.calls)
	}
	if llm.calls != 0 {
		t.Errorf("llm calls = %d, want 0", llm.calls)
	}
}

func TestResolveInvalidSymbolsCascade(t *testing.T) {
	// The rule tier answers with only invalid symbols, so the chain
	// must continue to the model tier.
	g2p := &fakeTier{name: SourceG2P, available: true,
		answers: map[string][]string{"BLORP": {"QX", "ZZ"}}}
	llm := &fakeTier{name: SourceLLM, available: true,
		answers: map[string][]string{"BLORP": {"B", "L", "AO1", "R", "P"}}}
	r := NewResolver(NewDictionary(), g2p, llm)

	res := r.Resolve(context.Background(), "blorp")
	if res.Source != SourceLLM {
		t.Errorf("source = %q, want %q", res.Source, SourceLLM)
	}
	if r.Warnings() == 0 {
		t.Error("expected a warning for dropped symbols")
	}
}

func TestResolvePartialInvalidSymbolsDropped(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true,
		answers: map[string][]string{"BLORP": {"B", "QX", "L", "AO1", "R", "P"}}}
	r := NewResolver(NewDictionary(), g2p)

	res := r.Resolve(context.Background(), "blorp")
	want := []string{"B", "L", "AO1", "R", "P"}
	if !reflect.DeepEqual(res.Symbols, want) {
		t.Errorf("symbols = %v, want %v", res.Symbols, want)
	}
}

func TestResolveCaches(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true,
		answers: map[string][]string{"FLUMMOX": {"F", "L", "AH1", "M"}}}
	r := NewResolver(NewDictionary(), g2p)
	ctx := context.Background()

	r.Resolve(ctx, "flummox")
	r.Resolve(ctx, "Flummox!")
	r.Resolve(ctx, "FLUMMOX")

	if g2p.calls != 1 {
		t.Errorf("g2p calls = %d, want 1 (cache should absorb repeats)", g2p.calls)
	}
}

func TestResolveFailureNotCached(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true}
	r := NewResolver(g2p)
	ctx := context.Background()

	if res := r.Resolve(ctx, "blorp"); !res.Empty() {
		t.Fatalf("expected empty result, got %v", res)
	}
	r.Resolve(ctx, "blorp")

	// Each attempt must retry the tier: failures are not cached.
	if g2p.calls != 2 {
		t.Errorf("g2p calls = %d, want 2", g2p.calls)
	}
}

func TestResolveUnavailableTierDisabled(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: false}
	llm := &fakeTier{name: SourceLLM, available: true,
		answers: map[string][]string{"BLORP": {"B", "L", "AO1", "R", "P"}}}
	r := NewResolver(g2p, llm)
	ctx := context.Background()

	res := r.Resolve(ctx, "blorp")
	if res.Source != SourceLLM {
		t.Errorf("source = %q, want %q", res.Source, SourceLLM)
	}
	r.Resolve(ctx, "another")

	if g2p.calls != 0 {
		t.Errorf("unavailable tier was called %d times", g2p.calls)
	}
}

func TestResolveTimeoutTreatedAsFailure(t *testing.T) {
	g2p := &fakeTier{name: SourceG2P, available: true,
		err: fmt.Errorf("g2p: %w", tts.ErrSubprocessTimeout)}
	llm := &fakeTier{name: SourceLLM, available: true,
		answers: map[string][]string{"BLORP": {"B", "L", "AO1", "R", "P"}}}
	r := NewResolver(g2p, llm)

	res := r.Resolve(context.Background(), "blorp")
	if res.Source != SourceLLM {
		t.Errorf("source = %q, want %q", res.Source, SourceLLM)
	}

	// A timeout fails the word, not the tier: the next word tries again.
	r.Resolve(context.Background(), "other")
	if g2p.calls != 2 {
		t.Errorf("g2p calls = %d, want 2", g2p.calls)
	}
}

func TestResolveNumberExpansion(t *testing.T) {
	r := NewResolver(NewDictionary())

	res := r.Resolve(context.Background(), "42")
	if res.Empty() {
		t.Fatal("expected 42 to resolve via number expansion")
	}

	forty := []string{"F", "AO1", "R", "T", "IY0"}
	two := []string{"T", "UW1"}
	want := append(append([]string{}, forty...), two...)
	if !reflect.DeepEqual(res.Symbols, want) {
		t.Errorf("symbols = %v, want %v", res.Symbols, want)
	}
	if res.Source != SourceDictionary {
		t.Errorf("source = %q, want %q", res.Source, SourceDictionary)
	}
}

func TestResolvePunctuationOnly(t *testing.T) {
	r := NewResolver(NewDictionary())
	if res := r.Resolve(context.Background(), "..."); !res.Empty() {
		t.Errorf("expected empty result for punctuation, got %v", res)
	}
}

func TestParseLLMAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "bare symbols", input: "B L AO1 R P", want: []string{"B", "L", "AO1", "R", "P"}},
		{name: "arrow format", input: "blorp => B L AO1 R P", want: []string{"B", "L", "AO1", "R", "P"}},
		{name: "chatty preamble", input: "Sure!\nblorp => B L AO1 R P", want: []string{"B", "L", "AO1", "R", "P"}},
		{name: "trailing blank lines", input: "B L\n\n", want: []string{"B", "L"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLLMAnswer(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLLMAnswer(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
