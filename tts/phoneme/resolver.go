package phoneme

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/adam-cyclones/pitch-tts/tts"
)

// Tier is one stage of the resolution chain. A tier may return
// (nil, nil) to signal a clean miss, letting the next tier try.
type Tier interface {
	Name() string
	Available() bool
	Phonemes(ctx context.Context, word string) ([]string, error)
}

// Resolver runs words through the tier chain in order, validating
// and caching results. Safe for concurrent use.
type Resolver struct {
	tiers []Tier
	cache *Cache

	mu       sync.Mutex
	disabled map[string]bool

	warnings atomic.Int64
}

// NewResolver creates a resolver over the given tiers, tried in
// order.
func NewResolver(tiers ...Tier) *Resolver {
	return &Resolver{
		tiers:    tiers,
		cache:    NewCache(),
		disabled: make(map[string]bool),
	}
}

// NewDefaultResolver builds the standard three-tier chain from
// configuration: dictionary, rule-based G2P, model-based fallback.
func NewDefaultResolver(cfg tts.Config) (*Resolver, error) {
	dict := NewDictionary()
	if cfg.DictPath != "" {
		if err := dict.LoadFile(cfg.DictPath); err != nil {
			return nil, err
		}
	}
	return NewResolver(dict, NewG2P(cfg.G2P), NewLLM(cfg.LLM)), nil
}

// Warnings returns the number of resolution warnings so far: dropped
// invalid symbols and words no tier could resolve.
func (r *Resolver) Warnings() int {
	return int(r.warnings.Load())
}

// Resolve returns the phoneme sequence for a raw word token. Words no
// tier can resolve yield an empty result, which callers render as a
// SIL placeholder; those are not cached so a later run can retry.
func (r *Resolver) Resolve(ctx context.Context, raw string) Result {
	word := NormalizeWord(raw)
	if word == "" {
		return Result{}
	}

	if res, ok := r.cache.Get(word); ok {
		return res
	}

	var res Result
	if IsNumeric(word) {
		res = r.resolveNumber(ctx, word)
	} else {
		res = r.resolveWord(ctx, word)
	}

	if !res.Empty() {
		r.cache.Put(word, res)
	}
	return res
}

// resolveNumber expands a digit string into spoken words and resolves
// each part, concatenating the sequences.
func (r *Resolver) resolveNumber(ctx context.Context, digits string) Result {
	var symbols []string
	source := ""
	for _, part := range ExpandNumber(digits) {
		res := r.Resolve(ctx, part)
		if res.Empty() {
			r.warn("unresolvable number part", "digits", digits, "part", part)
			return Result{}
		}
		symbols = append(symbols, res.Symbols...)
		if source == "" {
			source = res.Source
		}
	}
	return Result{Symbols: symbols, Source: source}
}

func (r *Resolver) resolveWord(ctx context.Context, word string) Result {
	for _, tier := range r.tiers {
		if r.tierDisabled(tier) {
			continue
		}

		seq, err := tier.Phonemes(ctx, word)
		if err != nil {
			if errors.Is(err, tts.ErrSubprocessUnavailable) {
				r.disableTier(tier)
				continue
			}
			r.warn("tier failed", "tier", tier.Name(), "word", word, "error", err)
			continue
		}
		if len(seq) == 0 {
			continue
		}

		valid, dropped := FilterValid(seq)
		if len(dropped) > 0 {
			r.warn("dropped invalid symbols",
				"tier", tier.Name(), "word", word, "symbols", dropped)
		}
		if len(valid) == 0 {
			continue
		}
		return Result{Symbols: valid, Source: tier.Name()}
	}

	r.warn("no tier resolved word", "word", word)
	return Result{}
}

// tierDisabled checks availability once per tier per run. A missing
// binary disables the tier for the rest of the run and is logged a
// single time.
func (r *Resolver) tierDisabled(tier Tier) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled[tier.Name()] {
		return true
	}
	if !tier.Available() {
		r.disabled[tier.Name()] = true
		log.Warn("Phoneme tier unavailable, skipping for this run", "tier", tier.Name())
		return true
	}
	return false
}

func (r *Resolver) disableTier(tier Tier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.disabled[tier.Name()] {
		r.disabled[tier.Name()] = true
		log.Warn("Phoneme tier unavailable, skipping for this run", "tier", tier.Name())
	}
}

func (r *Resolver) warn(msg string, kv ...any) {
	r.warnings.Add(1)
	log.Warn(msg, kv...)
}
