// Package suggest finds dictionary words close to a query term by edit
// distance. The vocabulary comes from a word-frequency file plus an
// optional Redis-backed custom dictionary.
package suggest

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"

	"txtdist/internal/customdict"
	"txtdist/pkg/options"
	"txtdist/pkg/textdist"
)

// Custom words outrank every file-loaded entry.
const customWordCount = 1_000_000_000

// Suggestion is a vocabulary word within the configured edit distance of a
// query term.
type Suggestion struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
	Count    int    `json:"count"`
}

type Suggester struct {
	opts options.SuggestOptions
	dict *customdict.CustomDict

	mu     sync.RWMutex
	counts map[string]int
	custom map[string]bool

	distCache sync.Map // map[string]int, key: query+"\u0000"+word
}

// New creates an empty Suggester. dict may be nil, in which case custom
// words live only in memory.
func New(dict *customdict.CustomDict, opts ...options.Options) *Suggester {
	o := options.DefaultOptions
	for _, op := range opts {
		op.Apply(&o)
	}
	return &Suggester{
		opts:   o,
		dict:   dict,
		counts: make(map[string]int),
		custom: make(map[string]bool),
	}
}

// LoadDictionary reads "word count" lines from path into the vocabulary.
// The file is memory-mapped read-only, so large frequency lists are scanned
// without copying them onto the heap. Lines whose count cannot be parsed or
// falls below CountThreshold are skipped.
func (s *Suggester) LoadDictionary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat dictionary: %w", err)
	}
	if fi.Size() == 0 {
		// mmap rejects empty files
		return nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap dictionary: %w", err)
	}
	defer m.Unmap()

	s.mu.Lock()
	defer s.mu.Unlock()
	sc := bufio.NewScanner(bytes.NewReader(m))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int(fv)
			} else {
				continue
			}
		}
		if count < s.opts.CountThreshold {
			continue
		}
		s.counts[s.normalize(parts[0])] = count
	}
	return sc.Err()
}

// LoadCustomWords pulls the persisted custom dictionary into the vocabulary.
func (s *Suggester) LoadCustomWords(ctx context.Context) error {
	if s.dict == nil {
		return nil
	}
	words, err := s.dict.All(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		nw := s.normalize(w)
		s.custom[nw] = true
		s.counts[nw] = customWordCount
	}
	return nil
}

// AddWord adds a word to the vocabulary and, when a custom dictionary store
// is configured, persists it there.
func (s *Suggester) AddWord(ctx context.Context, word string) error {
	w := s.normalize(word)
	if s.dict != nil {
		if err := s.dict.Add(ctx, w); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.custom[w] = true
	s.counts[w] = customWordCount
	s.mu.Unlock()
	return nil
}

// RemoveWord drops a word from the vocabulary and the custom dictionary
// store.
func (s *Suggester) RemoveWord(ctx context.Context, word string) error {
	w := s.normalize(word)
	if s.dict != nil {
		if err := s.dict.Remove(ctx, w); err != nil {
			return err
		}
	}
	s.mu.Lock()
	delete(s.custom, w)
	delete(s.counts, w)
	s.mu.Unlock()
	return nil
}

// Contains reports whether word is in the vocabulary after normalization.
func (s *Suggester) Contains(word string) bool {
	w := s.normalize(word)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.counts[w]
	return ok
}

// Lookup returns vocabulary words within MaxEditDistance of term, closest
// first; ties are broken by frequency (descending), then lexicographically.
// The result is capped at TopK entries.
func (s *Suggester) Lookup(term string) []Suggestion {
	q := s.normalize(term)
	lq := len([]rune(q))

	s.mu.RLock()
	var out []Suggestion
	for w, c := range s.counts {
		// Length difference is a lower bound on the distance.
		if lw := len([]rune(w)); lw-lq > s.opts.MaxEditDistance || lq-lw > s.opts.MaxEditDistance {
			continue
		}
		d := s.distance(q, w)
		if d > s.opts.MaxEditDistance {
			continue
		}
		out = append(out, Suggestion{Term: w, Distance: d, Count: c})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if s.opts.TopK > 0 && len(out) > s.opts.TopK {
		out = out[:s.opts.TopK]
	}
	return out
}

func (s *Suggester) distance(a, b string) int {
	key := a + "\u0000" + b
	if v, ok := s.distCache.Load(key); ok {
		return v.(int)
	}
	var d int
	if s.opts.Transpositions {
		d = textdist.DamerauLevenshteinDistance(a, b)
	} else {
		d = textdist.LevenshteinDistance(a, b)
	}
	s.distCache.Store(key, d)
	return d
}

func (s *Suggester) normalize(w string) string {
	if s.opts.CaseFold {
		w = strings.ToLower(w)
	}
	if s.opts.StripAccents {
		w = stripAccents(w)
	}
	return w
}
