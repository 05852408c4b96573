package options

// DefaultOptions is the suggester configuration used when no overrides are
// supplied.
var DefaultOptions = SuggestOptions{
	MaxEditDistance: 2,
	TopK:            8,
	CountThreshold:  1,
	CaseFold:        true,
	StripAccents:    false,
	Transpositions:  true,
}

type SuggestOptions struct {
	MaxEditDistance int  // candidates farther than this are discarded
	TopK            int  // maximum number of suggestions returned; 0 means unlimited
	CountThreshold  int  // dictionary entries below this frequency are skipped at load time
	CaseFold        bool // lowercase queries and dictionary words before comparing
	StripAccents    bool // NFKD-decompose and drop combining marks before comparing
	Transpositions  bool // measure with Damerau-Levenshtein instead of plain Levenshtein
}

type Options interface {
	Apply(options *SuggestOptions)
}

type FuncConfig struct {
	ops func(options *SuggestOptions)
}

func (w FuncConfig) Apply(conf *SuggestOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SuggestOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithTopK(topK int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.TopK = topK
	})
}

func WithCountThreshold(countThreshold int) Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.CountThreshold = countThreshold
	})
}

// WithPreservedCase disables the default lowercase fold, so "Berlin" and
// "berlin" count as a substitution.
func WithPreservedCase() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.CaseFold = false
	})
}

// WithStrippedAccents folds away combining marks, so "café" matches "cafe"
// at distance zero.
func WithStrippedAccents() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.StripAccents = true
	})
}

// WithoutTranspositions makes the suggester measure candidates with plain
// Levenshtein distance, counting an adjacent swap as two edits.
func WithoutTranspositions() Options {
	return NewFuncOption(func(options *SuggestOptions) {
		options.Transpositions = false
	})
}
