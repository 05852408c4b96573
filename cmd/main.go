// Command txtdist prints the edit distance between two strings, or
// suggests close dictionary words for a term.
//
// Usage:
//
//	txtdist [-algo levenshtein|osa|damerau] STRING_A STRING_B
//	txtdist -suggest WORD -dict words.txt [-max 2] [-top 8]
package main

import (
	"flag"
	"fmt"
	"os"

	"txtdist/internal/suggest"
	"txtdist/pkg/options"
	"txtdist/pkg/textdist"
)

func main() {
	algo := flag.String("algo", "osa", "distance algorithm: levenshtein | osa | damerau")
	term := flag.String("suggest", "", "suggest dictionary words close to this term")
	dictPath := flag.String("dict", "", "frequency dictionary file (word count per line)")
	maxDist := flag.Int("max", 2, "maximum edit distance for -suggest")
	topK := flag.Int("top", 8, "maximum number of suggestions")
	flag.Parse()

	if *term != "" {
		if *dictPath == "" {
			fmt.Fprintln(os.Stderr, "txtdist: -suggest requires -dict")
			os.Exit(2)
		}
		sg := suggest.New(nil,
			options.WithMaxEditDistance(*maxDist),
			options.WithTopK(*topK),
		)
		must(sg.LoadDictionary(*dictPath))
		for _, s := range sg.Lookup(*term) {
			fmt.Printf("%s\t%d\t%d\n", s.Term, s.Distance, s.Count)
		}
		return
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: txtdist [-algo levenshtein|osa|damerau] STRING_A STRING_B")
		os.Exit(2)
	}
	a, b := flag.Arg(0), flag.Arg(1)
	var d int
	switch *algo {
	case "levenshtein":
		d = textdist.LevenshteinDistance(a, b)
	case "osa":
		d = textdist.DamerauLevenshteinDistance(a, b)
	case "damerau":
		d = textdist.UnrestrictedDamerauLevenshteinDistance(a, b)
	default:
		fmt.Fprintf(os.Stderr, "txtdist: unknown algorithm %q\n", *algo)
		os.Exit(2)
	}
	fmt.Println(d)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "txtdist:", err)
		os.Exit(1)
	}
}
