// ABOUTME: ANSI-aware string cutting that preserves SGR styling across the cut
// ABOUTME: Cut/CutBytes slice a range, Chunks splits into windows, Strip/Length measure

// Package ansicut slices styled terminal strings at a character range while
// keeping their ANSI styling intact. Escape sequences do not count toward
// positions, sequences that establish styling before or inside the range
// are carried into the result, and every style the result leaves open is
// closed at its end, so a cut fragment never bleeds color into whatever is
// printed after it.
package ansicut

import (
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/ansicut-go/internal/ansitok"
	"github.com/mauromedda/ansicut-go/internal/sgr"
)

// Cut returns the characters of s in the half-open range [lower, upper),
// with positions counted over the de-styled text (escape sequences are
// zero-width). An upper bound past the end clamps; a lower bound past the
// end yields no visible text. Escape sequences seen before the cutoff are
// kept, and closing sequences for any styling still open are appended even
// when the visible slice is empty, so the fragment stands on its own.
//
// Cut panics if either bound is negative or lower exceeds upper.
func Cut(s string, lower, upper int) string {
	checkBounds(lower, upper)

	var state sgr.State
	var b strings.Builder
	b.Grow(len(s))
	idx := 0

	sc := ansitok.NewScanner(s)
walk:
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind != ansitok.Text {
			b.WriteString(tok.Raw)
			if tok.Kind == ansitok.SGR {
				state.Apply(tok.Params)
			}
			continue
		}
		for _, r := range tok.Raw {
			if idx >= lower {
				if idx >= upper {
					break walk
				}
				b.WriteRune(r)
			}
			idx++
		}
	}

	b.WriteString(state.Closers())
	return b.String()
}

// CutBytes is Cut with positions counted in bytes of the de-styled text
// instead of characters.
//
// CutBytes panics, in addition to Cut's cases, if a bound falls inside a
// multi-byte UTF-8 character: a byte range that would split a character is
// a caller error, never a silently corrupted result.
func CutBytes(s string, lower, upper int) string {
	checkBounds(lower, upper)

	var state sgr.State
	var b strings.Builder
	b.Grow(len(s))
	idx := 0

	sc := ansitok.NewScanner(s)
walk:
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind != ansitok.Text {
			b.WriteString(tok.Raw)
			if tok.Kind == ansitok.SGR {
				state.Apply(tok.Params)
			}
			continue
		}
		for i := 0; i < len(tok.Raw); {
			r, size := utf8.DecodeRuneInString(tok.Raw[i:])
			pos := idx + i
			if lower > pos && lower < pos+size {
				panic("ansicut: lower bound is not on a character boundary")
			}
			if upper > pos && upper < pos+size {
				panic("ansicut: upper bound is not on a character boundary")
			}
			if pos >= lower {
				if pos >= upper {
					break walk
				}
				b.WriteRune(r)
			}
			i += size
		}
		idx += len(tok.Raw)
	}

	b.WriteString(state.Closers())
	return b.String()
}

// Chunks splits s into consecutive size-character windows of its de-styled
// text, each cut with Cut so every chunk carries its own styling. The final
// chunk may be shorter than size. An empty input yields no chunks.
//
// Chunks panics if size is not positive.
func Chunks(s string, size int) []string {
	if size <= 0 {
		panic("ansicut: chunk size must be positive")
	}

	length := Length(s)
	var chunks []string
	for start := 0; start < length; start += size {
		chunks = append(chunks, Cut(s, start, min(start+size, length)))
	}
	return chunks
}

// Strip returns s with every escape sequence removed.
func Strip(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for sc := ansitok.NewScanner(s); sc.Scan(); {
		if tok := sc.Token(); tok.Kind == ansitok.Text {
			b.WriteString(tok.Raw)
		}
	}
	return b.String()
}

// Length returns the number of characters in the de-styled text of s: the
// position space Cut and Chunks operate in.
func Length(s string) int {
	n := 0
	for sc := ansitok.NewScanner(s); sc.Scan(); {
		if tok := sc.Token(); tok.Kind == ansitok.Text {
			n += utf8.RuneCountInString(tok.Raw)
		}
	}
	return n
}

func checkBounds(lower, upper int) {
	if lower < 0 || upper < 0 {
		panic("ansicut: negative cut bound")
	}
	if lower > upper {
		panic("ansicut: lower bound exceeds upper bound")
	}
}
