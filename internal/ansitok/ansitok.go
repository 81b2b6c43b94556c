// ABOUTME: Lossless tokenizer splitting styled text into text and escape tokens
// ABOUTME: Classifies SGR sequences separately and parses their numeric parameters

// Package ansitok scans a string into an ordered sequence of text runs and
// ANSI escape sequences. The tokens partition the input losslessly:
// concatenating the Raw form of every token reproduces the input
// byte-for-byte, including unterminated or otherwise malformed sequences.
package ansitok

import (
	"strconv"
	"strings"
)

// Kind discriminates token variants.
type Kind int

const (
	// Text is a maximal run of literal, non-escape characters.
	Text Kind = iota
	// SGR is a CSI sequence with final byte 'm' and a body of digits and
	// semicolons: a Select Graphic Rendition (styling) sequence.
	SGR
	// Escape is any other escape sequence (cursor movement, OSC titles,
	// DCS payloads, charset designation, ...). Passed through opaque.
	Escape
)

// Token is a single text run or escape sequence.
type Token struct {
	Kind Kind
	Raw  string
	// Params holds the parsed numeric parameters for SGR tokens.
	// An empty body ("\x1b[m") parses as [0]; empty slots between
	// semicolons parse as 0. Nil for other kinds.
	Params []int
}

// Scanner walks a string token by token in a single forward pass.
//
//	sc := ansitok.NewScanner(s)
//	for sc.Scan() {
//		tok := sc.Token()
//		...
//	}
type Scanner struct {
	src string
	pos int
	tok Token
}

// NewScanner returns a Scanner over s.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

// Scan advances to the next token. It returns false when the input is
// exhausted.
func (sc *Scanner) Scan() bool {
	if sc.pos >= len(sc.src) {
		return false
	}
	if sc.src[sc.pos] == escByte {
		end := skipSequence(sc.src, sc.pos)
		raw := sc.src[sc.pos:end]
		sc.pos = end
		if params, ok := sgrParams(raw); ok {
			sc.tok = Token{Kind: SGR, Raw: raw, Params: params}
		} else {
			sc.tok = Token{Kind: Escape, Raw: raw}
		}
		return true
	}
	end := len(sc.src)
	if i := strings.IndexByte(sc.src[sc.pos:], escByte); i >= 0 {
		end = sc.pos + i
	}
	sc.tok = Token{Kind: Text, Raw: sc.src[sc.pos:end]}
	sc.pos = end
	return true
}

// Token returns the token produced by the last call to Scan.
func (sc *Scanner) Token() Token {
	return sc.tok
}

const escByte = 0x1b

// skipSequence advances past the escape sequence starting at s[i] and
// returns the index of the first byte after it. A truncated sequence runs
// to the end of the input.
func skipSequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: ESC [ ... <final byte 0x40-0x7E>
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: ESC ] ... terminated by BEL or ST
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == escByte && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(', ')':
		// Designate character set: ESC ( <char>
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST
		i++
		for i < len(s) {
			if s[i] == escByte && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		// Simple two-byte ESC sequence
		return i + 1
	}
}

// sgrParams reports whether raw is a well-formed SGR sequence and, if so,
// returns its parsed parameter list.
func sgrParams(raw string) ([]int, bool) {
	if len(raw) < 3 || raw[0] != escByte || raw[1] != '[' || raw[len(raw)-1] != 'm' {
		return nil, false
	}
	body := raw[2 : len(raw)-1]
	for i := 0; i < len(body); i++ {
		if b := body[i]; (b < '0' || b > '9') && b != ';' {
			return nil, false
		}
	}
	if body == "" {
		// "\x1b[m" acts as a full reset.
		return []int{0}, true
	}
	parts := strings.Split(body, ";")
	params := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			continue // empty slot: 0
		}
		// Body is digit-only; Atoi clamps on overflow, which downstream
		// treats as an unrecognized code.
		n, _ := strconv.Atoi(part)
		params[i] = n
	}
	return params, true
}
