// ABOUTME: SGR state machine tracking which text styling is currently active
// ABOUTME: Applies numeric parameter lists and synthesizes closing sequences

// Package sgr models the cumulative effect of SGR (Select Graphic
// Rendition) parameters on terminal styling. A State is replayed from the
// parameter lists of every SGR sequence seen so far; Closers then returns
// the sequences needed to switch every open attribute back off.
package sgr

import "strings"

// ColorKind discriminates Color encodings.
type ColorKind int

const (
	// ColorNone is the zero value: no color set on this channel.
	ColorNone ColorKind = iota
	// Color4Bit is a classic indexed color carrying its own SGR code
	// (30-37/90-97 for foreground, 40-47/100-107 for background).
	Color4Bit
	// Color8Bit is a 256-palette index set via a 38/48/58 sub-sequence.
	Color8Bit
	// Color24Bit is a truecolor RGB triple set via a 38/48/58 sub-sequence.
	Color24Bit
)

// Color is one color channel's value.
type Color struct {
	Kind    ColorKind
	Index   uint8 // Color4Bit (the SGR code itself) and Color8Bit
	R, G, B uint8 // Color24Bit
}

// State is the set of styling attributes active at a point in a stream.
// The zero value is the default (everything off).
type State struct {
	fg, bg, underlineColor Color

	bold, faint             bool
	italic                  bool
	underline, dblUnderline bool
	slowBlink, rapidBlink   bool
	inverse                 bool
	hidden                  bool
	crossedOut              bool
	framed, encircled       bool
	overlined               bool
	proportional            bool
	fraktur                 bool
	superscript, subscript  bool

	ideoUnderline, ideoDblUnderline bool
	ideoOverline, ideoDblOverline   bool
	ideoStress                      bool

	font int // 0 when unset, otherwise 11-19

	sawUnknown bool
	sawReset   bool
}

// Apply folds one SGR parameter list into the state. Parameters are
// consumed one at a time, except the 38/48/58 extended-color introducers
// which consume a variable-length sub-sequence.
func (s *State) Apply(params []int) {
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			*s = State{}
			s.sawReset = true
		case code == 1:
			s.bold = true
		case code == 2:
			s.faint = true
		case code == 3:
			s.italic = true
		case code == 4:
			s.underline = true
		case code == 5:
			s.slowBlink = true
		case code == 6:
			s.rapidBlink = true
		case code == 7:
			s.inverse = true
		case code == 8:
			s.hidden = true
		case code == 9:
			s.crossedOut = true
		case code == 10:
			s.font = 0
		case code >= 11 && code <= 19:
			s.font = code
		case code == 20:
			s.fraktur = true
		case code == 21:
			s.dblUnderline = true
		case code == 22:
			s.bold = false
			s.faint = false
		case code == 23:
			s.italic = false
		case code == 24:
			s.underline = false
			s.dblUnderline = false
		case code == 25:
			s.slowBlink = false
			s.rapidBlink = false
		case code == 26:
			s.proportional = true
		case code == 28:
			s.inverse = false
		case code == 29:
			s.crossedOut = false
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			s.fg = Color{Kind: Color4Bit, Index: uint8(code)}
		case code == 38:
			if c, n, ok := parseColor(params[i+1:]); ok {
				s.fg = c
				i += n
			}
		case code == 39:
			s.fg = Color{}
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			s.bg = Color{Kind: Color4Bit, Index: uint8(code)}
		case code == 48:
			if c, n, ok := parseColor(params[i+1:]); ok {
				s.bg = c
				i += n
			}
		case code == 49:
			s.bg = Color{}
		case code == 50:
			s.proportional = false
		case code == 51:
			s.framed = true
		case code == 52:
			s.encircled = true
		case code == 53:
			s.overlined = true
		case code == 54:
			s.encircled = false
			s.framed = false
		case code == 55:
			s.overlined = false
		case code == 58:
			if c, n, ok := parseColor(params[i+1:]); ok {
				s.underlineColor = c
				i += n
			}
		case code == 59:
			s.underlineColor = Color{}
		case code == 60:
			s.ideoUnderline = true
		case code == 61:
			s.ideoDblUnderline = true
		case code == 62:
			s.ideoOverline = true
		case code == 63:
			s.ideoDblOverline = true
		case code == 64:
			s.ideoStress = true
		case code == 65:
			s.ideoUnderline = false
			s.ideoDblUnderline = false
			s.ideoOverline = false
			s.ideoDblOverline = false
			s.ideoStress = false
		case code == 73:
			s.superscript = true
		case code == 74:
			s.subscript = true
		case code == 75:
			s.superscript = false
			s.subscript = false
		default:
			s.sawUnknown = true
		}
	}
}

// parseColor reads an extended-color sub-sequence following a 38/48/58
// introducer. Mode 2 carries an 8-bit palette index, mode 5 an RGB triple.
// A truncated sub-sequence returns ok=false with no values consumed, so
// the caller reprocesses them as ordinary codes.
func parseColor(rest []int) (c Color, n int, ok bool) {
	switch {
	case len(rest) >= 2 && rest[0] == 2:
		return Color{Kind: Color8Bit, Index: uint8(rest[1])}, 2, true
	case len(rest) >= 4 && rest[0] == 5:
		return Color{
			Kind: Color24Bit,
			R:    uint8(rest[1]),
			G:    uint8(rest[2]),
			B:    uint8(rest[3]),
		}, 4, true
	default:
		return Color{}, 0, false
	}
}

// Closers returns the sequences that switch every open attribute back off,
// in a fixed order. Attributes are closed by their family's canonical reset
// code, so one closer may cover several flags (22 ends both bold and
// faint). After an unrecognized code a trailing full reset is appended as a
// catch-all; if a full reset was also the most recent reset-class event, a
// leading one is emitted too.
func (s *State) Closers() string {
	var b strings.Builder

	emit := func(code string) {
		b.WriteString("\x1b[")
		b.WriteString(code)
		b.WriteString("m")
	}

	if s.sawUnknown && s.sawReset {
		emit("0")
	}
	if s.font != 0 {
		emit("10")
	}
	if s.bold || s.faint {
		emit("22")
	}
	if s.italic {
		emit("23")
	}
	if s.underline || s.dblUnderline {
		emit("24")
	}
	if s.slowBlink || s.rapidBlink {
		emit("25")
	}
	if s.inverse {
		emit("28")
	}
	if s.crossedOut {
		emit("29")
	}
	if s.fg.Kind != ColorNone {
		emit("39")
	}
	if s.bg.Kind != ColorNone {
		emit("49")
	}
	if s.proportional {
		emit("50")
	}
	if s.encircled || s.framed {
		emit("54")
	}
	if s.overlined {
		emit("55")
	}
	if s.ideoUnderline || s.ideoDblUnderline || s.ideoOverline ||
		s.ideoDblOverline || s.ideoStress {
		emit("65")
	}
	if s.underlineColor.Kind != ColorNone {
		emit("59")
	}
	if s.superscript || s.subscript {
		emit("75")
	}
	if s.sawUnknown {
		emit("0")
	}

	return b.String()
}
