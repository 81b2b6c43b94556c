// ABOUTME: Tests for the SGR state machine and closer synthesis
// ABOUTME: Covers the transition table, extended colors, and recovery from malformed specs

package sgr

import "testing"

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rest   []int
		want   Color
		wantN  int
		wantOK bool
	}{
		{name: "indexed", rest: []int{2, 200}, want: Color{Kind: Color8Bit, Index: 200}, wantN: 2, wantOK: true},
		{name: "indexed with trailing", rest: []int{2, 100, 123, 39}, want: Color{Kind: Color8Bit, Index: 100}, wantN: 2, wantOK: true},
		{name: "indexed truncated", rest: []int{2}, wantOK: false},
		{name: "rgb", rest: []int{5, 100, 123, 39}, want: Color{Kind: Color24Bit, R: 100, G: 123, B: 39}, wantN: 4, wantOK: true},
		{name: "rgb with trailing", rest: []int{5, 100, 123, 39, 1, 2, 3}, want: Color{Kind: Color24Bit, R: 100, G: 123, B: 39}, wantN: 4, wantOK: true},
		{name: "rgb truncated two", rest: []int{5, 100, 123}, wantOK: false},
		{name: "rgb truncated one", rest: []int{5, 100}, wantOK: false},
		{name: "rgb bare mode", rest: []int{5}, wantOK: false},
		{name: "unknown mode", rest: []int{3, 1, 2, 3}, wantOK: false},
		{name: "empty", rest: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, n, ok := parseColor(tt.rest)
			if ok != tt.wantOK {
				t.Fatalf("parseColor(%v) ok = %v, want %v", tt.rest, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want || n != tt.wantN {
				t.Errorf("parseColor(%v) = (%+v, %d), want (%+v, %d)", tt.rest, got, n, tt.want, tt.wantN)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params [][]int
		want   State
	}{
		{name: "bold", params: [][]int{{1}}, want: State{bold: true}},
		{name: "bold then cleared", params: [][]int{{1}, {22}}, want: State{}},
		{name: "faint cleared too", params: [][]int{{1, 2, 22}}, want: State{}},
		{name: "reset", params: [][]int{{1, 31}, {0}}, want: State{sawReset: true}},
		{name: "reset clears unknown", params: [][]int{{99}, {0}}, want: State{sawReset: true}},
		{
			name:   "fg 4bit",
			params: [][]int{{31}},
			want:   State{fg: Color{Kind: Color4Bit, Index: 31}},
		},
		{
			name:   "bright bg 4bit",
			params: [][]int{{103}},
			want:   State{bg: Color{Kind: Color4Bit, Index: 103}},
		},
		{
			name:   "fg indexed",
			params: [][]int{{38, 2, 200}},
			want:   State{fg: Color{Kind: Color8Bit, Index: 200}},
		},
		{
			name:   "bg rgb",
			params: [][]int{{48, 5, 10, 20, 30}},
			want:   State{bg: Color{Kind: Color24Bit, R: 10, G: 20, B: 30}},
		},
		{
			name:   "underline color then cleared",
			params: [][]int{{58, 2, 7}, {59}},
			want:   State{},
		},
		{
			// A truncated color spec consumes nothing: the following
			// values are reprocessed as ordinary codes.
			name:   "malformed fg spec reprocessed",
			params: [][]int{{38, 5, 100}},
			want:   State{slowBlink: true, bg: Color{Kind: Color4Bit, Index: 100}},
		},
		{name: "unknown code", params: [][]int{{200}}, want: State{sawUnknown: true}},
		{name: "font set", params: [][]int{{13}}, want: State{font: 13}},
		{name: "font cleared", params: [][]int{{13}, {10}}, want: State{}},
		{
			name:   "underline family",
			params: [][]int{{4, 21}},
			want:   State{underline: true, dblUnderline: true},
		},
		{name: "underline family cleared", params: [][]int{{4, 21}, {24}}, want: State{}},
		{name: "ideogram cleared", params: [][]int{{60, 61, 62, 63, 64}, {65}}, want: State{}},
		{name: "script cleared", params: [][]int{{73, 74}, {75}}, want: State{}},
		{name: "hidden and fraktur", params: [][]int{{8, 20}}, want: State{hidden: true, fraktur: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s State
			for _, p := range tt.params {
				s.Apply(p)
			}
			if s != tt.want {
				t.Errorf("state after %v = %+v, want %+v", tt.params, s, tt.want)
			}
		})
	}
}

func TestClosers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params [][]int
		want   string
	}{
		{name: "nothing open", params: nil, want: ""},
		{name: "after full reset", params: [][]int{{31, 1}, {0}}, want: ""},
		{name: "fg only", params: [][]int{{31}}, want: "\x1b[39m"},
		{name: "bg only", params: [][]int{{41}}, want: "\x1b[49m"},
		{name: "bold and faint share a closer", params: [][]int{{1, 2}}, want: "\x1b[22m"},
		{
			name:   "fixed order",
			params: [][]int{{1, 3, 4, 31, 41}},
			want:   "\x1b[22m\x1b[23m\x1b[24m\x1b[39m\x1b[49m",
		},
		{
			name:   "full spread",
			params: [][]int{{11, 5, 7, 9, 26, 51, 53, 60, 73, 58, 2, 3}},
			want:   "\x1b[10m\x1b[25m\x1b[28m\x1b[29m\x1b[50m\x1b[54m\x1b[55m\x1b[65m\x1b[59m\x1b[75m",
		},
		{name: "no closer for hidden", params: [][]int{{8}}, want: ""},
		{name: "no closer for fraktur", params: [][]int{{20}}, want: ""},
		{name: "unknown gets catch-all reset", params: [][]int{{31, 200}}, want: "\x1b[39m\x1b[0m"},
		{
			// Reset seen first, unknown after: both the leading and the
			// trailing catch-all fire.
			name:   "unknown after reset",
			params: [][]int{{0}, {200}},
			want:   "\x1b[0m\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s State
			for _, p := range tt.params {
				s.Apply(p)
			}
			if got := s.Closers(); got != tt.want {
				t.Errorf("closers after %v = %q, want %q", tt.params, got, tt.want)
			}
		})
	}
}
