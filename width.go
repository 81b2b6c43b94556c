// ABOUTME: Display-column width of styled text, grapheme-aware
// ABOUTME: ASCII fast path plus an LRU cache for measured non-ASCII strings

package ansicut

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/ansicut-go/internal/ansitok"
)

const widthCacheSize = 512

// widthCache memoizes measurements of non-ASCII strings. container/list
// gives O(1) eviction from the back; reads take the write lock only to
// promote a hit to the front.
type widthLRU struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	size  int
}

type widthEntry struct {
	key   string
	value int
}

func newWidthLRU(size int) *widthLRU {
	return &widthLRU{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *widthLRU) get(key string) (int, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(widthEntry).value, true
}

func (c *widthLRU) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(widthEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(widthEntry{key: key, value: value})
}

var widthCache = newWidthLRU(widthCacheSize)

// Width returns the display width of s in terminal columns. Escape
// sequences contribute zero width; grapheme clusters may span more than
// one column (East Asian characters, emoji). This measures cells, not
// characters: for the position space Cut operates in, use Length.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes, in
// which case its width is its byte length.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// computeWidth sums grapheme-cluster widths over the text tokens of s.
func computeWidth(s string) int {
	w := 0
	for sc := ansitok.NewScanner(s); sc.Scan(); {
		tok := sc.Token()
		if tok.Kind != ansitok.Text {
			continue
		}
		text := tok.Raw
		state := -1
		for len(text) > 0 {
			var cluster string
			cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
			w += graphemeWidth(cluster)
		}
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
