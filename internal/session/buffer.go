package session

import "strings"

// inputBuffer is the one logical keystroke buffer. The raw value feeds
// validation; Display is what the screen may echo, masked while a PIN is
// being typed.
type inputBuffer struct {
	value  string
	masked bool
}

func (b *inputBuffer) append(r rune) {
	b.value += string(r)
}

func (b *inputBuffer) clear() {
	b.value = ""
}

func (b *inputBuffer) reset(masked bool) {
	b.value = ""
	b.masked = masked
}

func (b *inputBuffer) len() int {
	return len(b.value)
}

func (b *inputBuffer) contains(r rune) bool {
	return strings.ContainsRune(b.value, r)
}

func (b *inputBuffer) display() string {
	if b.masked {
		return strings.Repeat("*", len(b.value))
	}
	return b.value
}
