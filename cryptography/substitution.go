package cryptography
import (
	"strings"
)

/*
 * Table is a keyed substitution table. Both directions are built
 * together, so decryption never has to invert anything per token.
 */
type Table struct {
	words		map[rune]string
	chars		map[string]rune
}

// NormalizeKey maps any integer onto 0..25.
func NormalizeKey( key int ) int {
	return ((key % AlphabetSize) + AlphabetSize) % AlphabetSize
}

func baseWord( r rune ) (string, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return upperWords[ r - 'A' ], true
	case r >= 'a' && r <= 'z':
		return strings.ToLower( upperWords[ r - 'a' ] ), true
	}
	w, ok := fixedWords[r]
	return w, ok
}

func rotate( r rune, shift int ) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A' + (r - 'A' + rune(shift)) % AlphabetSize
	case r >= 'a' && r <= 'z':
		return 'a' + (r - 'a' + rune(shift)) % AlphabetSize
	}
	return r
}

// Domain returns every character the table substitutes, in a stable order.
func Domain() []rune {
	domain := make( []rune, 0, 2 * AlphabetSize + len(fixedWords) )
	for r := 'A'; r <= 'Z'; r++ {
		domain = append( domain, r )
	}
	for r := 'a'; r <= 'z'; r++ {
		domain = append( domain, r )
	}
	return append( domain, ' ', '.', ',' )
}

func NewTable( key int ) *Table {
	shift := NormalizeKey( key )
	t := &Table{
		words: make( map[rune]string, 2 * AlphabetSize + len(fixedWords) ),
		chars: make( map[string]rune, 2 * AlphabetSize + len(fixedWords) ),
	}
	for _, r := range Domain() {
		w, _ := baseWord( rotate( r, shift ) )
		t.words[r] = w
		t.chars[w] = r
	}
	return t
}

func(t *Table) Word( r rune ) (string, bool) {
	w, ok := t.words[r]
	return w, ok
}

func(t *Table) Char( word string ) (rune, bool) {
	r, ok := t.chars[word]
	return r, ok
}

// Equal reports whether both tables produce the same substitution.
func(t *Table) Equal( other *Table ) bool {
	if other == nil || len(t.words) != len(other.words) {
		return false
	}
	for r, w := range t.words {
		if other.words[r] != w {
			return false
		}
	}
	return true
}

// MaxWordLen is the length of the longest code word. Every substituted
// character takes at most this many bytes plus a delimiter.
func MaxWordLen() int {
	longest := 0
	for _, r := range Domain() {
		if w, _ := baseWord( r ); len(w) > longest {
			longest = len(w)
		}
	}
	return longest
}

// MaxPlaintextLen is the number of substituted characters which
// always fit into n bytes of ciphertext.
func MaxPlaintextLen( n int ) int {
	if n <= 0 {
		return 0
	}
	return (n + len(Delimiter)) / (MaxWordLen() + len(Delimiter))
}
