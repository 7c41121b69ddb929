package cryptography
import (
	"testing"
	"github.com/stretchr/testify/assert"
)

func TestEncryptKnownKey( t *testing.T ) {
	ct := Encrypt( "AB", 3 )
	assert.Equal( t, "Lada Lelah", ct )
	assert.Equal( t, "AB", Decrypt( ct, 3 ) )
}

func TestEncryptNonLetters( t *testing.T ) {
	// space, period and comma are never rotated
	for _, key := range []int{ 0, 1, 13, 25, -7 } {
		assert.Equal( t, "spasi titik koma", Encrypt( " .,", key ) )
	}
}

func TestEncryptPassThrough( t *testing.T ) {
	assert.Equal( t, "Bahu diri !", Encrypt( "Hi!", 0 ) )
	assert.Equal( t, "Hi!", Decrypt( "Bahu diri !", 0 ) )
	assert.Equal( t, "", Encrypt( "", 5 ) )
	assert.Equal( t, "", Decrypt( "", 5 ) )
}

func TestRoundTrip( t *testing.T ) {
	messages := []string{
		"Hello world.",
		"The quick brown fox, jumps over the lazy dog.",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz",
		"numbers 0123456789 and symbols !?#",
		"unicode: żółw",
	}
	keys := []int{ 0, 1, 3, 25, 26, 27, 100, -1, -26, -53 }
	for _, msg := range messages {
		for _, key := range keys {
			ct := Encrypt( msg, key )
			if pt := Decrypt( ct, key ); pt != msg {
				t.Errorf("Round trip failed for key %d: %q != %q", key, pt, msg)
			}
		}
	}
}

func TestWrongKey( t *testing.T ) {
	ct := Encrypt( "secret", 4 )
	assert.NotEqual( t, "secret", Decrypt( ct, 5 ) )
}

func TestDelimiterAmbiguity( t *testing.T ) {
	// pass-through whitespace is split away or trimmed by decryption
	assert.NotEqual( t, "a\tb\n", Decrypt( Encrypt( "a\tb\n", 0 ), 0 ) )
	// a literal code word in the message decodes to its character
	assert.Equal( t, "-a-", Decrypt( "- batu -", 0 ) )
}
