package cryptography

const (
	// size of the latin alphabet, keys are taken modulo this value
	AlphabetSize = 26

	// separator between code words in the ciphertext
	Delimiter = " "

	SpaceWord = "spasi"
	PeriodWord = "titik"
	CommaWord = "koma"
)

/*
 * Base code words for 'A'..'Z'. Lower case letters use the same
 * words in lower case. Never modified after initialization.
 */
var upperWords = [AlphabetSize]string{
	"Batu", "Lebah", "Kaca", "Lada", "Lelah", "Info",
	"Laga", "Bahu", "Diri", "Baja", "Luka", "Pulau",
	"Lama", "Dunia", "Solo", "Tepi", "Taqwa", "Bara",
	"Masa", "Kota", "Kutu", "Lava", "Mawar", "Pixel",
	"Daya", "Azan",
}

// non-letter characters are never rotated
var fixedWords = map[rune]string{
	' ': SpaceWord,
	'.': PeriodWord,
	',': CommaWord,
}
