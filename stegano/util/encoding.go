package util

/*
 * transform text from/to a flat sequence of bits,
 * 8 bits per byte, most significant bit first.
 */
const (
	BitsPerByte = 8
)

func ToBin( x byte ) []byte {
	result := make( []byte, BitsPerByte )
	for i := 0; i < BitsPerByte; i++ {
		result[i] = (x >> (BitsPerByte - 1 - i)) & 1
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < BitsPerByte; i++ {
		result = result << 1 | x[i] & 1
	}
	return result
}

func EncodeToBinary( text string ) []byte {
	res := make( []byte, 0, len(text) * BitsPerByte )
	for i := 0; i < len(text); i++ {
		res = append( res, ToBin( text[i] )... )
	}
	return res
}
