package stegano
import (
	"os"
	"fmt"
	"bytes"

	"imgstegno/util"
	"imgstegno/cryptography"
	"imgstegno/stegano/img"
	sutil "imgstegno/stegano/util"
)

type Options struct {
	OutputFormat	string		// lossless format used instead of a lossy one
	Logger		*util.Logger
}

// Report describes a finished embedding.
type Report struct {
	Plaintext	string
	Ciphertext	string
	OutputPath	string
	Coerced		bool		// OutputPath differs from the requested name
	UsedBits	int
	Capacity	int
	Metrics		img.Metrics
}

type Revealed struct {
	Ciphertext	string
	Plaintext	string
	Found		bool
}

/*
 * HideInFile encrypts message with key, hides it in the cover image
 * and writes the result to output. Lossy output names are replaced by
 * a lossless one. The fidelity is measured against the written file.
 */
func HideInFile( cover, output, message string, key int, opts Options ) (*Report, error) {
	grid, err := img.Load( cover )
	if err != nil {
		return nil, err
	}

	plaintext := sutil.FixUnicode( message )
	ciphertext := cryptography.Encrypt( plaintext, key )

	outPath, coerced := img.OutputPath( output, opts.OutputFormat, grid.HasAlpha )
	if coerced {
		opts.Logger.LogWarning( fmt.Sprintf("%s can't keep hidden data or transparency, saving as %s", output, outPath) )
	}

	stego := grid.Clone()
	if err = img.Embed( stego, ciphertext ); err != nil {
		return nil, err
	}
	if err = img.Save( stego, outPath ); err != nil {
		return nil, err
	}

	saved, err := img.Load( outPath )
	if err != nil {
		return nil, err
	}
	metrics, err := img.Compare( grid, saved )
	if err != nil {
		return nil, err
	}

	report := &Report{
		Plaintext: plaintext,
		Ciphertext: ciphertext,
		OutputPath: outPath,
		Coerced: coerced,
		UsedBits: (len(ciphertext) + len(img.Terminator)) * sutil.BitsPerByte,
		Capacity: grid.Capacity(),
		Metrics: metrics,
	}
	opts.Logger.LogInfo( fmt.Sprintf("hid %d of %d bits in %s (%s)",
		report.UsedBits, report.Capacity, outPath, metrics) )
	return report, nil
}

// RevealFromFile extracts and decrypts a hidden message. A file
// without one is not an error, Found is false then.
func RevealFromFile( filename string, key int, opts Options ) (*Revealed, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	if format := img.Sniff( data ); format != "" && !img.IsLossless( format ) {
		opts.Logger.LogWarning( fmt.Sprintf("%s is a %s image, hidden bits rarely survive it", filename, format) )
	}

	grid, _, err := img.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	ciphertext, ok := img.Extract( grid )
	if !ok {
		opts.Logger.LogInfo( fmt.Sprintf("no message found in %s", filename) )
		return &Revealed{}, nil
	}
	return &Revealed{
		Ciphertext: ciphertext,
		Plaintext: cryptography.Decrypt( ciphertext, key ),
		Found: true,
	}, nil
}

func CompareFiles( original, modified string ) (img.Metrics, error) {
	a, err := img.Load( original )
	if err != nil {
		return img.Metrics{}, err
	}
	b, err := img.Load( modified )
	if err != nil {
		return img.Metrics{}, err
	}
	return img.Compare( a, b )
}

// CapacityOf returns the capacity in bits and the longest message in
// bytes the image can hide.
func CapacityOf( filename string ) (int, int, error) {
	grid, err := img.Load( filename )
	if err != nil {
		return 0, 0, err
	}
	return grid.Capacity(), grid.MaxMessageLen(), nil
}
