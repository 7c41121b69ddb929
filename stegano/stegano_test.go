package stegano
import (
	"os"
	"bytes"
	"math"
	"strings"
	"testing"
	"math/rand"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgstegno/util"
	"imgstegno/stegano/img"
)

func writeCover( t *testing.T, filename string, width, height int, hasAlpha bool ) *img.Grid {
	t.Helper()
	rnd := rand.New( rand.NewSource( int64(width * height) ) )
	grid := img.NewGrid( width, height, hasAlpha )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(0xff)
			if hasAlpha {
				a = uint8(rnd.Intn(256))
			}
			grid.Set( x, y, color.NRGBA{ uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), a } )
		}
	}
	require.NoError( t, img.Save( grid, filename ) )
	return grid
}

func testOptions( buf *bytes.Buffer ) Options {
	return Options{
		OutputFormat: img.PNG,
		Logger: util.NewLoggerTo( &util.LoggerInfo{ Mode: util.Error | util.Warning | util.Info }, buf ),
	}
}

func TestHideAndReveal( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	writeCover( t, cover, 80, 60, false )

	tests := []struct{
		message	string
		key	int
	}{
		{ "Hello world.", 3 },
		{ "Meet me at the old bridge, at nine.", 17 },
		{ "keys wrap around", -40 },
		{ "", 5 },
	}
	for _, tc := range tests {
		buf := new(bytes.Buffer)
		output := filepath.Join( dir, "stego.png" )
		report, err := HideInFile( cover, output, tc.message, tc.key, testOptions( buf ) )
		require.NoError( t, err )
		assert.Equal( t, output, report.OutputPath )
		assert.False( t, report.Coerced )
		assert.Equal( t, 80 * 60 * 3, report.Capacity )
		assert.Greater( t, report.Metrics.PSNR, 40.0 )

		revealed, err := RevealFromFile( output, tc.key, testOptions( buf ) )
		require.NoError( t, err )
		assert.True( t, revealed.Found )
		assert.Equal( t, report.Ciphertext, revealed.Ciphertext )
		assert.Equal( t, tc.message, revealed.Plaintext )
	}
}

func TestHideCoercesLossyOutput( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	writeCover( t, cover, 40, 40, false )

	buf := new(bytes.Buffer)
	report, err := HideInFile( cover, filepath.Join( dir, "out.jpg" ), "AB", 3, testOptions( buf ) )
	require.NoError( t, err )
	assert.True( t, report.Coerced )
	assert.Equal( t, filepath.Join( dir, "out.png" ), report.OutputPath )
	assert.Equal( t, "Lada Lelah", report.Ciphertext )
	assert.Contains( t, buf.String(), "[WARNING]" )

	_, err = os.Stat( filepath.Join( dir, "out.jpg" ) )
	assert.ErrorIs( t, err, os.ErrNotExist )
}

func TestHideKeepsAlpha( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	original := writeCover( t, cover, 30, 30, true )

	report, err := HideInFile( cover, filepath.Join( dir, "stego.png" ), "transparent", 1, Options{} )
	require.NoError( t, err )

	stego, err := img.Load( report.OutputPath )
	require.NoError( t, err )
	require.True( t, stego.HasAlpha )
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			require.Equal( t, original.At( x, y ).A, stego.At( x, y ).A )
		}
	}
}

func TestHideAlphaIntoBitmap( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	original := writeCover( t, cover, 24, 24, true )

	buf := new(bytes.Buffer)
	report, err := HideInFile( cover, filepath.Join( dir, "out.bmp" ), "see through", 2, testOptions( buf ) )
	require.NoError( t, err )
	assert.True( t, report.Coerced )
	assert.Equal( t, filepath.Join( dir, "out.png" ), report.OutputPath )
	assert.Contains( t, buf.String(), "[WARNING]" )

	stego, err := img.Load( report.OutputPath )
	require.NoError( t, err )
	require.True( t, stego.HasAlpha )
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			require.Equal( t, original.At( x, y ).A, stego.At( x, y ).A )
		}
	}
	_, err = os.Stat( filepath.Join( dir, "out.bmp" ) )
	assert.ErrorIs( t, err, os.ErrNotExist )
}

func TestHideTooLarge( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	writeCover( t, cover, 10, 10, false )

	// every letter becomes a word of at least four characters
	_, err := HideInFile( cover, filepath.Join( dir, "stego.png" ), strings.Repeat( "a", 10 ), 0, Options{} )
	assert.ErrorIs( t, err, img.ErrMessageTooLarge )
	_, err = os.Stat( filepath.Join( dir, "stego.png" ) )
	assert.ErrorIs( t, err, os.ErrNotExist )
}

func TestHideMissingCover( t *testing.T ) {
	dir := t.TempDir()
	_, err := HideInFile( filepath.Join( dir, "none.png" ), filepath.Join( dir, "out.png" ), "x", 0, Options{} )
	assert.ErrorIs( t, err, os.ErrNotExist )
}

func TestRevealNothing( t *testing.T ) {
	dir := t.TempDir()
	clean := filepath.Join( dir, "clean.png" )
	writeCover( t, clean, 50, 50, false )

	revealed, err := RevealFromFile( clean, 0, Options{} )
	require.NoError( t, err )
	assert.False( t, revealed.Found )
	assert.Empty( t, revealed.Plaintext )
}

func TestRevealWarnsOnLossy( t *testing.T ) {
	dir := t.TempDir()
	filename := filepath.Join( dir, "photo.jpg" )
	grid := img.NewGrid( 16, 16, false )
	f, err := os.Create( filename )
	require.NoError( t, err )
	require.NoError( t, jpeg.Encode( f, grid.Image(), nil ) )
	require.NoError( t, f.Close() )

	buf := new(bytes.Buffer)
	_, err = RevealFromFile( filename, 0, testOptions( buf ) )
	require.NoError( t, err )
	assert.Contains( t, buf.String(), "jpeg" )
}

func TestWrongKey( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.png" )
	writeCover( t, cover, 40, 40, false )
	output := filepath.Join( dir, "stego.png" )
	_, err := HideInFile( cover, output, "attack at dawn", 4, Options{} )
	require.NoError( t, err )

	revealed, err := RevealFromFile( output, 5, Options{} )
	require.NoError( t, err )
	assert.True( t, revealed.Found )
	assert.NotEqual( t, "attack at dawn", revealed.Plaintext )
}

func TestCompareFilesAndCapacity( t *testing.T ) {
	dir := t.TempDir()
	cover := filepath.Join( dir, "cover.bmp" )
	writeCover( t, cover, 20, 10, false )

	m, err := CompareFiles( cover, cover )
	require.NoError( t, err )
	assert.True( t, math.IsInf( m.PSNR, 1 ) )

	bits, maxLen, err := CapacityOf( cover )
	require.NoError( t, err )
	assert.Equal( t, 600, bits )
	assert.Equal( t, 73, maxLen )
}
