package local
import (
	"io"
	"os"
	"fmt"
	"bufio"
	"errors"
	"strings"
	"strconv"

	"imgstegno/util"
	"imgstegno/config"
	"imgstegno/stegano"
)

/*
 * package local runs the interactive encode/decode loop on top of
 * any reader/writer pair, normally stdin and stdout.
 */
const (
	EncodeChoice = "1"
	DecodeChoice = "2"
	ContinueAnswer = "1"
)

var ErrInvalidKey = errors.New("key must be an integer")

type Session struct {
	in		*bufio.Reader
	out		io.Writer
	conf		*config.FullConfig
	logger		*util.Logger

	// ReadKey prompts for the key. Defaults to a plain line read.
	ReadKey		func( prompt string ) (string, error)
}

func NewSession( in io.Reader, out io.Writer, conf *config.FullConfig, logger *util.Logger ) *Session {
	s := &Session{
		in: bufio.NewReader( in ),
		out: out,
		conf: conf,
		logger: logger,
	}
	s.ReadKey = s.prompt
	return s
}

/*
 * NewTerminalSession reads the key from the terminal without echo.
 * term.ReadPassword reads the file descriptor directly, so lines are
 * read one byte at a time and nothing typed ahead of the key prompt
 * is left in a buffer.
 */
func NewTerminalSession( in *os.File, out io.Writer, conf *config.FullConfig, logger *util.Logger ) *Session {
	s := NewSession( byteReader{ in }, out, conf, logger )
	s.ReadKey = func( prompt string ) (string, error) {
		key, err := util.GetPasswd( in, prompt )
		return string(key), err
	}
	return s
}

// byteReader never returns more than one byte per Read.
type byteReader struct {
	r	io.Reader
}

func(b byteReader) Read( p []byte ) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return b.r.Read( p )
}

func(s *Session) options() stegano.Options {
	return stegano.Options{
		OutputFormat: s.conf.StegConfig.OutputFormat,
		Logger: s.logger,
	}
}

func(s *Session) printf( format string, args ...any ) {
	fmt.Fprintf( s.out, format, args... )
}

// prompt returns the next input line without its line ending. A last
// line without a newline is still returned.
func(s *Session) prompt( text string ) (string, error) {
	s.printf( "%s", text )
	line, err := s.in.ReadString( '\n' )
	if err != nil && !(errors.Is( err, io.EOF ) && line != "") {
		return "", err
	}
	return strings.TrimRight( line, "\r\n" ), nil
}

func(s *Session) readKey() (int, error) {
	line, err := s.ReadKey( "Enter the shift key (number): " )
	if err != nil {
		return 0, err
	}
	line = strings.TrimSpace( line )
	if line == "" {
		return s.conf.DefaultKey, nil
	}
	key, err := strconv.Atoi( line )
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, line)
	}
	return key, nil
}

/*
 * Run shows the menu until the user declines to continue or the
 * input ends. Failures of a single operation are reported and the
 * loop goes on.
 */
func(s *Session) Run() error {
	for {
		s.printf( "\nImage Steganography\n1. Encode\n2. Decode\n" )
		choice, err := s.prompt( "Enter your choice: " )
		if err != nil {
			return ignoreEOF( err )
		}

		switch strings.TrimSpace( choice ) {
		case EncodeChoice:
			err = s.encode()
		case DecodeChoice:
			err = s.decode()
		default:
			s.printf( "Invalid choice\n" )
		}
		if err != nil {
			if errors.Is( err, io.EOF ) {
				return nil
			}
			s.logger.LogError( err )
			s.printf( "Error: %s\n", err.Error() )
		}

		answer, err := s.prompt( "\nPress 1 to continue, 0 to exit: " )
		if err != nil {
			return ignoreEOF( err )
		}
		if strings.TrimSpace( answer ) != ContinueAnswer {
			return nil
		}
	}
}

func ignoreEOF( err error ) error {
	if errors.Is( err, io.EOF ) {
		return nil
	}
	return err
}
