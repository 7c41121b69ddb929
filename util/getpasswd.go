package util
import (
	"os"
	"fmt"
	"golang.org/x/term"
)

// just a wrapper for term...
func GetPasswd( f *os.File, prompt string ) ([]byte, error) {
	fmt.Print( prompt )
	bytepw, err := term.ReadPassword( int(f.Fd()) )
	fmt.Println()
	return bytepw, err
}

func IsTerminal( f *os.File ) bool {
	return term.IsTerminal( int(f.Fd()) )
}
