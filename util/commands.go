package util
import (
	"os"
	"fmt"
	"os/exec"
)

const (
	TextEditor = "/usr/bin/vi"
	TextEditorVariableName = "IMGSTEGNO_EDITOR"
)

func editor() string {
	if te, ok := os.LookupEnv( TextEditorVariableName ); ok && te != "" {
		return te
	}
	if te, ok := os.LookupEnv( "EDITOR" ); ok && te != "" {
		return te
	}
	return TextEditor
}

// EditConfig opens the configuration in the user's text editor and
// runs validate on the result.
func EditConfig( conf string, validate func( string ) error ) error {
	te := editor()
	cmd := exec.Command( te, conf )
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to edit file using %v: %w", te, err)
	}
	if validate != nil {
		return validate( conf )
	}
	return nil
}

func ReadLog( log string ) error {
	data, err := os.ReadFile( log )
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	fmt.Print( string(data) )
	return nil
}
