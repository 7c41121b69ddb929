package local
import (
	"imgstegno/stegano"
	"imgstegno/stegano/img"
)

func(s *Session) encode() error {
	cover, err := s.prompt( "Enter the image file name (with extension): " )
	if err != nil {
		return err
	}
	message, err := s.prompt( "Enter the message to hide: " )
	if err != nil {
		return err
	}
	key, err := s.readKey()
	if err != nil {
		return err
	}
	output, err := s.prompt( "\nEnter the name of the result image (with extension): " )
	if err != nil {
		return err
	}

	report, err := stegano.HideInFile( cover, output, message, key, s.options() )
	if err != nil {
		return err
	}
	s.printf( "\n=== Encryption result ===\n" )
	s.printf( "Plain text: %s\n", report.Plaintext )
	s.printf( "Cipher text: %s\n", report.Ciphertext )
	s.printf( "==================\n" )
	if report.Coerced {
		s.printf( "Warning: the image was saved as %s so the hidden data is not lost\n", report.OutputPath )
	}
	s.printf( "Saved to %s (%d of %d bits used)\n", report.OutputPath, report.UsedBits, report.Capacity )
	s.printf( "%s\n", report.Metrics )
	return nil
}

func(s *Session) decode() error {
	filename, err := s.prompt( "Enter the image file name (with extension): " )
	if err != nil {
		return err
	}
	key, err := s.readKey()
	if err != nil {
		return err
	}

	revealed, err := stegano.RevealFromFile( filename, key, s.options() )
	if err != nil {
		return err
	}
	if !revealed.Found {
		s.printf( "%s\n", img.NoMessage )
		return nil
	}
	s.printf( "\n=== Decryption result ===\n" )
	s.printf( "Cipher text: %s\n", revealed.Ciphertext )
	s.printf( "Plain text: %s\n", revealed.Plaintext )
	s.printf( "==================\n" )
	return nil
}
