package main
import (
	"os"
	"fmt"
	"strconv"
	"strings"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"imgstegno/util"
	"imgstegno/local"
	"imgstegno/config"
	"imgstegno/cryptography"
	"imgstegno/stegano"
	"imgstegno/stegano/img"
)

const (
	AppFolder = ".imgstegno"
	ConfigFilename = "config.yaml"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	appFolder := filepath.Join( home, AppFolder )
	configFile := filepath.Join( appFolder, ConfigFilename )

	// on the first run create the folder and the default configuration
	if _, err := os.Stat( configFile ); err != nil {
		if err = os.MkdirAll( appFolder, 0760 ); err != nil {
			fatal("Failed to create application directory:", err)
		}
		if err = config.SaveConfig( configFile, config.DefaultConfig() ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}

	if os.Args[1] == "genconfig" {
		if err = config.SaveConfig( configFile, config.DefaultConfig() ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
		fmt.Println("[+] Default configuration written to", configFile)
		return
	}
	if os.Args[1] == "editconf" {
		if err = util.EditConfig( configFile, config.CheckConfig ); err != nil {
			fatal("Failed to edit configuration:", err)
		}
		return
	}

	conf, err := config.LoadConfig( configFile )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	if conf.Logger.IsColored && !util.IsTerminal( os.Stderr ) {
		conf.Logger.IsColored = false
	}
	logger := util.NewLogger( &conf.Logger )
	opts := stegano.Options{
		OutputFormat: conf.StegConfig.OutputFormat,
		Logger: logger,
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "run":
		session := local.NewSession( os.Stdin, os.Stdout, conf, logger )
		if conf.StegConfig.HideKeyInput && util.IsTerminal( os.Stdin ) {
			session = local.NewTerminalSession( os.Stdin, os.Stdout, conf, logger )
		}
		if err = session.Run(); err != nil {
			fatal("Session failed:", err)
		}
	case "encode":
		if len(args) < 4 {
			help()
			os.Exit(-1)
		}
		report, err := stegano.HideInFile( args[0], args[1], strings.Join( args[3:], " " ),
			parseKey( args[2] ), opts )
		if err != nil {
			fatal("Failed to hide message:", err)
		}
		fmt.Println("Cipher text:", report.Ciphertext)
		fmt.Println("Saved to:", report.OutputPath)
		fmt.Println(report.Metrics)
	case "decode":
		if len(args) != 2 {
			help()
			os.Exit(-1)
		}
		revealed, err := stegano.RevealFromFile( args[0], parseKey( args[1] ), opts )
		if err != nil {
			fatal("Failed to reveal message:", err)
		}
		if !revealed.Found {
			fmt.Println( img.NoMessage )
			return
		}
		fmt.Println("Cipher text:", revealed.Ciphertext)
		fmt.Println("Plain text:", revealed.Plaintext)
	case "metrics":
		if len(args) != 2 {
			help()
			os.Exit(-1)
		}
		m, err := stegano.CompareFiles( args[0], args[1] )
		if err != nil {
			fatal("Failed to compare images:", err)
		}
		fmt.Println(m)
	case "capacity":
		if len(args) != 1 {
			help()
			os.Exit(-1)
		}
		bits, maxLen, err := stegano.CapacityOf( args[0] )
		if err != nil {
			fatal("Failed to read image:", err)
		}
		fmt.Printf("The image %q may hold %s bits: %s bytes of cipher text (~ %s), at least %s plain text characters\n",
			args[0], humanize.Comma( int64(bits) ), humanize.Comma( int64(maxLen) ),
			humanize.Bytes( uint64(maxLen) ), humanize.Comma( int64(cryptography.MaxPlaintextLen( maxLen )) ))
	case "readlog":
		if conf.Logger.Filename == "" {
			fatal("Logging to a file is disabled in", configFile)
		}
		if err := util.ReadLog( conf.Logger.Filename ); err != nil {
			fatal("Failed to read log file:", err)
		}
	default:
		help()
	}
}

func parseKey( s string ) int {
	key, err := strconv.Atoi( s )
	if err != nil {
		fatal("Invalid key:", err)
	}
	return key
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./imgstegno <command> [arguments]

The following commands are supported:
	run					interactive encode/decode loop
	encode <cover> <output> <key> <message>	hide a message
	decode <image> <key>			reveal a message
	metrics <original> <modified>		MSE and PSNR between two images
	capacity <image>			how much text an image can hide
	genconfig				write the default configuration
	editconf				edit configuration
	readlog					print the log file
`

	fmt.Printf("%s", line)
}
