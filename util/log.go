package util
import (
	"io"
	"os"
	"sync"
	"time"
)

/*
 * a custom logger. Writes to a file when one is configured and to the
 * given writer (stderr by default) otherwise.
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	CyanColor = "\033[36m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
}

type Logger struct {
	li		*LoggerInfo
	out		io.Writer
	mtx		sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	return NewLoggerTo( li, os.Stderr )
}

func NewLoggerTo( li *LoggerInfo, out io.Writer ) *Logger {
	return &Logger{
		li: li,
		out: out,
	}
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format( time.DateTime ) + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.li.Filename == "" {
		io.WriteString( l.out, s + "\n" )
		return
	}
	// just append line
	f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
	if err == nil {
		defer f.Close()
		f.WriteString( s + "\n" )
	}
}

// a nil logger discards everything
func(l *Logger) enabled( level uint8 ) bool {
	return l != nil && l.li.Mode & level == level
}

func(l *Logger) LogError( err error ) {
	if l.enabled( Error ) {
		toWrite := l.prepareString( "[ERROR]", RedColor ) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.enabled( Warning ) {
		toWrite := l.prepareString( "[WARNING]", YellowColor ) + warning
		l.LogString( toWrite )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.enabled( Info ) {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}
