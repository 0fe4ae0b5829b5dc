package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init reconfigures the global logger. level accepts zerolog level names
// ("debug", "info", ...); pretty switches to the human-readable console writer.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(lvl).With().Timestamp().Logger()
		return
	}
	log = zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) {
	emit(log.Debug(), msg, kv)
}

func Info(msg string, kv ...any) {
	emit(log.Info(), msg, kv)
}

func Warn(msg string, kv ...any) {
	emit(log.Warn(), msg, kv)
}

func Error(msg string, kv ...any) {
	emit(log.Error(), msg, kv)
}

// emit attaches key/value pairs to the event. A lone error (or any odd
// trailing value) is logged under "error"/"extra" so call sites may pass
// a bare err after the message.
func emit(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		e = e.Interface(key, kv[i+1])
	}
	if len(kv)%2 == 1 {
		last := kv[len(kv)-1]
		if err, ok := last.(error); ok {
			e = e.Err(err)
		} else {
			e = e.Interface("extra", last)
		}
	}
	e.Msg(msg)
}
