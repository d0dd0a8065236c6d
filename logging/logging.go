// Package logging builds the zerolog logger used by the command line tools
// and adapts it to the key-value Logger interface of the library packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/moffa90/go-radiocps/transfer"
)

// New returns a console logger writing to w at the named level ("debug",
// "info", "warn", "error"). An empty level means "info".
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = zerolog.InfoLevel.String()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Stamp}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Adapter implements transfer.Logger on top of a zerolog.Logger.
type Adapter struct {
	log zerolog.Logger
}

var _ transfer.Logger = (*Adapter)(nil)

// NewAdapter wraps l.
func NewAdapter(l zerolog.Logger) *Adapter {
	return &Adapter{log: l}
}

func (a *Adapter) Debug(msg string, keysAndValues ...interface{}) {
	fields(a.log.Debug(), keysAndValues).Msg(msg)
}

func (a *Adapter) Info(msg string, keysAndValues ...interface{}) {
	fields(a.log.Info(), keysAndValues).Msg(msg)
}

func (a *Adapter) Error(msg string, keysAndValues ...interface{}) {
	fields(a.log.Error(), keysAndValues).Msg(msg)
}

// fields adds alternating key-value pairs to e. A trailing key without a
// value is logged under "!BADKEY".
func fields(e *zerolog.Event, kv []interface{}) *zerolog.Event {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 >= len(kv) {
			e = e.Interface("!BADKEY", key)
			break
		}
		switch v := kv[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		case int:
			e = e.Int(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}
