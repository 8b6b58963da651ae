// Package ivlog is the core's internal leveled logger.
//
// It follows realpaver's Logger (original_source/src/realpaver/Logger.hpp)
// level scheme — none < main < inter < low < full — mapped onto
// zerolog's levels: main -> Info, inter -> Debug, low and full -> Trace.
// The default level is none (Disabled), so logging calls on the hot path
// cost a single disabled-level check until a caller opts in.
package ivlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
)

// SetWriter redirects log output. Passing nil discards all output.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Level names realpaver's LogLevel enum.
type Level int

const (
	LevelNone Level = iota
	LevelMain
	LevelInter
	LevelLow
	LevelFull
)

// SetLevel sets the minimum level that reaches the configured writer.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	switch l {
	case LevelNone:
		logger = logger.Level(zerolog.Disabled)
	case LevelMain:
		logger = logger.Level(zerolog.InfoLevel)
	case LevelInter:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelLow, LevelFull:
		logger = logger.Level(zerolog.TraceLevel)
	}
}

// UseStderr is a convenience for CLI/demo callers: SetWriter(os.Stderr).
func UseStderr() { SetWriter(os.Stderr) }

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Main logs at realpaver's "main" level: results of first-class
// algorithms (a propagation's final proof, a search driver's outcome).
func Main(msg string, kv ...any) { event(get().Info(), msg, kv) }

// Inter logs at "inter" level: nodes visited in a search algorithm.
func Inter(msg string, kv ...any) { event(get().Debug(), msg, kv) }

// Low logs at "low"/"full" level: quantities inside iterative methods
// (a single HC4-Revise backward step, a Newton iterate).
func Low(msg string, kv ...any) { event(get().Trace(), msg, kv) }

func event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
