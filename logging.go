package main // import "github.com/tonobo/battlesnake-search"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func NewLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// Logger tags logger with the game, our snake and the turn.
func (s GameState) Logger(logger log.Logger) log.Logger {
	return log.With(logger, "game_id", s.Game.ID, "snake_id", s.You.ID, "turn", s.Turn)
}

// GameLog is where one request of one game logs to. With a log
// directory configured it appends to per-game files, otherwise it uses
// the base logger and drops the access log.
type GameLog struct {
	Logger log.Logger
	access io.Writer
	files  []*os.File
}

func OpenGameLog(base log.Logger, dir string, debug bool, state GameState) (*GameLog, error) {
	gl := &GameLog{Logger: state.Logger(base), access: io.Discard}
	if dir == "" {
		return gl, nil
	}
	logFile, err := openAppend(dir, fmt.Sprintf("snake-%s-%s.log", state.You.Name, state.Game.ID))
	if err != nil {
		return gl, err
	}
	gl.files = append(gl.files, logFile)
	gl.Logger = state.Logger(NewLogger(logFile, debug))

	accessFile, err := openAppend(dir, fmt.Sprintf("access-snake-%s-%s.log", state.You.Name, state.Game.ID))
	if err != nil {
		return gl, err
	}
	gl.files = append(gl.files, accessFile)
	gl.access = accessFile
	return gl, nil
}

func openAppend(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, filepath.Base(name))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

// Access appends the request as one JSON line to the access log.
func (g *GameLog) Access(state GameState) error {
	body, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	_, err = fmt.Fprintf(g.access, "%s\n", body)
	return err
}

func (g *GameLog) Close() error {
	var first error
	for _, f := range g.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
