package main // import "github.com/tonobo/battlesnake-search"

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type Server struct {
	cfg      Config
	logger   log.Logger
	strategy Strategy
}

func NewServer(cfg Config, logger log.Logger, strategy Strategy) *Server {
	return &Server{cfg: cfg, logger: logger, strategy: strategy}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", s.handleInfo)
	r.POST("/start", s.handleStart)
	r.POST("/move", s.handleMove)
	r.POST("/end", s.handleEnd)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

func (s *Server) gameLog(state GameState) *GameLog {
	gl, err := OpenGameLog(s.logger, s.cfg.LogDir, s.cfg.Debug, state)
	if err != nil {
		_ = level.Warn(state.Logger(s.logger)).Log("msg", "game log unavailable", "err", err)
	}
	return gl
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apiversion": "1",
		"author":     "tonobo",
		"color":      "#ff00ff",
		"head":       "default",
		"tail":       "default",
		"version":    s.strategy.Name(),
	})
}

func (s *Server) handleStart(c *gin.Context) {
	var state GameState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gl := s.gameLog(state)
	defer gl.Close()
	_ = level.Info(gl.Logger).Log("msg", "starting game", "strategy", s.strategy.Name())
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) handleMove(c *gin.Context) {
	start := time.Now()
	var state GameState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gl := s.gameLog(state)
	defer gl.Close()
	if err := gl.Access(state); err != nil {
		_ = level.Warn(gl.Logger).Log("msg", "access log", "err", err)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.ComputeTime(state.Game.Timeout))
	defer cancel()
	move, completed := SelectMove(ctx, s.withLogger(gl.Logger), state, s.cfg.AvoidHeads)

	_ = level.Info(gl.Logger).Log("msg", "move", "move", move, "completed", completed, "took_ms", time.Since(start).Milliseconds())
	c.JSON(http.StatusOK, gin.H{"move": move})
}

func (s *Server) handleEnd(c *gin.Context) {
	var state GameState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gl := s.gameLog(state)
	defer gl.Close()
	if err := gl.Access(state); err != nil {
		_ = level.Warn(gl.Logger).Log("msg", "access log", "err", err)
	}
	_ = level.Info(gl.Logger).Log("msg", "game over", "result", gameResult(state))
	c.JSON(http.StatusOK, gin.H{})
}

// withLogger returns the configured strategy logging to logger.
func (s *Server) withLogger(logger log.Logger) Strategy {
	switch strategy := s.strategy.(type) {
	case PathfindingStrategy:
		strategy.Logger = logger
		return strategy
	case MinimaxStrategy:
		strategy.Logger = logger
		return strategy
	}
	return s.strategy
}

func gameResult(state GameState) string {
	for _, snake := range state.Board.Snakes {
		if snake.ID == state.You.ID {
			return "won"
		}
	}
	if len(state.Board.Snakes) == 0 {
		return "draw"
	}
	return "lost"
}
