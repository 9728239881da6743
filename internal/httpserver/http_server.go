package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shouni/go-deck-kit/internal/config"
	"github.com/shouni/go-deck-kit/internal/httpserver/handlers"
	"github.com/shouni/go-deck-kit/internal/httpserver/middlewares"
	"github.com/shouni/go-deck-kit/internal/httpserver/routes"

	"github.com/shouni/go-deck-kit/pkg/session"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer はデッキ生成 API を提供する HTTP サーバーです。
type HTTPServer struct {
	cfg      *config.Config
	engine   *gin.Engine
	sessions *session.Store
}

// New は HTTP サーバーを構築します。
func New(cfg *config.Config, deck handlers.DeckService, sessions *session.Store) *HTTPServer {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.RequestLogger())

	registerCoreRoutes(engine)

	api := engine.Group("")
	api.Use(middlewares.Timeout(cfg.RequestTimeout))
	routes.Register(api, handlers.NewDeckHandler(deck, sessions))

	return &HTTPServer{
		cfg:      cfg,
		engine:   engine,
		sessions: sessions,
	}
}

// Handler はテストや埋め込み用に http.Handler を返します。
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run はサーバーを起動し、ctx がキャンセルされるまでブロックします。
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.ServerAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", s.cfg.ServerAddr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down HTTP server", "sessions", s.sessions.Len())
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
