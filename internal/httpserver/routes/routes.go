package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shouni/go-deck-kit/internal/httpserver/handlers"
)

// Register はデッキ生成 API のルートを登録します。
func Register(root gin.IRouter, h *handlers.DeckHandler) {
	api := root.Group("/api")
	api.POST("/generate", h.Generate)
	api.POST("/convert/:session_id", h.Convert)
	api.GET("/download/:session_id/:filename", h.Download)
	api.POST("/cleanup/:session_id", h.Cleanup)
}
