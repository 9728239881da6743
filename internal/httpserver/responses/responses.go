package responses

import (
	"github.com/gin-gonic/gin"

	"github.com/shouni/go-deck-kit/pkg/domain"
)

// ErrorResponse はすべての失敗時に返す本文です。
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateResponse は POST /api/generate の応答です。
type GenerateResponse struct {
	SessionID  string          `json:"session_id"`
	Outline    *domain.Outline `json:"outline"`
	SlideCount int             `json:"slide_count"`
	Source     string          `json:"source"`
	Message    string          `json:"message"`
}

// ConvertResponse は POST /api/convert/:session_id の応答です。
type ConvertResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

// CleanupResponse は POST /api/cleanup/:session_id の応答です。
type CleanupResponse struct {
	Success bool `json:"success"`
}

// Error はエラー本文を返して以降のハンドラーを中断します。
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
