package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(p *PositionApi) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(p.Logger), gin.Recovery())

	g := r.Group("/api")
	g.GET("/validate", p.Validate)
	g.POST("/fen", p.Generate)
	g.GET("/chess960/:index", p.Chess960)
	g.GET("/positions/recent", p.Recent)
	g.POST("/batch", p.StartBatch)
	g.GET("/batch/:job_id", p.GetBatchStatus)
	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
