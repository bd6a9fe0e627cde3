package api

import (
	"crypto/md5"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/batch"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/dao"
	"github.com/iftikharramnandan/chess960-fen-generator/pkg/fengen"
	"go.uber.org/zap"
)

type fenRequest struct {
	Pieces string `json:"pieces"`
	Color  string `json:"color"`
	Clean  bool   `json:"clean"`
}

type fenResponse struct {
	Pieces   string `json:"pieces"`
	Color    string `json:"color"`
	FEN      string `json:"fen"`
	Castling string `json:"castling"`
	Chess960 bool   `json:"chess960"`
	Index    *int   `json:"index,omitempty"`
	Board    string `json:"board,omitempty"`
}

type batchRequest struct {
	Rows  []string `json:"rows"`
	Color string   `json:"color"`
}

type PositionApi struct {
	PositionRepository dao.PositionRepository
	BatchFactory       *batch.GeneratorFactory
	DefaultColor       fengen.Color
	RecentLimit        int
	Logger             *zap.Logger
	activeJobs         map[string]batch.Worker
	totalJobs          int
	mu                 sync.RWMutex
}

func NewPositionApi(repo dao.PositionRepository, factory *batch.GeneratorFactory, defaultColor fengen.Color, recentLimit int, logger *zap.Logger) *PositionApi {
	return &PositionApi{
		PositionRepository: repo,
		BatchFactory:       factory,
		DefaultColor:       defaultColor,
		RecentLimit:        recentLimit,
		Logger:             logger,
		activeJobs:         make(map[string]batch.Worker),
	}
}

func (p *PositionApi) parseColor(s string) (fengen.Color, error) {
	if s == "" {
		return p.DefaultColor, nil
	}
	return fengen.ParseColor(s)
}

func validationBody(err *fengen.ValidationError) gin.H {
	return gin.H{
		"valid":   false,
		"reason":  err.Reason,
		"message": err.Message(),
	}
}

func (p *PositionApi) Validate(ctx *gin.Context) {
	pieces := ctx.Query("pieces")
	var verr *fengen.ValidationError
	if err := fengen.Validate(pieces); errors.As(err, &verr) {
		ctx.JSON(http.StatusOK, validationBody(verr))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"valid": true})
}

func (p *PositionApi) Generate(ctx *gin.Context) {
	var req fenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	color, err := p.parseColor(req.Color)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pieces := req.Pieces
	if req.Clean {
		pieces = fengen.Clean(pieces)
	}
	var verr *fengen.ValidationError
	if err := fengen.Validate(pieces); errors.As(err, &verr) {
		p.Logger.Info("rejected back rank", zap.String("pieces", pieces), zap.String("reason", string(verr.Reason)))
		ctx.JSON(http.StatusUnprocessableEntity, validationBody(verr))
		return
	}

	pos := fengen.NewPosition(pieces, color)
	fen := pos.String()
	p.Logger.Debug("generated position",
		zap.String("pieces", pieces),
		zap.Stringer("color", color),
		zap.String("base_row", fengen.BaseRow(pieces, color)),
		zap.String("castling", pos.Castling),
	)

	resp := fenResponse{
		Pieces:   pieces,
		Color:    color.String(),
		FEN:      fen,
		Castling: pos.Castling,
		Chess960: fengen.IsChess960(pieces),
	}
	if idx, ok := fengen.Index(fengen.BaseRow(pieces, color)); ok {
		resp.Index = &idx
	}
	if board, err := fengen.Board(fen); err == nil {
		resp.Board = board.Draw()
	}

	rec := dao.NewPositionRecord(pieces, color.String(), fen, resp.Chess960, time.Now())
	if err := p.PositionRepository.InsertPosition(ctx.Request.Context(), rec); err != nil {
		p.Logger.Error("failed to store position", zap.String("fen", fen), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error saving position"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (p *PositionApi) Chess960(ctx *gin.Context) {
	n, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "index should be an integer"})
		return
	}
	row, err := fengen.FromIndex(n)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"index":  n,
		"pieces": row,
		"fen":    fengen.Generate(row, fengen.White),
	})
}

func (p *PositionApi) Recent(ctx *gin.Context) {
	records, err := p.PositionRepository.RecentPositions(ctx.Request.Context(), p.RecentLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, records)
}

func (p *PositionApi) StartBatch(ctx *gin.Context) {
	var req batchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Rows) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "rows should not be empty"})
		return
	}
	color, err := p.parseColor(req.Color)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker := p.BatchFactory.CreateGenerator(req.Rows, color)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalJobs++
	id := fmt.Sprintf("%x", md5.Sum([]byte(strconv.Itoa(p.totalJobs))))
	p.activeJobs[id] = worker
	worker.StartWork()
	ctx.JSON(http.StatusOK, gin.H{
		"job_id": id,
	})
}

func (p *PositionApi) GetBatchStatus(ctx *gin.Context) {
	id := ctx.Param("job_id")
	p.mu.Lock()
	defer p.mu.Unlock()
	worker, ok := p.activeJobs[id]
	if !ok {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !worker.Done() {
		ctx.JSON(http.StatusOK, gin.H{
			"done":     false,
			"progress": worker.Progress(),
		})
		return
	}

	delete(p.activeJobs, id)
	if err := worker.Error(); err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"done":  true,
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"done":   true,
		"result": worker.Result(),
	})
}
