package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iftikharramnandan/chess960-fen-generator/internal/dao"
	"github.com/iftikharramnandan/chess960-fen-generator/pkg/fengen"
	"go.uber.org/zap"
)

// RowResult is the outcome for one submitted row.
type RowResult struct {
	Pieces  string `json:"pieces"`
	FEN     string `json:"fen,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

type GeneratorFactory struct {
	Repo   dao.PositionRepository
	Logger *zap.Logger
}

func NewGeneratorFactory(repo dao.PositionRepository, logger *zap.Logger) *GeneratorFactory {
	return &GeneratorFactory{
		Repo:   repo,
		Logger: logger,
	}
}

func (f GeneratorFactory) CreateGenerator(rows []string, color fengen.Color) *Generator {
	return &Generator{
		rows:   rows,
		color:  color,
		repo:   f.Repo,
		logger: f.Logger,
	}
}

// Generator turns a list of rows into FENs in the background.
type Generator struct {
	mu        sync.Mutex
	results   []RowResult
	processed int
	err       error
	done      bool

	rows   []string
	color  fengen.Color
	repo   dao.PositionRepository
	logger *zap.Logger
}

func (g *Generator) StartWork() {
	go g.Generate(context.Background())
}

func (g *Generator) Done() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done
}

func (g *Generator) Result() []RowResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.results
}

func (g *Generator) Error() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *Generator) Progress() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.rows) == 0 {
		return 1
	}
	return float64(g.processed) / float64(len(g.rows))
}

// Generate runs the job synchronously. A row that fails validation is
// reported in its result; a storage failure aborts the job.
func (g *Generator) Generate(ctx context.Context) {
	results := make([]RowResult, 0, len(g.rows))
	for _, pieces := range g.rows {
		res := RowResult{Pieces: pieces}
		fen, err := fengen.ValidateAndGenerate(pieces, g.color)
		var verr *fengen.ValidationError
		if errors.As(err, &verr) {
			res.Reason = string(verr.Reason)
			res.Message = verr.Message()
		} else {
			res.FEN = fen
			rec := dao.NewPositionRecord(pieces, g.color.String(), fen, fengen.IsChess960(pieces), time.Now())
			if err := g.repo.InsertPosition(ctx, rec); err != nil {
				g.logger.Error("failed to store position", zap.String("pieces", pieces), zap.Error(err))
				g.finish(nil, fmt.Errorf("error saving position %s", pieces))
				return
			}
		}
		results = append(results, res)

		g.mu.Lock()
		g.processed++
		g.mu.Unlock()
	}
	g.logger.Debug("batch finished", zap.Int("rows", len(results)), zap.Stringer("color", g.color))
	g.finish(results, nil)
}

func (g *Generator) finish(results []RowResult, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = results
	g.err = err
	g.done = true
}
