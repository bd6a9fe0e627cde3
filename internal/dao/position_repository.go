package dao

import (
	"context"
	"time"

	"github.com/iftikharramnandan/chess960-fen-generator/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = time.Second

// PositionRecord is one generated start position.
type PositionRecord struct {
	Pieces    string             `bson:"pieces" json:"pieces"`
	Color     string             `bson:"color" json:"color"`
	FEN       string             `bson:"fen" json:"fen"`
	Chess960  bool               `bson:"chess960" json:"chess960"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"created_at"`
}

func NewPositionRecord(pieces, color, fen string, chess960 bool, now time.Time) PositionRecord {
	return PositionRecord{
		Pieces:    pieces,
		Color:     color,
		FEN:       fen,
		Chess960:  chess960,
		CreatedAt: primitive.NewDateTimeFromTime(now),
	}
}

type PositionRepository interface {
	InsertPosition(ctx context.Context, rec PositionRecord) error

	RecentPositions(ctx context.Context, limit int) ([]PositionRecord, error)
}

type positionRepository struct {
	dbClient *db.PositionDbClient
}

func NewPositionRepository(dbClient *db.PositionDbClient) PositionRepository {
	return &positionRepository{dbClient}
}

func (p *positionRepository) InsertPosition(ctx context.Context, rec PositionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := p.dbClient.PositionCollection.InsertOne(ctx, rec)
	return err
}

func (p *positionRepository) RecentPositions(ctx context.Context, limit int) ([]PositionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	opts.SetLimit(int64(limit))

	cur, err := p.dbClient.PositionCollection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	records := make([]PositionRecord, 0, limit)
	if err = cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

type nopRepository struct{}

// NewNopRepository is used when no database is configured. It stores
// nothing and always reports an empty history.
func NewNopRepository() PositionRepository {
	return nopRepository{}
}

func (nopRepository) InsertPosition(context.Context, PositionRecord) error { return nil }

func (nopRepository) RecentPositions(context.Context, int) ([]PositionRecord, error) {
	return []PositionRecord{}, nil
}
