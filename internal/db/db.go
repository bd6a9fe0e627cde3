package db

import (
	"context"
	"fmt"
	"time"

	"github.com/iftikharramnandan/chess960-fen-generator/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

type PositionDbClient struct {
	client             *mongo.Client
	PositionCollection *mongo.Collection
}

func (r *PositionDbClient) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func NewDbClient(ctx context.Context, cfg *config.Configuration) (*PositionDbClient, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.Database.Address)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Database.Address, err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %s: %w", cfg.Database.Address, err)
	}

	dbClient := &PositionDbClient{client: client}
	dbClient.PositionCollection = client.Database(cfg.Database.DatabaseName).Collection(cfg.Database.Collection)
	if dbClient.PositionCollection == nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("can't resolve collection %s", cfg.Database.DatabaseName+"."+cfg.Database.Collection)
	}
	return dbClient, nil
}
