package main

import (
	"context"

	"github.com/iftikharramnandan/chess960-fen-generator/internal/api"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/batch"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/config"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/dao"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/db"
	"github.com/iftikharramnandan/chess960-fen-generator/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	repo := dao.NewNopRepository()
	if cfg.PersistenceEnabled() {
		dbClient, err := db.NewDbClient(context.Background(), cfg)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer dbClient.Close(context.Background())
		repo = dao.NewPositionRepository(dbClient)
	} else {
		log.Info("MONGO_ADDRESS is not set, positions will not be stored")
	}

	defaultColor, _ := cfg.DefaultColor()
	positionApi := api.NewPositionApi(repo, batch.NewGeneratorFactory(repo, log), defaultColor, cfg.Generator.RecentLimit, log)
	router := api.NewRouter(positionApi)

	log.Info("listening", zap.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
