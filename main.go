package main

import (
	"context"
	"log"
	"time"

	"movie-review-api/cmd"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/data/repository/filestore"
	"movie-review-api/internal/sentiment"
	"movie-review-api/internal/wire"
	"movie-review-api/pkg/database"
	"movie-review-api/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Storage.Backend),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the storage backend
	repos, cleanup, err := setupStorage(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Pick the sentiment classifier
	var classifier sentiment.Classifier
	if config.Classifier.Endpoint != "" {
		timeout := time.Duration(config.Classifier.TimeoutSeconds) * time.Second
		classifier = sentiment.NewHTTPClassifier(config.Classifier.Endpoint, timeout, logger)
		logger.Info("Using HTTP classifier", zap.String("endpoint", config.Classifier.Endpoint))
	} else {
		classifier = sentiment.NewLexiconClassifier(logger)
		logger.Info("Using built-in lexicon classifier")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, classifier, config, clockwork.NewRealClock(), logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

// setupStorage builds the repository set for the configured backend and
// returns a cleanup func to release it.
func setupStorage(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	if config.Storage.Backend == "file" {
		store, err := filestore.Open(config.Storage.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Flat-file storage opened", zap.String("dir", config.Storage.DataDir))

		repos := &repository.Repository{
			Movie:  filestore.NewMovieStore(store, logger),
			Review: filestore.NewReviewStore(store, logger),
		}
		return repos, func() {}, nil
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	// One-time import of any legacy flat-file data into empty tables.
	if err := database.MigrateFromFiles(ctx, db, config.Storage.DataDir, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Database connected successfully")

	return repository.NewRepository(db, logger), db.Close, nil
}
