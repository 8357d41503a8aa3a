package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"foodgram/internal/database"
	"foodgram/internal/pkg/logger"
	"foodgram/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	path := flag.String("file", "data/ingredients.json", "ingredients file (json or csv)")
	format := flag.String("format", "", "file format; detected from the extension when empty")
	dsn := flag.String("db", os.Getenv("DATABASE_URL"), "database DSN or sqlite file")
	flag.Parse()

	if *dsn == "" {
		*dsn = "foodgram.db"
	}

	kind, err := detectFormat(*format, *path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("detect format")
	}

	items, err := readIngredients(*path, kind)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("parse ingredients")
	}

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created, err := repository.NewIngredientRepository(db).CreateMissing(ctx, items)
	if err != nil {
		log.Fatal().Err(err).Msg("insert ingredients")
	}
	log.Info().
		Int("read", len(items)).
		Int64("created", created).
		Int64("skipped", int64(len(items))-created).
		Msg("ingredients loaded")
}
