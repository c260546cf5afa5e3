// Command caida runs a bot-vs-bot Caída match with the configured state
// store, logging every table event. Useful as a headless smoke run of the
// whole stack.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/deikotec/caida-game/engine"
	"github.com/deikotec/caida-game/internal/config"
	"github.com/deikotec/caida-game/internal/game"
	"github.com/deikotec/caida-game/internal/models"
	"github.com/deikotec/caida-game/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuration")
	}
	setupLogging(cfg)

	ctx := context.Background()
	st, err := buildStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("store setup")
	}

	rules := engine.DefaultRules()
	rules.TargetScore = int16(cfg.TargetScore)

	p0 := models.NewBot("Maquina 1")
	p1 := models.NewBot("Maquina 2")
	g := game.NewCaidaGame(p0, p1, rules)
	g.BotDelay = cfg.BotDelay
	g.RoundPause = cfg.RoundPause

	rec := &store.Record{ID: g.ID}
	if err := st.Create(ctx, rec); err != nil {
		logrus.WithError(err).Fatal("create game record")
	}

	g.PersistFn = func(state engine.RoundState) {
		err := store.Apply(ctx, st, g.ID, func(stored *engine.RoundState) error {
			*stored = state
			return nil
		})
		if err != nil {
			logrus.WithError(err).Error("persist state")
		}
	}

	done := make(chan uuid.UUID, 1)
	g.OnGameEnd = func(_ uuid.UUID, winner uuid.UUID, scores map[uuid.UUID]int) {
		logrus.WithFields(logrus.Fields{
			"winner":  winner,
			"score_0": scores[p0.ID],
			"score_1": scores[p1.ID],
		}).Info("match finished")
		done <- winner
	}

	g.Begin()

	select {
	case <-done:
	case <-time.After(10 * time.Minute):
		logrus.Fatal("match did not finish in time")
	}

	if err := st.Delete(ctx, g.ID); err != nil {
		logrus.WithError(err).Warn("cleanup")
	}
}

func setupLogging(cfg config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(os.Stdout)
}

func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return store.NewRedisStore(client, 24*time.Hour), nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		pg := store.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil

	default:
		return store.NewMemoryStore(), nil
	}
}
