// The reconciler recomputes per-user statistics from authoritative
// counts whenever a dream or analysis lifecycle event arrives. API
// request handlers keep counters fresh with cheap atomic increments;
// this worker heals any drift those best-effort increments accumulate.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lunarly/internal/logger"
	"lunarly/config"
	"lunarly/db"
	"lunarly/eventbus"
	"lunarly/events"
	"lunarly/models"
	"lunarly/repositories"
)

const consumerGroup = "lunarly-stats-reconciler"

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Fatal("KAFKA_BROKERS is required for the reconciler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB: ", err)
	}

	bus, err := eventbus.NewKafkaBus(brokers)
	if err != nil {
		log.Fatal("failed to init Kafka: ", err)
	}
	defer bus.Close()

	rec := &reconciler{
		dreams:   repositories.NewDreamRepository(db.Database()),
		analyses: repositories.NewAnalysisRepository(db.Database()),
		users:    repositories.NewUserRepository(db.Database()),
	}

	topics := []string{cfg.Events.DreamsTopic, cfg.Events.AnalysesTopic}
	if err := bus.Consume(ctx, consumerGroup, topics, rec.handle); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

type reconciler struct {
	dreams   *repositories.DreamRepository
	analyses *repositories.AnalysisRepository
	users    *repositories.UserRepository
}

// handle recomputes the counters of the user named in the event. Every
// event type on both topics carries a uid, which is all we need.
func (r *reconciler) handle(ctx context.Context, event eventbus.Event) error {
	var payload events.UIDOnly
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("event %s has no uid: %w", event.ID, err)
	}
	if payload.UID == "" {
		return fmt.Errorf("event %s has empty uid", event.ID)
	}

	totalDreams, err := r.dreams.CountByUser(ctx, payload.UID)
	if err != nil {
		return fmt.Errorf("count dreams for %s: %w", payload.UID, err)
	}
	analysesUsed, err := r.analyses.CountByUser(ctx, payload.UID)
	if err != nil {
		return fmt.Errorf("count analyses for %s: %w", payload.UID, err)
	}

	stats := models.Stats{TotalDreams: totalDreams, AnalysesUsed: analysesUsed}
	if err := r.users.SetStats(ctx, payload.UID, stats); err != nil {
		return fmt.Errorf("set stats for %s: %w", payload.UID, err)
	}

	logger.Log.Infof("reconciled stats for %s: dreams=%d analyses=%d (event %s)",
		payload.UID, totalDreams, analysesUsed, event.Type)
	return nil
}
