package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/analyzer"
	"lunarly/apperr"
	"lunarly/internal/logger"
	"lunarly/eventbus"
	"lunarly/events"
	"lunarly/models"
)

// AnalysisService is the orchestrator of the dream-analysis pipeline:
// precondition checks, prompt construction, model invocation with ranked
// fallback, response parsing (or deterministic fallback), and one atomic
// persistence step.
type AnalysisService struct {
	dreams   DreamStore
	analyses AnalysisStore
	users    UserStore
	txn      TxnRunner

	// invoker is nil when the deployment runs without model-provider
	// access; the fallback generator is then the sole analysis engine.
	invoker ModelInvoker
	quota   QuotaReserver

	publisher     eventbus.Publisher
	analysesTopic string
}

func NewAnalysisService(
	dreams DreamStore,
	analyses AnalysisStore,
	users UserStore,
	txn TxnRunner,
	invoker ModelInvoker,
	quota QuotaReserver,
	publisher eventbus.Publisher,
	analysesTopic string,
) *AnalysisService {
	return &AnalysisService{
		dreams:        dreams,
		analyses:      analyses,
		users:         users,
		txn:           txn,
		invoker:       invoker,
		quota:         quota,
		publisher:     publisher,
		analysesTopic: analysesTopic,
	}
}

// AnalyzeResult is the success shape of one orchestration run.
type AnalyzeResult struct {
	AnalysisID string
	Insights   models.Insights
	ModelUsed  string
}

// AnalyzeDream runs the full pipeline for the caller. Preconditions are
// checked in order, each with its own terminal failure; no write happens
// before the model round trip, and the three writes (analysis insert,
// dream link, counter increment) happen in one transaction or not at
// all.
func (s *AnalysisService) AnalyzeDream(ctx context.Context, callerUID, dreamID, uid string) (*AnalyzeResult, error) {
	if callerUID == "" {
		return nil, apperr.New(apperr.Unauthenticated, "user must be authenticated")
	}
	if dreamID == "" || uid == "" {
		return nil, apperr.New(apperr.InvalidArgument, "dreamId and uid are required")
	}
	if callerUID != uid {
		return nil, apperr.New(apperr.PermissionDenied, "user can only analyze their own dreams")
	}

	oid, err := primitive.ObjectIDFromHex(dreamID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "dream not found")
	}

	dream, err := s.dreams.FindByID(ctx, uid, oid)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load dream", err)
	}
	if dream == nil {
		return nil, apperr.New(apperr.NotFound, "dream not found")
	}
	if dream.AnalysisID != nil {
		return nil, apperr.New(apperr.AlreadyExists, "dream already has analysis")
	}

	prompt := analyzer.BuildPrompt(dream)

	var (
		raw          string
		insights     *models.Insights
		modelVersion string
	)
	if s.invoker == nil {
		// Offline engine: deterministic generator only.
		insights = analyzer.GenerateFallback(dream.Title, dream.Body)
		modelVersion = models.ModelVersionFallback
	} else {
		if s.quota != nil {
			ok, err := s.quota.WaitAndReserve(ctx)
			if err != nil {
				return nil, apperr.Wrap(apperr.Internal, "quota wait interrupted", err)
			}
			if !ok {
				return nil, apperr.New(apperr.ResourceExhausted, "daily analysis quota exhausted")
			}
		}

		var model string
		raw, model, err = s.invoker.Invoke(ctx, prompt)
		if err != nil {
			// Already classified (ServiceNotConfigured, ModelUnavailable).
			return nil, err
		}

		insights, err = analyzer.ParseInsights(raw)
		if err != nil {
			// The dream was already validated; a best-effort
			// interpretation beats failing the whole request.
			logger.Log.Warnf("unparseable model response for dream %s, using fallback: %v", dreamID, err)
			insights = analyzer.GenerateFallback(dream.Title, dream.Body)
			modelVersion = models.ModelVersionFallback
		} else {
			modelVersion = model
		}
	}

	analysis := &models.Analysis{
		ID:               primitive.NewObjectID(),
		UID:              uid,
		DreamID:          dream.ID,
		PromptSent:       prompt,
		RawModelResponse: raw,
		Insights:         *insights,
		CreatedAt:        time.Now(),
		ModelVersion:     modelVersion,
	}

	err = s.txn.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.analyses.Insert(txCtx, analysis); err != nil {
			return apperr.Wrap(apperr.Internal, "failed to persist analysis", err)
		}
		linked, err := s.dreams.LinkAnalysis(txCtx, uid, dream.ID, analysis.ID)
		if err != nil {
			return apperr.Wrap(apperr.Internal, "failed to link analysis", err)
		}
		if !linked {
			// A concurrent request won the conditional write; abort so
			// this run leaves nothing behind.
			return apperr.New(apperr.AlreadyExists, "dream already has analysis")
		}
		if err := s.users.IncStats(txCtx, uid, 0, 1); err != nil {
			return apperr.Wrap(apperr.Internal, "failed to update stats", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeAnalysisCompleted, events.AnalysisCompleted{
		UID:          uid,
		DreamID:      dream.ID.Hex(),
		AnalysisID:   analysis.ID.Hex(),
		ModelVersion: modelVersion,
		OccurredAt:   time.Now(),
	})

	return &AnalyzeResult{
		AnalysisID: analysis.ID.Hex(),
		Insights:   analysis.Insights,
		ModelUsed:  modelVersion,
	}, nil
}

// GetAnalysis returns one analysis owned by the caller.
func (s *AnalysisService) GetAnalysis(ctx context.Context, uid, analysisID string) (*models.Analysis, error) {
	oid, err := primitive.ObjectIDFromHex(analysisID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "analysis not found")
	}
	a, err := s.analyses.FindByID(ctx, uid, oid)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load analysis", err)
	}
	if a == nil {
		return nil, apperr.New(apperr.NotFound, "analysis not found")
	}
	return a, nil
}

// publish sends an advisory event; failures are logged, never surfaced.
func (s *AnalysisService) publish(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	ev, err := eventbus.NewEvent(eventType, payload)
	if err != nil {
		logger.Log.Errorf("failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish(ctx, s.analysesTopic, ev); err != nil {
		logger.Log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}
