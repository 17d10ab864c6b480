package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/models"
	"lunarly/repositories"
)

// The services depend on small store interfaces instead of concrete
// repositories so the pipeline is testable without a live database. The
// Mongo repositories satisfy them directly.

type DreamStore interface {
	Insert(ctx context.Context, d *models.Dream) (primitive.ObjectID, error)
	FindByID(ctx context.Context, uid string, id primitive.ObjectID) (*models.Dream, error)
	FindByUser(ctx context.Context, uid string) ([]models.Dream, error)
	FindByUserAndDay(ctx context.Context, uid string, day time.Time) ([]models.Dream, error)
	Update(ctx context.Context, uid string, id primitive.ObjectID, upd repositories.DreamUpdate) (bool, error)
	Delete(ctx context.Context, uid string, id primitive.ObjectID) (bool, error)
	LinkAnalysis(ctx context.Context, uid string, dreamID, analysisID primitive.ObjectID) (bool, error)
}

type AnalysisStore interface {
	Insert(ctx context.Context, a *models.Analysis) (primitive.ObjectID, error)
	FindByID(ctx context.Context, uid string, id primitive.ObjectID) (*models.Analysis, error)
}

type UserStore interface {
	IncStats(ctx context.Context, uid string, totalDreams, analysesUsed int64) error
	Stats(ctx context.Context, uid string) (models.Stats, error)
}

// TxnRunner runs fn inside one atomic multi-document transaction; every
// store call made with the ctx passed to fn joins it.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ModelInvoker obtains a raw completion for a prompt, returning the
// reply text and the identifier of the model that produced it.
type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string) (text string, model string, err error)
}

// QuotaReserver gates analysis LLM calls.
type QuotaReserver interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}
