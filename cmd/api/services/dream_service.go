package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/apperr"
	"lunarly/internal/logger"
	"lunarly/eventbus"
	"lunarly/events"
	"lunarly/models"
	"lunarly/repositories"
)

// DreamService implements dream CRUD plus the per-user counter updates.
// Counter increments are best-effort and server-side atomic; the
// reconciler worker heals any skew from authoritative counts.
type DreamService struct {
	dreams DreamStore
	users  UserStore

	publisher   eventbus.Publisher
	dreamsTopic string
}

func NewDreamService(dreams DreamStore, users UserStore, publisher eventbus.Publisher, dreamsTopic string) *DreamService {
	return &DreamService{dreams: dreams, users: users, publisher: publisher, dreamsTopic: dreamsTopic}
}

type CreateDreamInput struct {
	Title string
	Body  string
	Date  time.Time
}

func (s *DreamService) Create(ctx context.Context, uid string, in CreateDreamInput) (*models.Dream, error) {
	if in.Body == "" && in.Title == "" {
		return nil, apperr.New(apperr.InvalidArgument, "a dream needs a title or a body")
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	d := &models.Dream{
		UID:   uid,
		Title: in.Title,
		Body:  in.Body,
		Date:  in.Date,
	}
	id, err := s.dreams.Insert(ctx, d)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create dream", err)
	}

	if err := s.users.IncStats(ctx, uid, 1, 0); err != nil {
		logger.Log.Errorf("failed to increment totalDreams for %s: %v", uid, err)
	}

	s.publish(ctx, events.TypeDreamCreated, events.DreamCreated{
		UID:        uid,
		DreamID:    id.Hex(),
		OccurredAt: time.Now(),
	})

	return d, nil
}

func (s *DreamService) Get(ctx context.Context, uid, dreamID string) (*models.Dream, error) {
	oid, err := primitive.ObjectIDFromHex(dreamID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "dream not found")
	}
	d, err := s.dreams.FindByID(ctx, uid, oid)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load dream", err)
	}
	if d == nil {
		return nil, apperr.New(apperr.NotFound, "dream not found")
	}
	return d, nil
}

// List returns the caller's dreams, newest date first. When day is
// non-zero only dreams on that calendar day are returned.
func (s *DreamService) List(ctx context.Context, uid string, day time.Time) ([]models.Dream, error) {
	var (
		dreams []models.Dream
		err    error
	)
	if day.IsZero() {
		dreams, err = s.dreams.FindByUser(ctx, uid)
	} else {
		dreams, err = s.dreams.FindByUserAndDay(ctx, uid, day)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list dreams", err)
	}
	return dreams, nil
}

type UpdateDreamInput struct {
	Title *string
	Body  *string
	Date  *time.Time
}

func (s *DreamService) Update(ctx context.Context, uid, dreamID string, in UpdateDreamInput) error {
	oid, err := primitive.ObjectIDFromHex(dreamID)
	if err != nil {
		return apperr.New(apperr.NotFound, "dream not found")
	}
	if in.Title == nil && in.Body == nil && in.Date == nil {
		return apperr.New(apperr.InvalidArgument, "nothing to update")
	}

	matched, err := s.dreams.Update(ctx, uid, oid, repositories.DreamUpdate{
		Title: in.Title,
		Body:  in.Body,
		Date:  in.Date,
	})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to update dream", err)
	}
	if !matched {
		return apperr.New(apperr.NotFound, "dream not found")
	}
	return nil
}

func (s *DreamService) Delete(ctx context.Context, uid, dreamID string) error {
	oid, err := primitive.ObjectIDFromHex(dreamID)
	if err != nil {
		return apperr.New(apperr.NotFound, "dream not found")
	}

	deleted, err := s.dreams.Delete(ctx, uid, oid)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete dream", err)
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "dream not found")
	}

	if err := s.users.IncStats(ctx, uid, -1, 0); err != nil {
		logger.Log.Errorf("failed to decrement totalDreams for %s: %v", uid, err)
	}

	s.publish(ctx, events.TypeDreamDeleted, events.DreamDeleted{
		UID:        uid,
		DreamID:    dreamID,
		OccurredAt: time.Now(),
	})

	return nil
}

func (s *DreamService) publish(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	ev, err := eventbus.NewEvent(eventType, payload)
	if err != nil {
		logger.Log.Errorf("failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish(ctx, s.dreamsTopic, ev); err != nil {
		logger.Log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}
