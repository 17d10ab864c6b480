package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/cmd/api/services"
	"lunarly/models"
)

func TestExportDreamsEmptyIsArrayNotNull(t *testing.T) {
	st := newMemState()
	svc := services.NewExportService(&fakeDreamStore{st: st})

	out, err := svc.ExportDreams(context.Background(), "alice")
	require.NoError(t, err)
	// Must serialize as [] rather than null.
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestExportDreamsOnlyOwnEntries(t *testing.T) {
	st := newMemState()
	svc := services.NewExportService(&fakeDreamStore{st: st})

	st.putDream(models.Dream{ID: primitive.NewObjectID(), UID: "alice", Title: "mine", Body: "b", Date: time.Now()})
	st.putDream(models.Dream{ID: primitive.NewObjectID(), UID: "bob", Title: "theirs", Body: "b", Date: time.Now()})

	out, err := svc.ExportDreams(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "mine", out[0].Title)
}

func TestStatsServiceZeroForUnknownUser(t *testing.T) {
	st := newMemState()
	svc := services.NewStatsService(&fakeUserStore{st: st})

	stats, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{}, stats)
}
