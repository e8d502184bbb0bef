package services

import (
	"testing"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func finishEngagement(t *testing.T, db *gorm.DB, client, provider *auth.Session) *models.Job {
	t.Helper()
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)
	app := acceptedApplication(t, db, client, provider, job)
	_, err := apps.MarkDone(provider, app.ID)
	require.NoError(t, err)
	_, err = finalizer.Finish(client, job.ID)
	require.NoError(t, err)
	return job
}

func TestReviewRequiresWorkedWith(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	reviews := NewReviewService(db)
	job := seedJob(t, db, client)

	// Job exists but was never finished: no WorkedWith row, no review.
	_, err := reviews.Submit(client, provider.UserID, job.ID, 5, "Trying early")
	assert.ErrorIs(t, err, ErrNotWorkedWith)

	// Even an accepted, done application isn't enough before Finish runs.
	apps := NewApplicationService(db, nil, nil)
	app := acceptedApplication(t, db, client, provider, job)
	_, err = apps.MarkDone(provider, app.ID)
	require.NoError(t, err)

	_, err = reviews.Submit(client, provider.UserID, job.ID, 5, "Still early")
	assert.ErrorIs(t, err, ErrNotWorkedWith)
}

func TestReviewOncePerEngagement(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	reviews := NewReviewService(db)
	job := finishEngagement(t, db, client, provider)

	_, err := reviews.Submit(client, provider.UserID, job.ID, 4, "Solid delivery")
	require.NoError(t, err)

	_, err = reviews.Submit(client, provider.UserID, job.ID, 2, "Changed my mind")
	assert.ErrorIs(t, err, ErrReviewExists)

	// A second finished job with the same pair gets its own review slot.
	job2 := finishEngagement(t, db, client, provider)
	_, err = reviews.Submit(client, provider.UserID, job2.ID, 5, "Even better this time")
	assert.NoError(t, err)
}

func TestReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	reviews := NewReviewService(db)
	job := finishEngagement(t, db, client, provider)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := reviews.Submit(client, provider.UserID, job.ID, rating, "out of range")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewSummary(t *testing.T) {
	db := newTestDB(t)
	provider := seedUser(t, db, models.RoleProvider)
	reviews := NewReviewService(db)

	// Fresh provider: zero average, zero count, no error.
	summary, err := reviews.Summary(provider.UserID)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.Average)

	for _, rating := range []int{5, 4, 3} {
		client := seedUser(t, db, models.RoleClient)
		job := finishEngagement(t, db, client, provider)
		_, err := reviews.Submit(client, provider.UserID, job.ID, rating, "rated")
		require.NoError(t, err)
	}

	summary, err = reviews.Summary(provider.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)

	listed, err := reviews.ListForProvider(provider.UserID)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}
