package services

import (
	"testing"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func acceptedApplication(t *testing.T, db *gorm.DB, client, provider *auth.Session, job *models.Job) *models.JobApplication {
	t.Helper()
	apps := NewApplicationService(db, nil, nil)
	app, err := apps.Apply(provider, job.ID, &dtos.ApplicationCreateRequest{Proposal: proposal()})
	require.NoError(t, err)
	app, err = apps.Decide(client, app.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	return app
}

func workedWithCount(t *testing.T, db *gorm.DB, job *models.Job) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.WorkedWith{}).Where("job_id = ?", job.ID).Count(&count).Error)
	return count
}

func TestFinishRequiresAcceptedApplications(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	// No applications at all.
	_, err := finalizer.Finish(client, job.ID)
	assert.ErrorIs(t, err, ErrNoAcceptedApplications)

	// A rejected application alone doesn't enable finishing.
	app, err := apps.Apply(provider, job.ID, &dtos.ApplicationCreateRequest{Proposal: proposal()})
	require.NoError(t, err)
	_, err = apps.Decide(client, app.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	_, err = finalizer.Finish(client, job.ID)
	assert.ErrorIs(t, err, ErrNoAcceptedApplications)

	can, err := finalizer.CanFinish(client, job.ID)
	require.NoError(t, err)
	assert.False(t, can)

	var check models.Job
	require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusOpen, check.Status)
	assert.Zero(t, workedWithCount(t, db, job))
}

func TestFinishInertUntilAllProvidersDone(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	p1 := seedUser(t, db, models.RoleProvider)
	p2 := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	a1 := acceptedApplication(t, db, client, p1, job)
	acceptedApplication(t, db, client, p2, job)

	_, err := apps.MarkDone(p1, a1.ID)
	require.NoError(t, err)

	// One of two accepted providers hasn't marked done: fully inert.
	_, err = finalizer.Finish(client, job.ID)
	assert.ErrorIs(t, err, ErrProvidersNotDone)

	var check models.Job
	require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusOpen, check.Status)
	assert.Zero(t, workedWithCount(t, db, job))

	can, err := finalizer.CanFinish(client, job.ID)
	require.NoError(t, err)
	assert.False(t, can)
}

func TestFinishIdempotent(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	p1 := seedUser(t, db, models.RoleProvider)
	p2 := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	a1 := acceptedApplication(t, db, client, p1, job)
	a2 := acceptedApplication(t, db, client, p2, job)
	_, err := apps.MarkDone(p1, a1.ID)
	require.NoError(t, err)
	_, err = apps.MarkDone(p2, a2.ID)
	require.NoError(t, err)

	can, err := finalizer.CanFinish(client, job.ID)
	require.NoError(t, err)
	assert.True(t, can)

	finished, err := finalizer.Finish(client, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, finished.Status)
	assert.EqualValues(t, 2, workedWithCount(t, db, job))

	// Re-running is the retry path: still succeeds, still exactly one row
	// per accepted provider.
	_, err = finalizer.Finish(client, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, workedWithCount(t, db, job))
}

func TestFinishCancelledJobRejected(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	jobs := NewJobService(db, nil)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	a := acceptedApplication(t, db, client, provider, job)
	_, err := apps.MarkDone(provider, a.ID)
	require.NoError(t, err)

	_, err = jobs.UpdateStatus(client, job.ID, models.JobStatusCancelled)
	require.NoError(t, err)

	_, err = finalizer.Finish(client, job.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFinishOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	a := acceptedApplication(t, db, client, provider, job)
	_, err := apps.MarkDone(provider, a.ID)
	require.NoError(t, err)

	_, err = finalizer.Finish(provider, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReconcileRepairsPartialCompletion(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	p1 := seedUser(t, db, models.RoleProvider)
	p2 := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	job := seedJob(t, db, client)

	a1 := acceptedApplication(t, db, client, p1, job)
	a2 := acceptedApplication(t, db, client, p2, job)
	_, err := apps.MarkDone(p1, a1.ID)
	require.NoError(t, err)
	_, err = apps.MarkDone(p2, a2.ID)
	require.NoError(t, err)

	// Simulate the legacy non-transactional flow crashing mid-loop: job
	// completed, only one WorkedWith row written.
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", job.ID).
		Update("status", models.JobStatusCompleted).Error)
	require.NoError(t, db.Create(&models.WorkedWith{
		ClientID: client.UserID, ProviderID: p1.UserID, JobID: job.ID,
	}).Error)

	repaired, err := finalizer.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
	assert.EqualValues(t, 2, workedWithCount(t, db, job))

	// A second pass finds nothing to do.
	repaired, err = finalizer.Reconcile()
	require.NoError(t, err)
	assert.Zero(t, repaired)
}

// The full happy path: post, apply, accept, mark done, finish, review.
func TestEngagementLifecycleEndToEnd(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	p1 := seedUser(t, db, models.RoleProvider)
	p2 := seedUser(t, db, models.RoleProvider)
	apps := NewApplicationService(db, nil, nil)
	finalizer := NewFinalizerService(db)
	reviews := NewReviewService(db)
	job := seedJob(t, db, client)

	a1, err := apps.Apply(p1, job.ID, &dtos.ApplicationCreateRequest{Proposal: proposal()})
	require.NoError(t, err)
	a2, err := apps.Apply(p2, job.ID, &dtos.ApplicationCreateRequest{Proposal: proposal()})
	require.NoError(t, err)

	// P2's rejection must not block the engagement.
	_, err = apps.Decide(client, a1.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	_, err = apps.Decide(client, a2.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	_, err = apps.MarkDone(p1, a1.ID)
	require.NoError(t, err)

	finished, err := finalizer.Finish(client, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, finished.Status)

	var rels []models.WorkedWith
	require.NoError(t, db.Where("job_id = ?", job.ID).Find(&rels).Error)
	require.Len(t, rels, 1)
	assert.Equal(t, p1.UserID, rels[0].ProviderID)
	assert.Equal(t, client.UserID, rels[0].ClientID)

	review, err := reviews.Submit(client, p1.UserID, job.ID, 5, "Great work")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = reviews.Submit(client, p1.UserID, job.ID, 4, "Second attempt")
	assert.ErrorIs(t, err, ErrReviewExists)

	var reviewCount int64
	require.NoError(t, db.Model(&models.Review{}).
		Where("client_id = ? AND provider_id = ? AND job_id = ?", client.UserID, p1.UserID, job.ID).
		Count(&reviewCount).Error)
	assert.EqualValues(t, 1, reviewCount)
}
