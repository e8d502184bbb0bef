package services

import (
	"testing"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	svc := NewJobService(db, nil)

	job, err := svc.Create(client, &dtos.JobCreationRequest{
		Title:       "Design a logo",
		Description: "Logo for a student startup",
		Category:    "design",
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, models.BudgetTypeFixed, job.BudgetType)
	assert.Equal(t, 0, job.ViewsCount)
	assert.Equal(t, 0, job.ApplicationsCount)
	assert.Equal(t, client.UserID, job.ClientID)
}

func TestJobGetCountsViews(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	svc := NewJobService(db, nil)
	job := seedJob(t, db, client)

	got, err := svc.Get(job.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)

	got, err = svc.Get(job.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)
	assert.Equal(t, client.Email, got.Client.Email)
}

func TestJobUpdateOwnershipAndStaleness(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	stranger := seedUser(t, db, models.RoleClient)
	svc := NewJobService(db, nil)
	job := seedJob(t, db, client)

	newTitle := "Build a landing page v2"

	// A non-owner sees not-found, not forbidden.
	_, err := svc.Update(stranger, job.ID, &dtos.JobUpdateRequest{UpdatedAt: job.UpdatedAt, Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(client, job.ID, &dtos.JobUpdateRequest{UpdatedAt: job.UpdatedAt, Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	// The first token is now stale.
	other := "Another title"
	_, err = svc.Update(client, job.ID, &dtos.JobUpdateRequest{UpdatedAt: job.UpdatedAt, Title: &other})
	assert.ErrorIs(t, err, ErrStaleWrite)

	var check models.Job
	require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
	assert.Equal(t, newTitle, check.Title)
}

func TestJobStatusMonotonicity(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"open to in_progress", models.JobStatusOpen, models.JobStatusInProgress, true},
		{"open to completed", models.JobStatusOpen, models.JobStatusCompleted, true},
		{"open to cancelled", models.JobStatusOpen, models.JobStatusCancelled, true},
		{"in_progress to completed", models.JobStatusInProgress, models.JobStatusCompleted, true},
		{"in_progress to cancelled", models.JobStatusInProgress, models.JobStatusCancelled, true},
		{"completed to open", models.JobStatusCompleted, models.JobStatusOpen, false},
		{"completed to in_progress", models.JobStatusCompleted, models.JobStatusInProgress, false},
		{"cancelled to open", models.JobStatusCancelled, models.JobStatusOpen, false},
		{"cancelled to in_progress", models.JobStatusCancelled, models.JobStatusInProgress, false},
		{"in_progress to open", models.JobStatusInProgress, models.JobStatusOpen, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			client := seedUser(t, db, models.RoleClient)
			svc := NewJobService(db, nil)
			job := seedJob(t, db, client)
			require.NoError(t, db.Model(job).Update("status", tc.from).Error)

			_, err := svc.UpdateStatus(client, job.ID, tc.to)
			if tc.ok {
				require.NoError(t, err)
				var check models.Job
				require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
				assert.Equal(t, tc.to, check.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				var check models.Job
				require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
				assert.Equal(t, tc.from, check.Status)
			}
		})
	}
}

func TestJobDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	provider := seedUser(t, db, models.RoleProvider)
	jobs := NewJobService(db, nil)
	apps := NewApplicationService(db, nil, nil)
	bookmarks := NewBookmarkService(db)
	job := seedJob(t, db, client)

	_, err := apps.Apply(provider, job.ID, &dtos.ApplicationCreateRequest{Proposal: proposal()})
	require.NoError(t, err)
	_, err = bookmarks.Add(provider, job.ID)
	require.NoError(t, err)

	require.NoError(t, jobs.Delete(client, job.ID))

	_, err = jobs.Get(job.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	var appCount, bookmarkCount int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("job_id = ?", job.ID).Count(&appCount).Error)
	require.NoError(t, db.Model(&models.Bookmark{}).Where("job_id = ?", job.ID).Count(&bookmarkCount).Error)
	assert.Zero(t, appCount)
	assert.Zero(t, bookmarkCount)
}

func TestJobListFilters(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	svc := NewJobService(db, nil)

	_, err := svc.Create(client, &dtos.JobCreationRequest{
		Title: "React dashboard", Description: "Admin dashboard", Category: "web",
	})
	require.NoError(t, err)
	job2, err := svc.Create(client, &dtos.JobCreationRequest{
		Title: "Poster design", Description: "Event poster", Category: "design",
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(client, job2.ID, models.JobStatusCancelled)
	require.NoError(t, err)

	open, err := svc.List(client, &dtos.JobListQuery{Status: models.JobStatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "React dashboard", open[0].Title)

	design, err := svc.List(client, &dtos.JobListQuery{Category: "design"})
	require.NoError(t, err)
	require.Len(t, design, 1)

	search, err := svc.List(client, &dtos.JobListQuery{Search: "dashBOARD"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "React dashboard", search[0].Title)
}

func TestJobCreateSendsConfirmation(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	mailer := &recordingMailer{}
	svc := NewJobService(db, mailer)

	_, err := svc.Create(client, &dtos.JobCreationRequest{
		Title: "Write docs", Description: "API documentation pass", Category: "writing",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"job_posted"}, mailer.templates())
}

func TestJobCreateSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, models.RoleClient)
	svc := NewJobService(db, &recordingMailer{fail: true})

	job, err := svc.Create(client, &dtos.JobCreationRequest{
		Title: "Write docs", Description: "API documentation pass", Category: "writing",
	})
	require.NoError(t, err)

	var check models.Job
	require.NoError(t, db.First(&check, "id = ?", job.ID).Error)
}
