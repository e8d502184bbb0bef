package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/database"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the production schema.
// _txlock=immediate serializes writers so the concurrency tests exercise the
// constraints instead of sqlite lock upgrades.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "solosuite.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// seedUser creates a profile row and the matching session.
func seedUser(t *testing.T, db *gorm.DB, role string) *auth.Session {
	t.Helper()
	id := uuid.New()
	email := id.String()[:8] + "@example.com"
	p := models.Profile{ID: id, Email: email, FullName: "User " + id.String()[:8], Role: role}
	require.NoError(t, db.Create(&p).Error)
	return &auth.Session{UserID: id, Email: email}
}

func seedJob(t *testing.T, db *gorm.DB, client *auth.Session) *models.Job {
	t.Helper()
	jobs := NewJobService(db, nil)
	job, err := jobs.Create(client, &dtos.JobCreationRequest{
		Title:       "Build a landing page",
		Description: "Responsive landing page with a contact form",
		Category:    "web",
	})
	require.NoError(t, err)
	return job
}

func proposal() string {
	return "I have shipped several similar projects and can start immediately with a clear plan."
}

type sentMail struct {
	Template string
	Params   MailParams
}

// recordingMailer captures sends for assertions; fail makes every send
// error so best-effort handling can be checked.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *recordingMailer) record(template string, p MailParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("mail provider down")
	}
	m.sent = append(m.sent, sentMail{Template: template, Params: p})
	return nil
}

func (m *recordingMailer) JobPosted(p MailParams) error            { return m.record("job_posted", p) }
func (m *recordingMailer) ApplicationSubmitted(p MailParams) error { return m.record("application_submitted", p) }
func (m *recordingMailer) ApplicationAccepted(p MailParams) error  { return m.record("application_accepted", p) }

func (m *recordingMailer) templates() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, s := range m.sent {
		out[i] = s.Template
	}
	return out
}
