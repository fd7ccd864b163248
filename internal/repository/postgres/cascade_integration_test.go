//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"eventmanager/internal/domain"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(
		ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("eventmanager"),
		tcpostgres.WithUsername("eventmanager"),
		tcpostgres.WithPassword("eventmanager"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, MigrateUp(dbURL))

	db, err := Open(ctx, dbURL, PoolConfig{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestIntegration_EventDeleteCascades(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	events := NewEventRepository(db)
	participants := NewParticipantRepository(db)
	speakers := NewSpeakerRepository(db)
	vendors := NewVendorRepository(db)
	feedback := NewFeedbackRepository(db)

	ev, err := domain.NewEvent("Conf", "01-01-2026", 1000)
	require.NoError(t, err)
	require.NoError(t, events.Add(ctx, ev))
	require.NotZero(t, ev.ID)

	p, _ := domain.NewParticipant(ev.ID, "Alice")
	require.NoError(t, participants.Add(ctx, p))
	s, _ := domain.NewSpeaker(ev.ID, "Bob", "keynote")
	require.NoError(t, speakers.Add(ctx, s))
	v, _ := domain.NewVendor(ev.ID, "Catering", "lunch")
	require.NoError(t, vendors.Add(ctx, v))
	f, _ := domain.NewFeedback(ev.ID, "Great")
	require.NoError(t, feedback.Add(ctx, f))

	loaded, err := events.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 1)
	assert.Len(t, loaded.Speakers, 1)
	assert.Len(t, loaded.Vendors, 1)
	assert.Len(t, loaded.Feedbacks, 1)

	require.NoError(t, events.Remove(ctx, ev))

	_, err = participants.GetByID(ctx, p.ID)
	assert.True(t, domain.IsNotFound(err))
	_, err = speakers.GetByID(ctx, s.ID)
	assert.True(t, domain.IsNotFound(err))
	_, err = vendors.GetByID(ctx, v.ID)
	assert.True(t, domain.IsNotFound(err))
	_, err = feedback.GetByID(ctx, f.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestIntegration_DependentRequiresEvent(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	p, err := domain.NewParticipant(12345, "Ghost")
	require.NoError(t, err)
	err = NewParticipantRepository(db).Add(ctx, p)
	assert.True(t, domain.IsNotFound(err))

	all, err := NewParticipantRepository(db).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestIntegration_BudgetCheckConstraint(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO events (name, date, budget) VALUES ('x', '01-01-2026', -1)`)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(mapPQError(err)))
}
