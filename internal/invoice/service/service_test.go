package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/events"
	"github.com/atriumhq/atrium/internal/identity"
	"github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/internal/invoice/repository"
)

// countingRepository records how often summary queries reach storage.
type countingRepository struct {
	domain.Repository
	countCalls int
}

func (r *countingRepository) Count(ctx context.Context, db *gorm.DB, userID snowflake.ID) (int64, error) {
	r.countCalls++
	return r.Repository.Count(ctx, db, userID)
}

type testEnv struct {
	svc   domain.Service
	repo  *countingRepository
	bus   *events.Bus
	actor identity.Identity
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Invoice{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := &countingRepository{Repository: repository.Provide()}
	bus := events.NewBus(zap.NewNop())

	return &testEnv{
		svc: New(Params{
			DB:    conn,
			Log:   zap.NewNop(),
			GenID: node,
			Repo:  repo,
			Bus:   bus,
		}),
		repo:  repo,
		bus:   bus,
		actor: identity.Authenticated(node.Generate()),
	}
}

func TestSummarizeCachesUntilInvoicesChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, env.actor, domain.CreateInvoiceRequest{
		InvoiceNumber: "INV-1",
		Amount:        "$100.00",
	})
	require.NoError(t, err)

	first, err := env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.InvoiceCount)

	again, err := env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, env.repo.countCalls, "second summary served from cache")

	_, err = env.svc.Create(ctx, env.actor, domain.CreateInvoiceRequest{
		InvoiceNumber: "INV-2",
		Amount:        "$50.00",
	})
	require.NoError(t, err)

	updated, err := env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.InvoiceCount)
	assert.InDelta(t, 150, updated.TotalAmount, 0.001)
	assert.Equal(t, 2, env.repo.countCalls, "create invalidates the cache")
}

func TestSummarizeInvalidatedByBusPublish(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	_, err = env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	require.Equal(t, 1, env.repo.countCalls)

	// Writers outside this service, like invoice intake, announce commits
	// on the bus.
	env.bus.Publish(events.TopicInvoicesChanged)

	_, err = env.svc.Summarize(ctx, env.actor)
	require.NoError(t, err)
	assert.Equal(t, 2, env.repo.countCalls)
}

func TestSummarizeRequiresActor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Summarize(context.Background(), identity.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
