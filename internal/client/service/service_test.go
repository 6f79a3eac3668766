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

	"github.com/atriumhq/atrium/internal/client/domain"
	"github.com/atriumhq/atrium/internal/client/repository"
	"github.com/atriumhq/atrium/internal/events"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Client{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Bus:   events.NewBus(zap.NewNop()),
	})
}

func TestCreateAndFindByNameFold(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateClientRequest{
		Name:    "Acme Co",
		Company: "Acme Co Inc.",
	})
	require.NoError(t, err)

	found, err := svc.FindByName(ctx, "ACME CO")
	require.NoError(t, err)
	require.NotNil(t, found, "name lookup is case-insensitive")
	assert.Equal(t, created.ID, found.ID)

	missing, err := svc.FindByName(ctx, "Globex")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateClientRequest{Name: "Acme Co"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateClientRequest{Name: "acme co"})
	assert.ErrorIs(t, err, domain.ErrNameTaken)
}

func TestCreateRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateClientRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}
