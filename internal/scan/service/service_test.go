package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	clientrepository "github.com/atriumhq/atrium/internal/client/repository"
	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/events"
	"github.com/atriumhq/atrium/internal/identity"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	invoicerepository "github.com/atriumhq/atrium/internal/invoice/repository"
	"github.com/atriumhq/atrium/internal/scan/domain"
)

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	return f.text, f.err
}

type testEnv struct {
	svc domain.Service
	db  *gorm.DB
	bus *events.Bus
}

func newTestEnv(t *testing.T, rec *fakeRecognizer) testEnv {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&invoicedomain.Invoice{}, &clientdomain.Client{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	bus := events.NewBus(zap.NewNop())

	svc := New(Params{
		Cfg:        config.Config{ScanPendingMax: 8},
		Log:        zap.NewNop(),
		DB:         conn,
		GenID:      node,
		Bus:        bus,
		Recognizer: rec,
		Invoices:   invoicerepository.Provide(),
		Clients:    clientrepository.Provide(),
	})
	return testEnv{svc: svc, db: conn, bus: bus}
}

const invoiceText = "Invoice Number: INV-4821\nBuyer Name: Acme Co\nAmount Due: $1,204.50\nDate: March 3, 2024"

func TestProcessReturnsReview(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})

	review, err := env.svc.Process(context.Background(), []byte("image"))
	require.NoError(t, err)

	assert.NotEmpty(t, review.ScanID)
	assert.Equal(t, "Acme Co", review.BuyerName)
	assert.Equal(t, "INV-4821", review.InvoiceNumber)
	assert.Equal(t, "$1,204.50", review.Amount)
	assert.Equal(t, "March 3, 2024", review.Date)
	assert.Equal(t, invoiceText, review.RawText)

	var count int64
	require.NoError(t, env.db.Model(&invoicedomain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count, "processing must not persist anything")
}

func TestProcessUnmatchedTextUsesSentinels(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: "nothing invoice shaped in this text at all"})

	review, err := env.svc.Process(context.Background(), []byte("image"))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", review.BuyerName)
	assert.Equal(t, "Unknown", review.InvoiceNumber)
	assert.Equal(t, "Unknown", review.Amount)
	assert.Equal(t, "Unknown", review.Date)
	assert.Empty(t, review.Company)
	assert.Empty(t, review.Email)
}

func TestProcessEmptyUpload(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})

	_, err := env.svc.Process(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyUpload)
}

func TestProcessRecognitionFailure(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{err: errors.New("engine crashed")})

	_, err := env.svc.Process(context.Background(), []byte("image"))
	assert.ErrorIs(t, err, domain.ErrRecognitionFailed)
}

func TestProcessShortTextRejected(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: "  abc  "})

	_, err := env.svc.Process(context.Background(), []byte("image"))
	assert.ErrorIs(t, err, domain.ErrNoMeaningfulText)
}

func TestConfirmMaterializesInvoiceAndClient(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})
	ctx := context.Background()
	actor := identity.Authenticated(snowflake.ID(42))

	var invoicesChanged, clientsChanged int
	env.bus.Subscribe(events.TopicInvoicesChanged, func(events.Event) { invoicesChanged++ })
	env.bus.Subscribe(events.TopicClientsChanged, func(events.Event) { clientsChanged++ })

	review, err := env.svc.Process(ctx, []byte("image"))
	require.NoError(t, err)

	result, err := env.svc.Confirm(ctx, actor, review.ScanID)
	require.NoError(t, err)

	assert.Equal(t, "Acme Co", result.Invoice.BuyerName)
	assert.Equal(t, snowflake.ID(42), result.Invoice.UserID)
	assert.Equal(t, invoiceText, result.Invoice.RawText)

	require.NotNil(t, result.Client)
	assert.Equal(t, "Acme Co", result.Client.Name)
	assert.Equal(t, "Acme Co Inc.", result.Client.Company)
	assert.Equal(t, "contact@acmeco.com", result.Client.Email)
	assert.Equal(t, "000-000-0000", result.Client.Phone)
	assert.Equal(t, "Unknown Address", result.Client.Address)
	require.NotNil(t, result.Client.LastInvoice)

	assert.Equal(t, 1, invoicesChanged)
	assert.Equal(t, 1, clientsChanged)

	var invoiceCount, clientCount int64
	require.NoError(t, env.db.Model(&invoicedomain.Invoice{}).Count(&invoiceCount).Error)
	require.NoError(t, env.db.Model(&clientdomain.Client{}).Count(&clientCount).Error)
	assert.EqualValues(t, 1, invoiceCount)
	assert.EqualValues(t, 1, clientCount)
}

func TestConfirmConsumesScan(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})
	ctx := context.Background()
	actor := identity.Authenticated(snowflake.ID(42))

	review, err := env.svc.Process(ctx, []byte("image"))
	require.NoError(t, err)

	_, err = env.svc.Confirm(ctx, actor, review.ScanID)
	require.NoError(t, err)

	_, err = env.svc.Confirm(ctx, actor, review.ScanID)
	assert.ErrorIs(t, err, domain.ErrScanNotFound)

	var count int64
	require.NoError(t, env.db.Model(&invoicedomain.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a scan confirms at most once")
}

func TestConfirmReusesExistingClient(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})
	ctx := context.Background()
	actor := identity.Authenticated(snowflake.ID(42))

	before := time.Now().Add(-time.Hour).UTC()
	existing := clientdomain.Client{
		ID:          snowflake.ID(7),
		Name:        "ACME CO",
		Company:     "Acme Holdings",
		LastInvoice: &before,
		CreatedAt:   before,
		UpdatedAt:   before,
	}
	require.NoError(t, env.db.Create(&existing).Error)

	review, err := env.svc.Process(ctx, []byte("image"))
	require.NoError(t, err)

	result, err := env.svc.Confirm(ctx, actor, review.ScanID)
	require.NoError(t, err)
	assert.Nil(t, result.Client, "matching name must not provision a new client")

	var count int64
	require.NoError(t, env.db.Model(&clientdomain.Client{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var reloaded clientdomain.Client
	require.NoError(t, env.db.First(&reloaded, "id = ?", existing.ID).Error)
	require.NotNil(t, reloaded.LastInvoice)
	assert.True(t, reloaded.LastInvoice.After(before))
	assert.Equal(t, "Acme Holdings", reloaded.Company, "existing client details stay untouched")
}

func TestConfirmUnknownBuyerSkipsClient(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: "just a receipt with total $45.00 and nothing else"})
	ctx := context.Background()
	actor := identity.Authenticated(snowflake.ID(42))

	review, err := env.svc.Process(ctx, []byte("image"))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", review.BuyerName)

	result, err := env.svc.Confirm(ctx, actor, review.ScanID)
	require.NoError(t, err)
	assert.Nil(t, result.Client)
	assert.Equal(t, "Unknown", result.Invoice.BuyerName)

	var count int64
	require.NoError(t, env.db.Model(&clientdomain.Client{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConfirmRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})
	ctx := context.Background()

	review, err := env.svc.Process(ctx, []byte("image"))
	require.NoError(t, err)

	_, err = env.svc.Confirm(ctx, identity.Anonymous(), review.ScanID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestConfirmUnknownScanID(t *testing.T) {
	env := newTestEnv(t, &fakeRecognizer{text: invoiceText})

	_, err := env.svc.Confirm(context.Background(), identity.Authenticated(snowflake.ID(42)), "no-such-scan")
	assert.ErrorIs(t, err, domain.ErrScanNotFound)
}
