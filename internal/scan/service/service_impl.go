package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/events"
	"github.com/atriumhq/atrium/internal/identity"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/internal/scan/domain"
	"github.com/atriumhq/atrium/internal/scan/extract"
	"github.com/atriumhq/atrium/internal/scan/recognize"
	"github.com/atriumhq/atrium/pkg/db"
)

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	DB         *gorm.DB
	GenID      *snowflake.Node
	Bus        *events.Bus
	Recognizer recognize.Recognizer
	Invoices   invoicedomain.Repository
	Clients    clientdomain.Repository
}

type Service struct {
	log        *zap.Logger
	db         *gorm.DB
	genID      *snowflake.Node
	bus        *events.Bus
	recognizer recognize.Recognizer
	invoices   invoicedomain.Repository
	clients    clientdomain.Repository
	pending    *pendingStore
}

func New(p Params) domain.Service {
	return &Service{
		log:        p.Log.Named("scan.service"),
		db:         p.DB,
		genID:      p.GenID,
		bus:        p.Bus,
		recognizer: p.Recognizer,
		invoices:   p.Invoices,
		clients:    p.Clients,
		pending:    newPendingStore(p.Cfg.ScanPendingMax),
	}
}

func (s *Service) Process(ctx context.Context, image []byte) (domain.Review, error) {
	if len(image) == 0 {
		return domain.Review{}, domain.ErrEmptyUpload
	}

	text, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		s.log.Warn("recognition failed", zap.Error(err))
		return domain.Review{}, fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)
	}
	if len(strings.TrimSpace(text)) < domain.MinMeaningfulTextLen {
		return domain.Review{}, domain.ErrNoMeaningfulText
	}

	fields := extract.Extract(text)
	scanID := uuid.NewString()
	s.pending.Put(scanID, fields)

	s.log.Info("scan processed",
		zap.String("scan_id", scanID),
		zap.Int("text_len", len(text)),
	)
	return domain.NewReview(scanID, fields), nil
}

func (s *Service) Confirm(ctx context.Context, actor identity.Identity, scanID string) (domain.ConfirmResult, error) {
	userID, ok := actor.UserID()
	if !ok {
		return domain.ConfirmResult{}, domain.ErrUnauthenticated
	}

	scan, ok := s.pending.Get(scanID)
	if !ok {
		return domain.ConfirmResult{}, domain.ErrScanNotFound
	}

	result, err := s.materialize(ctx, userID, scan.Fields)
	if err != nil && db.IsDuplicateKeyErr(err) {
		// Lost the provisioning race; the client exists now, so a second
		// pass resolves it by name.
		result, err = s.materialize(ctx, userID, scan.Fields)
	}
	if err != nil {
		// The scan stays pending so the caller can retry the confirmation.
		s.log.Error("confirm failed",
			zap.String("scan_id", scanID),
			zap.Error(err),
		)
		return domain.ConfirmResult{}, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	s.pending.Delete(scanID)
	s.bus.Publish(events.TopicInvoicesChanged)
	if scan.Fields.BuyerName.Found {
		s.bus.Publish(events.TopicClientsChanged)
	}

	s.log.Info("scan confirmed",
		zap.String("scan_id", scanID),
		zap.String("invoice_id", result.Invoice.ID.String()),
		zap.Bool("client_created", result.Client != nil),
	)
	return result, nil
}

// materialize writes the invoice and the client effect in one transaction.
// A failure rolls back both, so a retried confirmation starts clean.
func (s *Service) materialize(ctx context.Context, userID snowflake.ID, fields extract.Fields) (domain.ConfirmResult, error) {
	now := time.Now().UTC()
	invoice := invoicedomain.Invoice{
		ID:              s.genID.Generate(),
		UserID:          userID,
		BuyerName:       fields.BuyerName.OrUnknown(),
		InvoiceNumber:   fields.InvoiceNumber.OrUnknown(),
		Amount:          fields.Amount.OrUnknown(),
		Date:            fields.Date.OrUnknown(),
		Company:         fields.Company.OrEmpty(),
		Email:           fields.Email.OrEmpty(),
		Phone:           fields.Phone.OrEmpty(),
		ShippingAddress: fields.ShippingAddress.OrEmpty(),
		RawText:         fields.RawText,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created *clientdomain.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.invoices.Insert(ctx, tx, &invoice); err != nil {
			return err
		}

		if !fields.BuyerName.Found {
			return nil
		}
		buyer := fields.BuyerName.Value

		existing, err := s.clients.FindByNameFold(ctx, tx, buyer)
		if err != nil {
			return err
		}
		if existing != nil {
			return s.clients.TouchLastInvoice(ctx, tx, existing.ID, now)
		}

		client := &clientdomain.Client{
			ID:          s.genID.Generate(),
			Name:        buyer,
			Company:     orDefault(fields.Company.OrEmpty(), buyer+" Inc."),
			Email:       orDefault(fields.Email.OrEmpty(), defaultEmail(buyer)),
			Phone:       orDefault(fields.Phone.OrEmpty(), "000-000-0000"),
			Address:     orDefault(fields.ShippingAddress.OrEmpty(), "Unknown Address"),
			LastInvoice: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.clients.Insert(ctx, tx, client); err != nil {
			return err
		}
		created = client
		return nil
	})
	if err != nil {
		return domain.ConfirmResult{}, err
	}
	return domain.ConfirmResult{Invoice: invoice, Client: created}, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func defaultEmail(buyer string) string {
	slug := strings.ToLower(strings.ReplaceAll(buyer, " ", ""))
	return "contact@" + slug + ".com"
}
