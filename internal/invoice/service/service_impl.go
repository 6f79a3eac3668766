package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/atriumhq/atrium/internal/events"
	"github.com/atriumhq/atrium/internal/identity"
	"github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/internal/money"
	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Bus   *events.Bus
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	bus   *events.Bus

	summaryMu sync.Mutex
	summaries map[snowflake.ID]domain.Summary
}

func New(p Params) domain.Service {
	s := &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		bus:       p.Bus,
		summaries: make(map[snowflake.ID]domain.Summary),
	}

	// The intake pipeline writes invoices through the repository directly
	// and announces commits on the bus, so the cache listens there instead
	// of hooking this service's own writes.
	p.Bus.Subscribe(events.TopicInvoicesChanged, func(events.Event) {
		s.summaryMu.Lock()
		s.summaries = make(map[snowflake.ID]domain.Summary)
		s.summaryMu.Unlock()
	})

	return s
}

func (s *Service) Create(ctx context.Context, actor identity.Identity, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	userID, ok := actor.UserID()
	if !ok {
		return domain.Invoice{}, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		ID:              s.genID.Generate(),
		UserID:          userID,
		BuyerName:       strings.TrimSpace(req.BuyerName),
		InvoiceNumber:   strings.TrimSpace(req.InvoiceNumber),
		Amount:          strings.TrimSpace(req.Amount),
		Date:            strings.TrimSpace(req.Date),
		Company:         strings.TrimSpace(req.Company),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		RawText:         req.RawText,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.bus.Publish(events.TopicInvoicesChanged)
	return invoice, nil
}

func (s *Service) List(ctx context.Context, actor identity.Identity, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	userID, ok := actor.UserID()
	if !ok {
		return domain.ListInvoiceResponse{}, domain.ErrUnauthenticated
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, userID, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(invoice *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        invoice.ID.String(),
			CreatedAt: invoice.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		invoices = append(invoices, *item)
	}

	return domain.ListInvoiceResponse{PageInfo: *pageInfo, Invoices: invoices}, nil
}

func (s *Service) GetByID(ctx context.Context, actor identity.Identity, id string) (domain.Invoice, error) {
	userID, ok := actor.UserID()
	if !ok {
		return domain.Invoice{}, domain.ErrUnauthenticated
	}

	parsed, err := parseID(id)
	if err != nil {
		return domain.Invoice{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, userID, parsed)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Recent(ctx context.Context, actor identity.Identity, limit int) ([]domain.Invoice, error) {
	userID, ok := actor.UserID()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if limit <= 0 {
		limit = 5
	}

	items, err := s.repo.Recent(ctx, s.db, userID, limit)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		invoices = append(invoices, *item)
	}
	return invoices, nil
}

func (s *Service) Summarize(ctx context.Context, actor identity.Identity) (domain.Summary, error) {
	userID, ok := actor.UserID()
	if !ok {
		return domain.Summary{}, domain.ErrUnauthenticated
	}

	s.summaryMu.Lock()
	cached, hit := s.summaries[userID]
	s.summaryMu.Unlock()
	if hit {
		return cached, nil
	}

	count, err := s.repo.Count(ctx, s.db, userID)
	if err != nil {
		return domain.Summary{}, err
	}

	amounts, err := s.repo.Amounts(ctx, s.db, userID)
	if err != nil {
		return domain.Summary{}, err
	}

	var total float64
	for _, amount := range amounts {
		total += money.ParseLenient(amount)
	}

	summary := domain.Summary{InvoiceCount: count, TotalAmount: total}

	s.summaryMu.Lock()
	s.summaries[userID] = summary
	s.summaryMu.Unlock()

	return summary, nil
}

func (s *Service) Delete(ctx context.Context, actor identity.Identity, id string) error {
	userID, ok := actor.UserID()
	if !ok {
		return domain.ErrUnauthenticated
	}

	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, userID, parsed); err != nil {
		return err
	}

	s.bus.Publish(events.TopicInvoicesChanged)
	return nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
