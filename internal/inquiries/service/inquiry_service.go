package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/inquiries/domain"
	"github.com/apexforge/studio-backend/internal/inquiries/repository"
	"github.com/apexforge/studio-backend/internal/logger"
	"github.com/apexforge/studio-backend/internal/notify"
)

// NotifyOptions addresses the e-mail sent for each new inquiry.
type NotifyOptions struct {
	From    string
	To      string
	Timeout time.Duration
}

type InquiryService struct {
	repo     *repository.InquiryRepository
	notifier notify.Notifier
	opts     NotifyOptions
	validate *validator.Validate

	now   func() time.Time
	newID func() string

	pending sync.WaitGroup
}

func NewInquiryService(repo *repository.InquiryRepository, notifier notify.Notifier, opts NotifyOptions) *InquiryService {
	if notifier == nil {
		notifier = notify.Disabled{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &InquiryService{
		repo:     repo,
		notifier: notifier,
		opts:     opts,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create validates and stores an inquiry, then notifies the studio in the
// background. Notification failures never affect the result.
func (s *InquiryService) Create(ctx context.Context, req domain.CreateInquiryRequest) (*domain.ContactInquiry, error) {
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return nil, apperr.Validation("value is not a valid email address", err)
	}

	inq := &domain.ContactInquiry{
		ID:        s.newID(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.repo.Insert(ctx, inq); err != nil {
		return nil, err
	}
	logger.New(ctx).Infof("inquiry.create", "id=%s", inq.ID)

	// keep the request id for logging but not the request's cancellation
	bg := context.WithoutCancel(ctx)
	snapshot := *inq
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.notify(bg, &snapshot)
	}()

	return inq, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	return s.repo.List(ctx)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	logger.New(ctx).Infof("inquiry.delete", "id=%s", id)
	return nil
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (s *InquiryService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *InquiryService) notify(ctx context.Context, inq *domain.ContactInquiry) {
	log := logger.New(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	body, err := renderEmail(inq)
	if err != nil {
		log.Error("inquiry.notify", err)
		return
	}

	err = s.notifier.Send(ctx, notify.Message{
		Subject: emailSubject(inq),
		HTML:    body,
		To:      s.opts.To,
		From:    s.opts.From,
	})
	switch {
	case errors.Is(err, notify.ErrNotConfigured):
		log.Warn("inquiry.notify", "email provider not configured, notification skipped")
	case err != nil:
		log.Errorf("inquiry.notify", "id=%s error=%v", inq.ID, err)
	default:
		log.Infof("inquiry.notify", "id=%s sent", inq.ID)
	}
}
