package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/inquiries/domain"
	"github.com/apexforge/studio-backend/internal/inquiries/repository"
	"github.com/apexforge/studio-backend/internal/logger"
	"github.com/apexforge/studio-backend/internal/notify"
	"github.com/apexforge/studio-backend/internal/notify/notifytest"
	"github.com/apexforge/studio-backend/internal/storage/memory"
)

var opts = NotifyOptions{From: "studio@example.com", To: "admin@example.com", Timeout: time.Second}

func newTestService(t *testing.T, n notify.Notifier) (*InquiryService, *time.Time) {
	t.Helper()
	now := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	seq := 0

	svc := NewInquiryService(repository.NewInquiryRepository(memory.New()), n, opts)
	svc.now = func() time.Time { return now }
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("inq-%d", seq)
	}
	return svc, &now
}

func wait(t *testing.T, svc *InquiryService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))
}

func TestInquiryService_CreateNotifies(t *testing.T) {
	rec := &notifytest.Recorder{}
	svc, _ := newTestService(t, rec)

	inq, err := svc.Create(context.Background(), domain.CreateInquiryRequest{
		Name:    "Jane <b>Doe</b>",
		Email:   "jane@example.com",
		Message: "Looking for a villa & garden.",
	})
	require.NoError(t, err)
	assert.Equal(t, "inq-1", inq.ID)

	wait(t, svc)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	msg := msgs[0]
	assert.Equal(t, "New Contact Inquiry from Jane <b>Doe</b>", msg.Subject)
	assert.Equal(t, opts.From, msg.From)
	assert.Equal(t, opts.To, msg.To)
	assert.Contains(t, msg.HTML, "March 05, 2024 at 14:07 UTC")
	assert.Contains(t, msg.HTML, "Jane &lt;b&gt;Doe&lt;/b&gt;")
	assert.Contains(t, msg.HTML, "villa &amp; garden")
	assert.NotContains(t, msg.HTML, "<b>Doe</b>")
}

func TestInquiryService_NotificationOutlivesRequest(t *testing.T) {
	rec := &notifytest.Recorder{}
	svc, _ := newTestService(t, rec)

	ctx, cancel := context.WithCancel(logger.WithRequestID(context.Background(), "req-1"))
	_, err := svc.Create(ctx, domain.CreateInquiryRequest{Name: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)
	cancel()

	wait(t, svc)
	assert.Len(t, rec.Messages(), 1)
}

func TestInquiryService_InvalidEmail(t *testing.T) {
	rec := &notifytest.Recorder{}
	svc, _ := newTestService(t, rec)

	for _, email := range []string{"", "not-an-email", "a@", "@example.com"} {
		_, err := svc.Create(context.Background(), domain.CreateInquiryRequest{Name: "A", Email: email, Message: "m"})
		assert.ErrorIs(t, err, apperr.ErrValidation, "email %q", email)
	}

	wait(t, svc)
	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, rec.Messages())
}

func TestInquiryService_NotifierFailureIsSwallowed(t *testing.T) {
	for name, n := range map[string]notify.Notifier{
		"provider error": &notifytest.Recorder{Err: errors.New("503 from provider")},
		"not configured": notify.Disabled{},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t, n)

			inq, err := svc.Create(context.Background(), domain.CreateInquiryRequest{Name: "B", Email: "b@example.com", Message: "m"})
			require.NoError(t, err)
			wait(t, svc)

			items, err := svc.List(context.Background())
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, *inq, items[0])
		})
	}
}

func TestInquiryService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestService(t, nil)

	var ids []string
	for i := 0; i < 3; i++ {
		inq, err := svc.Create(ctx, domain.CreateInquiryRequest{
			Name:    fmt.Sprintf("visitor %d", i),
			Email:   "v@example.com",
			Message: strings.Repeat("x", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, inq.ID)
		*now = now.Add(time.Minute)
	}
	wait(t, svc)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[1], items[1].ID)
	assert.Equal(t, ids[0], items[2].ID)
}

func TestInquiryService_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	inq, err := svc.Create(ctx, domain.CreateInquiryRequest{Name: "C", Email: "c@example.com", Message: "m"})
	require.NoError(t, err)
	wait(t, svc)

	require.NoError(t, svc.Delete(ctx, inq.ID))
	err = svc.Delete(ctx, inq.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Inquiry not found", apperr.Message(err))
}
