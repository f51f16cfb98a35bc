package repository

import (
	"context"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/inquiries/domain"
	"github.com/apexforge/studio-backend/internal/storage"
)

const Collection = "inquiries"

var newestFirst = &storage.Sort{Field: "created_at", Desc: true}

type InquiryRepository struct {
	store storage.Store
}

func NewInquiryRepository(store storage.Store) *InquiryRepository {
	return &InquiryRepository{store: store}
}

func (r *InquiryRepository) Insert(ctx context.Context, inq *domain.ContactInquiry) error {
	if err := r.store.InsertOne(ctx, Collection, toDocument(inq)); err != nil {
		return apperr.Dependency("failed to save inquiry", err)
	}
	return nil
}

// List returns every inquiry, newest first.
func (r *InquiryRepository) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	docs, err := r.store.FindMany(ctx, Collection, nil, newestFirst)
	if err != nil {
		return nil, apperr.Dependency("failed to list inquiries", err)
	}

	out := make([]domain.ContactInquiry, 0, len(docs))
	for _, doc := range docs {
		inq, err := fromDocument(doc)
		if err != nil {
			return nil, apperr.Dependency("failed to decode inquiry", err)
		}
		out = append(out, *inq)
	}
	return out, nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.store.DeleteOne(ctx, Collection, storage.Filter{"id": id})
	if err != nil {
		return false, apperr.Dependency("failed to delete inquiry", err)
	}
	return deleted > 0, nil
}

func toDocument(inq *domain.ContactInquiry) storage.Document {
	return storage.Document{
		"id":         inq.ID,
		"name":       inq.Name,
		"email":      inq.Email,
		"message":    inq.Message,
		"created_at": storage.FormatTime(inq.CreatedAt),
	}
}

func fromDocument(doc storage.Document) (*domain.ContactInquiry, error) {
	createdAt, err := storage.ParseTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.ContactInquiry{
		ID:        doc.String("id"),
		Name:      doc.String("name"),
		Email:     doc.String("email"),
		Message:   doc.String("message"),
		CreatedAt: createdAt,
	}, nil
}
