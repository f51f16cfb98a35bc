package repository

import (
	"context"
	"errors"

	"github.com/apexforge/studio-backend/internal/apperr"
	"github.com/apexforge/studio-backend/internal/projects/domain"
	"github.com/apexforge/studio-backend/internal/storage"
)

// Collection is the store collection holding projects.
const Collection = "projects"

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	store storage.Store
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(store storage.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Insert stores a fully populated project.
func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	if err := r.store.InsertOne(ctx, Collection, toDocument(p)); err != nil {
		return apperr.Dependency("failed to save project", err)
	}
	return nil
}

// List returns every project in storage order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.store.FindMany(ctx, Collection, nil, nil)
	if err != nil {
		return nil, apperr.Dependency("failed to list projects", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		p, err := fromDocument(doc)
		if err != nil {
			return nil, apperr.Dependency("failed to decode project", err)
		}
		out = append(out, *p)
	}
	return out, nil
}

// Get returns the project with the given id or domain.ErrNotFound.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.store.FindOne(ctx, Collection, storage.Filter{"id": id})
	if errors.Is(err, storage.ErrNoDocument) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Dependency("failed to load project", err)
	}

	p, err := fromDocument(doc)
	if err != nil {
		return nil, apperr.Dependency("failed to decode project", err)
	}
	return p, nil
}

// Update sets the given fields and reports whether a project matched.
func (r *ProjectRepository) Update(ctx context.Context, id string, fields map[string]string) (bool, error) {
	set := make(storage.Document, len(fields))
	for k, v := range fields {
		set[k] = v
	}

	matched, err := r.store.UpdateOne(ctx, Collection, storage.Filter{"id": id}, set)
	if err != nil {
		return false, apperr.Dependency("failed to update project", err)
	}
	return matched > 0, nil
}

// Delete removes a project and reports whether one was removed.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.store.DeleteOne(ctx, Collection, storage.Filter{"id": id})
	if err != nil {
		return false, apperr.Dependency("failed to delete project", err)
	}
	return deleted > 0, nil
}

func toDocument(p *domain.Project) storage.Document {
	return storage.Document{
		"id":          p.ID,
		"title":       p.Title,
		"category":    p.Category,
		"image":       p.Image,
		"year":        p.Year,
		"location":    p.Location,
		"description": p.Description,
		"created_at":  storage.FormatTime(p.CreatedAt),
	}
}

func fromDocument(doc storage.Document) (*domain.Project, error) {
	createdAt, err := storage.ParseTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Project{
		ID:          doc.String("id"),
		Title:       doc.String("title"),
		Category:    doc.String("category"),
		Image:       doc.String("image"),
		Year:        doc.String("year"),
		Location:    doc.String("location"),
		Description: doc.String("description"),
		CreatedAt:   createdAt,
	}, nil
}
