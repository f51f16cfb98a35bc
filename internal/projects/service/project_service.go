package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/apexforge/studio-backend/internal/logger"
	"github.com/apexforge/studio-backend/internal/projects/domain"
	"github.com/apexforge/studio-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo  *repository.ProjectRepository
	now   func() time.Time
	newID func() string
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create assigns a fresh id and creation time and stores the project.
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	p := &domain.Project{
		ID:          s.newID(),
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Year:        req.Year,
		Location:    req.Location,
		Description: req.Description,
		// storage keeps microseconds; truncate so reads return the same value
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	logger.New(ctx).Infof("project.create", "id=%s", p.ID)
	return p, nil
}

// List returns all projects in storage order
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Update applies only the supplied fields and returns the stored result.
func (s *ProjectService) Update(ctx context.Context, id string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return existing, nil
	}

	matched, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		// deleted between the read and the write
		return nil, domain.ErrNotFound
	}

	logger.New(ctx).Infof("project.update", "id=%s fields=%d", id, len(fields))
	return s.repo.Get(ctx, id)
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	logger.New(ctx).Infof("project.delete", "id=%s", id)
	return nil
}
