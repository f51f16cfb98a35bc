package service

import (
	"context"

	"github.com/apexforge/studio-backend/internal/logger"
	"github.com/apexforge/studio-backend/internal/projects/domain"
)

// DefaultProjects is the starter portfolio installed by Seed.
var DefaultProjects = []domain.CreateProjectRequest{
	{
		Title:       "The Solace Penthouse",
		Category:    "Residential",
		Image:       "https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?auto=format&fit=crop&q=80&w=1200",
		Year:        "2023",
		Location:    "Geneva, Switzerland",
		Description: "A sanctuary of light and glass designed for tranquil urban living.",
	},
	{
		Title:       "Velocity Headquarters",
		Category:    "Commercial",
		Image:       "https://images.unsplash.com/photo-1497215728101-856f4ea42174?auto=format&fit=crop&q=80&w=1200",
		Year:        "2022",
		Location:    "Austin, USA",
		Description: "A dynamic office ecosystem fostering collaboration and deep work.",
	},
	{
		Title:       "Kinetic Hybrid Loft",
		Category:    "Urban",
		Image:       "https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&q=80&w=1200",
		Year:        "2024",
		Location:    "Berlin, Germany",
		Description: "A seamless integration of living quarters and a professional creative studio.",
	},
	{
		Title:       "Lumina Corporate Park",
		Category:    "Commercial",
		Image:       "https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&q=80&w=1200",
		Year:        "2023",
		Location:    "London, UK",
		Description: "Redefining the modern campus with biophilic architecture.",
	},
}

// Seed creates the given projects when none exist yet and returns how many
// were inserted. A non-empty collection is left untouched.
func (s *ProjectService) Seed(ctx context.Context, defaults []domain.CreateProjectRequest) (int, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		logger.New(ctx).Infof("project.seed", "skipped existing=%d", len(existing))
		return 0, nil
	}

	for i, req := range defaults {
		if _, err := s.Create(ctx, req); err != nil {
			return i, err
		}
	}
	return len(defaults), nil
}
