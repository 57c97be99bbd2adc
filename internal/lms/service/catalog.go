package service

import (
	"strings"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/store"
)

// CatalogService serves the course catalog. The catalog ships with the
// client and is never written back, so this is a read-only view over the
// fixture courses.
type CatalogService struct{}

// All returns every course in catalog order.
func (s *CatalogService) All() []domain.Course {
	return append([]domain.Course(nil), seedCourses...)
}

// Get returns one course by id.
func (s *CatalogService) Get(id string) (domain.Course, error) {
	for _, c := range seedCourses {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Course{}, store.ErrNotFound
}

// ByCategory filters the catalog by category, case-insensitively.
func (s *CatalogService) ByCategory(category string) []domain.Course {
	var out []domain.Course
	for _, c := range seedCourses {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}
