package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/futurexhq/futurex/pkg/slogx"

	"github.com/google/uuid"
)

// ReviewService moderates course reviews. Same shape as the directory: the
// full list lives in memory, persisted wholesale after every mutation.
type ReviewService struct {
	Store store.Store

	reviews []domain.Review
}

// Initialize loads the persisted reviews, or seeds the fixture set on first
// run.
func (s *ReviewService) Initialize(ctx context.Context) error {
	var reviews []domain.Review
	err := s.Store.Load(ctx, store.KeyReviews, &reviews)
	switch {
	case err == nil:
		s.reviews = reviews
		return nil
	case errors.Is(err, store.ErrNotFound):
		s.reviews = append([]domain.Review(nil), seedReviews...)
		if err := s.Store.Save(ctx, store.KeyReviews, s.reviews); err != nil {
			slogx.FromContext(ctx).Error("failed to persist seeded reviews", slog.Any("error", err))
		}
		return nil
	default:
		return err
	}
}

// Add submits a new review by the given student. It starts PENDING and is
// prepended so the newest review lists first.
func (s *ReviewService) Add(ctx context.Context, author domain.Account, rating int, comment, courseName string) domain.Review {
	review := domain.Review{
		ID:            uuid.NewString(),
		StudentID:     author.ID,
		StudentName:   author.Name,
		StudentAvatar: author.AvatarURL,
		Rating:        rating,
		Comment:       comment,
		Date:          time.Now().Format("2006-01-02"),
		Status:        domain.ReviewPending,
		CourseName:    courseName,
	}

	s.reviews = append([]domain.Review{review}, s.reviews...)
	s.persist(ctx)
	return review
}

// SetStatus moves a review through moderation.
func (s *ReviewService) SetStatus(ctx context.Context, id string, status domain.ReviewStatus) error {
	for i, r := range s.reviews {
		if r.ID == id {
			s.reviews[i].Status = status
			s.persist(ctx)
			return nil
		}
	}
	return store.ErrNotFound
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	for i, r := range s.reviews {
		if r.ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return store.ErrNotFound
}

// All returns a snapshot of every review, newest first.
func (s *ReviewService) All() []domain.Review {
	return append([]domain.Review(nil), s.reviews...)
}

// Approved returns only the reviews that passed moderation.
func (s *ReviewService) Approved() []domain.Review {
	var approved []domain.Review
	for _, r := range s.reviews {
		if r.Status == domain.ReviewApproved {
			approved = append(approved, r)
		}
	}
	return approved
}

func (s *ReviewService) persist(ctx context.Context) {
	if err := s.Store.Save(ctx, store.KeyReviews, s.reviews); err != nil {
		slogx.FromContext(ctx).Error("reviews persist failed, in-memory list is ahead of storage",
			slog.Any("error", err),
		)
	}
}
