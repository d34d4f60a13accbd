package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/habibieebhy/fieldforce-backend/internal/apperrors"
	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"github.com/habibieebhy/fieldforce-backend/internal/query"
	"gorm.io/gorm"
)

// DealerStore is the storage surface the dealer consistency protocol
// mutates. Kept as an interface so the saga can be exercised against an
// in-memory fake.
type DealerStore interface {
	Insert(ctx context.Context, dealer *models.Dealer) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error)
	Find(ctx context.Context, f *query.Filter) ([]models.Dealer, error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Dealer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type gormDealerStore struct {
	db *gorm.DB
}

func NewGormDealerStore(db *gorm.DB) DealerStore {
	return &gormDealerStore{db: db}
}

func (s *gormDealerStore) Insert(ctx context.Context, dealer *models.Dealer) error {
	if err := s.db.WithContext(ctx).Create(dealer).Error; err != nil {
		return fmt.Errorf("failed to create dealer: %w", err)
	}
	return nil
}

func (s *gormDealerStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := s.db.WithContext(ctx).First(&dealer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("dealer not found")
		}
		return nil, err
	}
	return &dealer, nil
}

func (s *gormDealerStore) Find(ctx context.Context, f *query.Filter) ([]models.Dealer, error) {
	var dealers []models.Dealer
	q := query.ApplyFilter(s.db.WithContext(ctx).Model(&models.Dealer{}), f)
	if err := q.Find(&dealers).Error; err != nil {
		return nil, err
	}
	return dealers, nil
}

func (s *gormDealerStore) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*models.Dealer, error) {
	result := s.db.WithContext(ctx).Model(&models.Dealer{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("dealer not found")
	}
	return s.FindByID(ctx, id)
}

func (s *gormDealerStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Dealer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("dealer not found")
	}
	return nil
}

func (s *gormDealerStore) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Dealer{})
	return result.RowsAffected, result.Error
}
