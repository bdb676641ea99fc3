package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Names возвращает (id, name) всех исполнителей в порядке хранения.
func (r *ArtistRepo) Names(ctx context.Context) ([]NamedRef, error) {
	refs := make([]NamedRef, 0)
	if err := r.db.WithContext(ctx).Model(&models.Artist{}).
		Select("id", "name").Order("id ASC").
		Scan(&refs).Error; err != nil {
		return nil, fmt.Errorf("artist names: %w", err)
	}
	return refs, nil
}

func (r *ArtistRepo) Get(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}
	return &artist, nil
}

func (r *ArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	return createInTx(ctx, r.db, "Artist", artist, nil)
}

func (r *ArtistRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&n).Error
	return n, err
}
