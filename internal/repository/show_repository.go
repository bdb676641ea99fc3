package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// All возвращает все концерты вместе с площадкой и исполнителем.
func (r *ShowRepo) All(ctx context.Context) ([]models.Show, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *ShowRepo) ByVenue(ctx context.Context, venueID uint) ([]models.Show, error) {
	return r.find(r.db.WithContext(ctx).Where("venue_id = ?", venueID))
}

func (r *ShowRepo) ByArtist(ctx context.Context, artistID uint) ([]models.Show, error) {
	return r.find(r.db.WithContext(ctx).Where("artist_id = ?", artistID))
}

// ByArtists загружает концерты нескольких исполнителей одним запросом, без связей.
func (r *ShowRepo) ByArtists(ctx context.Context, artistIDs []uint) ([]models.Show, error) {
	shows := make([]models.Show, 0)
	if len(artistIDs) == 0 {
		return shows, nil
	}
	if err := r.db.WithContext(ctx).
		Where("artist_id IN ?", artistIDs).
		Order("id ASC").
		Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("shows by artists: %w", err)
	}
	return shows, nil
}

// Create проверяет существование площадки и исполнителя внутри той же транзакции;
// внешние ключи в базе остаются последним рубежом.
func (r *ShowRepo) Create(ctx context.Context, show *models.Show) error {
	return createInTx(ctx, r.db, "Show", show, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: id %d", ErrUnknownVenue, show.VenueID)
		}
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: id %d", ErrUnknownArtist, show.ArtistID)
		}
		return nil
	})
}

func (r *ShowRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Show{}).Count(&n).Error
	return n, err
}

func (r *ShowRepo) find(q *gorm.DB) ([]models.Show, error) {
	shows := make([]models.Show, 0)
	if err := q.
		Preload("Venue").
		Preload("Artist").
		Order("id ASC").
		Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("load shows: %w", err)
	}
	return shows, nil
}
