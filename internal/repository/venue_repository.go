package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

// Area город/штат со списком площадок.
type Area struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []NamedRef `json:"venues"`
}

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// ListAreas группирует площадки по уникальным парам (city, state).
func (r *VenueRepo) ListAreas(ctx context.Context) ([]Area, error) {
	var rows []models.Venue
	if err := r.db.WithContext(ctx).
		Select("id", "name", "city", "state").
		Order("city ASC").Order("state ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	areas := make([]Area, 0)
	for _, v := range rows {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []NamedRef{}})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, NamedRef{ID: v.ID, Name: v.Name})
	}
	return areas, nil
}

// Names возвращает (id, name) всех площадок.
func (r *VenueRepo) Names(ctx context.Context) ([]NamedRef, error) {
	refs := make([]NamedRef, 0)
	if err := r.db.WithContext(ctx).Model(&models.Venue{}).
		Select("id", "name").Order("id ASC").
		Scan(&refs).Error; err != nil {
		return nil, fmt.Errorf("venue names: %w", err)
	}
	return refs, nil
}

func (r *VenueRepo) Get(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}
	return &venue, nil
}

func (r *VenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	return createInTx(ctx, r.db, "Venue", venue, nil)
}

func (r *VenueRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Venue{}).Count(&n).Error
	return n, err
}
