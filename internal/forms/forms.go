// Package forms описывает входные данные форм создания площадки, исполнителя и концерта.
// Поля проверяются тегами binding (validator/v10) до того, как данные попадут в репозиторий.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"fyyur/internal/models"
)

// VenueForm поля формы /venues/create.
type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=255"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required,us_state"`
	Address            string   `form:"address" json:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" binding:"max=120"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// Venue строит модель из проверенной формы.
func (f VenueForm) Venue() *models.Venue {
	return &models.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             datatypes.NewJSONSlice(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// ArtistForm поля формы /artists/create.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=255"`
	City               string   `form:"city" json:"city" binding:"required,max=120"`
	State              string   `form:"state" json:"state" binding:"required,us_state"`
	Phone              string   `form:"phone" json:"phone" binding:"max=120"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) Artist() *models.Artist {
	return &models.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             datatypes.NewJSONSlice(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// ShowForm поля формы /shows/create. start_time принимается в любом ISO-подобном виде.
type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" json:"venue_id" binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required,datetime_any"`
}

// NewShowForm форма с текущим временем в поле start_time.
func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.UTC().Format("2006-01-02 15:04:05")}
}

// Show строит модель; время переводится в UTC.
func (f ShowForm) Show() (*models.Show, error) {
	start, err := dateparse.ParseIn(strings.TrimSpace(f.StartTime), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	return &models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start.UTC(),
	}, nil
}

var registerOnce sync.Once

// RegisterValidators добавляет в валидатор gin правила genre, us_state и datetime_any.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			return contains(Genres, fl.Field().String())
		})
		_ = v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
			return contains(States, fl.Field().String())
		})
		_ = v.RegisterValidation("datetime_any", func(fl validator.FieldLevel) bool {
			_, err := dateparse.ParseIn(strings.TrimSpace(fl.Field().String()), time.UTC)
			return err == nil
		})
	})
}

// FieldErrors переводит ошибку привязки в сообщения по именам полей формы.
// Ошибки, не связанные с валидацией (например, неверный тип), попадают в ключ "form".
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fieldName(fe.Field())] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Choose at least one option."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "url":
		return "Invalid URL."
	case "genre", "us_state":
		return "Not a valid choice."
	case "datetime_any":
		return "Not a valid datetime value."
	}
	return "Invalid value."
}

var fieldNames = map[string]string{
	"Name":               "name",
	"City":               "city",
	"State":              "state",
	"Address":            "address",
	"Phone":              "phone",
	"Genres":             "genres",
	"FacebookLink":       "facebook_link",
	"ImageLink":          "image_link",
	"Website":            "website",
	"SeekingTalent":      "seeking_talent",
	"SeekingVenue":       "seeking_venue",
	"SeekingDescription": "seeking_description",
	"ArtistID":           "artist_id",
	"VenueID":            "venue_id",
	"StartTime":          "start_time",
}

func fieldName(structField string) string {
	// элементы списка приходят как Genres[0]
	if i := strings.IndexByte(structField, '['); i > 0 {
		structField = structField[:i]
	}
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}
