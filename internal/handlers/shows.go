package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fyyur/internal/events"
	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/response"
	"fyyur/internal/schedule"
	"fyyur/internal/web"
)

// Home отдаёт главную страницу
// @Summary		Главная страница
// @Tags			home
// @Produce		json,html
// @Success		200	{object}	response.HomeResponse
// @Router			/ [get]
func (h *Handler) Home(c *gin.Context) {
	h.respond(c, http.StatusOK, web.PageHome, nil, response.HomeResponse{Message: "Fyyur"})
}

// ListShows обрабатывает запрос на получение всех концертов
// @Summary		Список концертов
// @Description	Время начала форматируется так же, как на страницах площадок и исполнителей
// @Tags			shows
// @Produce		json,html
// @Success		200	{array}		schedule.ShowView		"Концерты"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/shows [get]
func (h *Handler) ListShows(c *gin.Context) {
	shows, err := h.shows.All(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	views := make([]schedule.ShowView, 0, len(shows))
	for _, show := range shows {
		views = append(views, h.format.View(show))
	}
	h.respond(c, http.StatusOK, web.PageShows, gin.H{"shows": views}, views)
}

// NewShowForm отдаёт форму концерта со списками площадок и исполнителей
// @Summary		Форма концерта
// @Tags			shows
// @Produce		html
// @Success		200
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/shows/create [get]
func (h *Handler) NewShowForm(c *gin.Context) {
	h.renderShowForm(c, http.StatusOK, forms.NewShowForm(h.clock.Now()), nil)
}

// CreateShow обрабатывает создание концерта
// @Summary		Создание концерта
// @Description	Площадка и исполнитель должны существовать; при ошибке форма отдаётся повторно
// @Tags			shows
// @Accept			x-www-form-urlencoded,json
// @Produce		json,html
// @Param			show	body		forms.ShowForm			true	"Данные концерта"
// @Success		201		{object}	response.ListedResponse	"Концерт создан"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, CSRF_INVALID)"
// @Failure		422		{object}	response.ErrorResponse	"Ошибка записи (WRITE_FAILED)"
// @Router			/shows/create [post]
func (h *Handler) CreateShow(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderShowForm(c, http.StatusBadRequest, form, forms.FieldErrors(err))
		return
	}

	show, err := form.Show()
	if err != nil {
		h.renderShowForm(c, http.StatusBadRequest, form, map[string]string{"start_time": "Not a valid datetime value."})
		return
	}

	if err := h.shows.Create(c.Request.Context(), show); err != nil {
		h.log.Error("Ошибка создания концерта",
			zap.Uint("venue_id", show.VenueID), zap.Uint("artist_id", show.ArtistID), zap.Error(err))
		msg := fmt.Sprintf("An error occurred. Show could not be listed. Error: %v", cause(err))
		if wantsJSON(c) {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
				Code:    response.CodeWriteFailed,
				Message: msg,
				Details: cause(err).Error(),
			})
			return
		}
		h.pushMessage(c, flash.Error(msg))
		h.renderShowForm(c, http.StatusOK, form, nil)
		return
	}

	h.publish(events.Event{Type: events.ShowListed, ID: show.ID, VenueID: show.VenueID, ArtistID: show.ArtistID})
	h.listed(c, "Show was successfully listed!", show.ID)
}

func (h *Handler) renderShowForm(c *gin.Context, status int, form forms.ShowForm, fieldErrs map[string]string) {
	ctx := c.Request.Context()
	venues, err := h.venues.Names(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	artists, err := h.artists.Names(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.renderForm(c, status, web.FormNewShow, form, fieldErrs, gin.H{
		"venues":  venues,
		"artists": artists,
	})
}
