package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fyyur/internal/events"
	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/repository"
	"fyyur/internal/response"
	"fyyur/internal/web"
)

// ListVenues обрабатывает запрос на получение площадок, сгруппированных по городу и штату
// @Summary		Список площадок
// @Description	Все площадки, сгруппированные по парам (city, state)
// @Tags			venues
// @Produce		json,html
// @Success		200	{array}		repository.Area			"Площадки по городам"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	areas, err := h.venues.ListAreas(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.respond(c, http.StatusOK, web.PageVenues, gin.H{"areas": areas}, areas)
}

// SearchVenues обрабатывает поиск площадок по подстроке имени без учёта регистра
// @Summary		Поиск площадок
// @Description	Пустая строка поиска возвращает все площадки
// @Tags			venues
// @Accept			x-www-form-urlencoded,json
// @Produce		json,html
// @Param			search_term	formData	string	false	"Строка поиска"
// @Success		200	{object}	response.VenueSearchResponse	"Найденные площадки"
// @Failure		400	{object}	response.ErrorResponse			"Ошибка разбора запроса (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse			"Ошибка сервера (SERVER_ERROR)"
// @Router			/venues/search [post]
func (h *Handler) SearchVenues(c *gin.Context) {
	term, ok := h.bindSearch(c)
	if !ok {
		return
	}
	refs, err := h.venues.Names(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	hits := matchNames(refs, term)
	res := response.VenueSearchResponse{
		SearchTerm: term,
		Results:    response.SearchResult[repository.NamedRef]{Count: len(hits), Data: hits},
	}
	h.respond(c, http.StatusOK, web.PageSearchVenues, gin.H{
		"results":     res.Results,
		"search_term": term,
	}, res)
}

// ShowVenue обрабатывает запрос на получение площадки с её концертами
// @Summary		Площадка
// @Description	Все поля площадки, прошедшие и предстоящие концерты
// @Tags			venues
// @Produce		json,html
// @Param			id	path		int	true	"ID площадки"
// @Success		200	{object}	response.VenueDetail	"Площадка"
// @Failure		404	{object}	response.ErrorResponse	"Площадка не найдена (NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/venues/{id} [get]
func (h *Handler) ShowVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.notFound(c, "Venue not found")
		return
	}
	ctx := c.Request.Context()

	venue, err := h.venues.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c, "Venue not found")
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	shows, err := h.shows.ByVenue(ctx, venue.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	past, upcoming := h.format.Partition(shows, h.clock.Now())

	detail := response.VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             []string(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	h.respond(c, http.StatusOK, web.PageShowVenue, gin.H{"venue": detail}, detail)
}

// NewVenueForm отдаёт пустую форму площадки
// @Summary		Форма площадки
// @Tags			venues
// @Produce		html
// @Success		200
// @Router			/venues/create [get]
func (h *Handler) NewVenueForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, web.FormNewVenue, forms.VenueForm{}, nil, nil)
}

// CreateVenue обрабатывает создание площадки
// @Summary		Создание площадки
// @Description	При ошибке записи транзакция откатывается, а пользователь получает уведомление
// @Tags			venues
// @Accept			x-www-form-urlencoded,json
// @Produce		json,html
// @Param			venue	body		forms.VenueForm			true	"Данные площадки"
// @Success		201		{object}	response.ListedResponse	"Площадка создана"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, CSRF_INVALID)"
// @Failure		422		{object}	response.ErrorResponse	"Ошибка записи (WRITE_FAILED)"
// @Router			/venues/create [post]
func (h *Handler) CreateVenue(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, web.FormNewVenue, form, forms.FieldErrors(err), nil)
		return
	}

	venue := form.Venue()
	if err := h.venues.Create(c.Request.Context(), venue); err != nil {
		h.log.Error("Ошибка создания площадки", zap.String("name", venue.Name), zap.Error(err))
		h.listingFailed(c, fmt.Sprintf("An error occurred. Venue %s could not be listed. Error: %v", venue.Name, cause(err)), err)
		return
	}

	h.publish(events.Event{Type: events.VenueListed, ID: venue.ID, Name: venue.Name})
	h.listed(c, fmt.Sprintf("Venue %s was successfully listed!", venue.Name), venue.ID)
}

// bindSearch читает search_term из формы или JSON. Пустое тело означает пустую строку.
// Строка используется как есть, без обрезки пробелов.
func (h *Handler) bindSearch(c *gin.Context) (string, bool) {
	var req struct {
		SearchTerm string `form:"search_term" json:"search_term"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			h.badRequest(c, response.CodeValidation, err.Error())
			return "", false
		}
	}
	return req.SearchTerm, true
}

// matchNames проверяет вхождение подстроки без учёта регистра; пустая строка совпадает со всеми.
func matchNames(refs []repository.NamedRef, term string) []repository.NamedRef {
	needle := strings.ToLower(term)
	hits := make([]repository.NamedRef, 0)
	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Name), needle) {
			hits = append(hits, ref)
		}
	}
	return hits
}

// cause возвращает исходную ошибку записи без обёртки WriteError.
func cause(err error) error {
	var werr *repository.WriteError
	if errors.As(err, &werr) {
		return werr.Err
	}
	return err
}

// listed завершает успешное создание: уведомление и главная страница.
func (h *Handler) listed(c *gin.Context, msg string, id uint) {
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, response.ListedResponse{Message: msg, ID: id})
		return
	}
	h.pushMessage(c, flash.Success(msg))
	h.respond(c, http.StatusOK, web.PageHome, nil, nil)
}

// listingFailed сообщает о неудачной записи площадки или исполнителя и отдаёт главную страницу.
func (h *Handler) listingFailed(c *gin.Context, msg string, err error) {
	if wantsJSON(c) {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    response.CodeWriteFailed,
			Message: msg,
			Details: cause(err).Error(),
		})
		return
	}
	h.pushMessage(c, flash.Error(msg))
	h.respond(c, http.StatusOK, web.PageHome, nil, nil)
}

// renderForm отдаёт форму создания со значениями и ошибками полей.
// extra добавляет данные конкретной формы (списки для выбора).
func (h *Handler) renderForm(c *gin.Context, status int, page string, form interface{}, fieldErrs map[string]string, extra gin.H) {
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	if wantsJSON(c) {
		if status == http.StatusOK {
			c.JSON(status, gin.H{"form": form, "csrf_token": h.csrfToken(c)})
			return
		}
		c.JSON(status, response.ErrorResponse{
			Code:    response.CodeValidation,
			Message: "Validation failed",
			Fields:  fieldErrs,
		})
		return
	}
	data := gin.H{
		"form":       form,
		"errors":     fieldErrs,
		"csrf_token": h.csrfToken(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	data["messages"] = h.popMessages(c)
	c.HTML(status, page, data)
}
