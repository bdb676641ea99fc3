package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fyyur/internal/events"
	"fyyur/internal/forms"
	"fyyur/internal/repository"
	"fyyur/internal/response"
	"fyyur/internal/schedule"
	"fyyur/internal/web"
)

// ListArtists обрабатывает запрос на получение списка исполнителей
// @Summary		Список исполнителей
// @Tags			artists
// @Produce		json,html
// @Success		200	{array}		repository.NamedRef		"Исполнители"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/artists [get]
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.artists.Names(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.respond(c, http.StatusOK, web.PageArtists, gin.H{"artists": artists}, artists)
}

// SearchArtists обрабатывает поиск исполнителей по подстроке имени без учёта регистра
// @Summary		Поиск исполнителей
// @Description	Для каждого найденного исполнителя возвращается число предстоящих концертов
// @Tags			artists
// @Accept			x-www-form-urlencoded,json
// @Produce		json,html
// @Param			search_term	formData	string	false	"Строка поиска"
// @Success		200	{object}	response.ArtistSearchResponse	"Найденные исполнители"
// @Failure		400	{object}	response.ErrorResponse			"Ошибка разбора запроса (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse			"Ошибка сервера (SERVER_ERROR)"
// @Router			/artists/search [post]
func (h *Handler) SearchArtists(c *gin.Context) {
	term, ok := h.bindSearch(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	refs, err := h.artists.Names(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	matched := matchNames(refs, term)

	ids := make([]uint, 0, len(matched))
	for _, ref := range matched {
		ids = append(ids, ref.ID)
	}
	shows, err := h.shows.ByArtists(ctx, ids)
	if err != nil {
		h.serverError(c, err)
		return
	}
	upcoming := schedule.UpcomingByArtist(shows, h.clock.Now())

	hits := make([]response.ArtistHit, 0, len(matched))
	for _, ref := range matched {
		hits = append(hits, response.ArtistHit{ID: ref.ID, Name: ref.Name, NumUpcomingShows: upcoming[ref.ID]})
	}
	res := response.ArtistSearchResponse{
		SearchTerm: term,
		Results:    response.SearchResult[response.ArtistHit]{Count: len(hits), Data: hits},
	}
	h.respond(c, http.StatusOK, web.PageSearchArtists, gin.H{
		"results":     res.Results,
		"search_term": term,
	}, res)
}

// ShowArtist обрабатывает запрос на получение исполнителя с его концертами
// @Summary		Исполнитель
// @Description	Все поля исполнителя, прошедшие и предстоящие концерты
// @Tags			artists
// @Produce		json,html
// @Param			id	path		int	true	"ID исполнителя"
// @Success		200	{object}	response.ArtistDetail	"Исполнитель"
// @Failure		404	{object}	response.ErrorResponse	"Исполнитель не найден (NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (SERVER_ERROR)"
// @Router			/artists/{id} [get]
func (h *Handler) ShowArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.notFound(c, "Artist not found")
		return
	}
	ctx := c.Request.Context()

	artist, err := h.artists.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c, "Artist not found")
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	// концерты выбираются по artist_id самого исполнителя
	shows, err := h.shows.ByArtist(ctx, artist.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	past, upcoming := h.format.Partition(shows, h.clock.Now())

	detail := response.ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             []string(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	h.respond(c, http.StatusOK, web.PageShowArtist, gin.H{"artist": detail}, detail)
}

// NewArtistForm отдаёт пустую форму исполнителя
// @Summary		Форма исполнителя
// @Tags			artists
// @Produce		html
// @Success		200
// @Router			/artists/create [get]
func (h *Handler) NewArtistForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, web.FormNewArtist, forms.ArtistForm{}, nil, nil)
}

// CreateArtist обрабатывает создание исполнителя
// @Summary		Создание исполнителя
// @Description	При ошибке записи транзакция откатывается, а пользователь получает уведомление
// @Tags			artists
// @Accept			x-www-form-urlencoded,json
// @Produce		json,html
// @Param			artist	body		forms.ArtistForm		true	"Данные исполнителя"
// @Success		201		{object}	response.ListedResponse	"Исполнитель создан"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, CSRF_INVALID)"
// @Failure		422		{object}	response.ErrorResponse	"Ошибка записи (WRITE_FAILED)"
// @Router			/artists/create [post]
func (h *Handler) CreateArtist(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, web.FormNewArtist, form, forms.FieldErrors(err), nil)
		return
	}

	artist := form.Artist()
	if err := h.artists.Create(c.Request.Context(), artist); err != nil {
		h.log.Error("Ошибка создания исполнителя", zap.String("name", artist.Name), zap.Error(err))
		h.listingFailed(c, fmt.Sprintf("An error occurred. Artist %s could not be listed. Error: %v", artist.Name, cause(err)), err)
		return
	}

	h.publish(events.Event{Type: events.ArtistListed, ID: artist.ID, Name: artist.Name})
	h.listed(c, fmt.Sprintf("Artist %s was successfully listed!", artist.Name), artist.ID)
}
