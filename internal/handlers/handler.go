// Package handlers обслуживает HTTP-маршруты каталога площадок, исполнителей и концертов.
// Каждая страница отдаёт HTML по умолчанию и JSON при Accept: application/json.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyur/internal/clock"
	"fyyur/internal/csrf"
	"fyyur/internal/events"
	"fyyur/internal/flash"
	"fyyur/internal/repository"
	"fyyur/internal/response"
	"fyyur/internal/schedule"
	"fyyur/internal/web"
)

const publishTimeout = 2 * time.Second

// Deps зависимости обработчиков. Пустые поля заменяются значениями по умолчанию,
// кроме DB, которая обязательна.
type Deps struct {
	DB        *gorm.DB
	Flash     flash.Store
	CSRF      *csrf.Manager // nil отключает проверку токенов
	Events    events.Publisher
	Clock     clock.Clock
	Formatter *schedule.Formatter
	Log       *zap.Logger
}

// Handler контекст приложения, общий для всех маршрутов.
type Handler struct {
	venues  *repository.VenueRepo
	artists *repository.ArtistRepo
	shows   *repository.ShowRepo
	flashes flash.Store
	csrf    *csrf.Manager
	events  events.Publisher
	clock   clock.Clock
	format  *schedule.Formatter
	log     *zap.Logger
}

func New(d Deps) *Handler {
	h := &Handler{
		venues:  repository.NewVenueRepo(d.DB),
		artists: repository.NewArtistRepo(d.DB),
		shows:   repository.NewShowRepo(d.DB),
		flashes: d.Flash,
		csrf:    d.CSRF,
		events:  d.Events,
		clock:   d.Clock,
		format:  d.Formatter,
		log:     d.Log,
	}
	if h.flashes == nil {
		h.flashes = flash.NewMemoryStore()
	}
	if h.events == nil {
		h.events = events.Nop{}
	}
	if h.clock == nil {
		h.clock = clock.NewSystem()
	}
	if h.format == nil {
		h.format = schedule.NewFormatter("en")
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// respond отдаёт страницу page с data или payload в JSON.
// Для HTML в data добавляются непрочитанные flash-сообщения.
func (h *Handler) respond(c *gin.Context, status int, page string, data gin.H, payload interface{}) {
	if wantsJSON(c) {
		c.JSON(status, payload)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["messages"] = h.popMessages(c)
	c.HTML(status, page, data)
}

func (h *Handler) popMessages(c *gin.Context) []flash.Message {
	sid := flash.SessionID(c)
	if sid == "" {
		return nil
	}
	msgs, err := h.flashes.Pop(c.Request.Context(), sid)
	if err != nil {
		h.log.Warn("Не удалось прочитать flash-сообщения", zap.Error(err))
		return nil
	}
	return msgs
}

func (h *Handler) pushMessage(c *gin.Context, msg flash.Message) {
	sid := flash.SessionID(c)
	if sid == "" {
		return
	}
	if err := h.flashes.Push(c.Request.Context(), sid, msg); err != nil {
		h.log.Warn("Не удалось сохранить flash-сообщение", zap.Error(err))
	}
}

func (h *Handler) csrfToken(c *gin.Context) string {
	if h.csrf == nil {
		return ""
	}
	token, err := h.csrf.Issue(flash.SessionID(c))
	if err != nil {
		h.log.Error("Не удалось выпустить CSRF-токен", zap.Error(err))
		return ""
	}
	return token
}

func (h *Handler) publish(ev events.Event) {
	ev.At = h.clock.Now()
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := h.events.Publish(ctx, ev); err != nil {
		h.log.Warn("Не удалось опубликовать событие", zap.String("type", ev.Type), zap.Error(err))
	}
}

// NotFound отвечает страницей 404. Используется и для неизвестных маршрутов.
func (h *Handler) NotFound(c *gin.Context) {
	h.notFound(c, "")
}

func (h *Handler) notFound(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Not Found"
	}
	h.respond(c, http.StatusNotFound, web.ErrorNotFound, gin.H{"error": msg}, response.ErrorResponse{
		Code:    response.CodeNotFound,
		Message: msg,
	})
}

func (h *Handler) badRequest(c *gin.Context, code, msg string) {
	h.respond(c, http.StatusBadRequest, web.ErrorBadRequest, gin.H{"error": msg}, response.ErrorResponse{
		Code:    code,
		Message: msg,
	})
}

// serverError логирует ошибку и отвечает страницей 500. Детали клиенту не раскрываются.
func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.Error("Ошибка обработки запроса",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    response.CodeServer,
			Message: "Server Error",
		})
		return
	}
	c.HTML(http.StatusInternalServerError, web.ErrorServer, gin.H{})
}

// RejectCSRF отвечает 400 на запрос без корректного CSRF-токена.
func (h *Handler) RejectCSRF(c *gin.Context, err error) {
	h.log.Warn("Отклонён запрос без корректного CSRF-токена",
		zap.String("path", c.Request.URL.Path), zap.Error(err))
	h.badRequest(c, response.CodeCSRF, "The CSRF token is missing or invalid.")
}

// parseID разбирает :id; нечисловой идентификатор обрабатывается как отсутствующая запись.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
