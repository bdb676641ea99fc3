package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fyyur/docs"
	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/web"
)

// RouterOptions внешние части маршрутизатора.
type RouterOptions struct {
	CORSOrigins  []string
	SecureCookie bool
	// Listings обработчик ленты /ws/listings; nil отключает маршрут.
	Listings gin.HandlerFunc
	// Swagger включает /swagger/*any.
	Swagger bool
}

// NewRouter собирает gin.Engine со всеми маршрутами каталога.
func NewRouter(h *Handler, opts RouterOptions) (*gin.Engine, error) {
	forms.RegisterValidators()

	renderer, err := web.NewRenderer(h.format.FuncMap())
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(RequestLogger(h.log), h.Recovery())

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Accept", "X-CSRF-Token"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.StaticFS("/static", web.Static())
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if opts.Listings != nil {
		r.GET("/ws/listings", opts.Listings)
	}

	site := r.Group("", flash.SessionMiddleware(opts.SecureCookie))
	guard := func(c *gin.Context) { c.Next() }
	if h.csrf != nil {
		guard = h.csrf.Middleware(flash.SessionID, h.RejectCSRF)
	}

	site.GET("/", h.Home)

	venues := site.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.NewVenueForm)
		venues.POST("/create", guard, h.CreateVenue)
		venues.GET("/:id", h.ShowVenue)
	}

	artists := site.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.NewArtistForm)
		artists.POST("/create", guard, h.CreateArtist)
		artists.GET("/:id", h.ShowArtist)
	}

	shows := site.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/create", h.NewShowForm)
		shows.POST("/create", guard, h.CreateShow)
	}

	r.NoRoute(flash.SessionMiddleware(opts.SecureCookie), h.NotFound)
	return r, nil
}
