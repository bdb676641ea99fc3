// Package web содержит встроенные шаблоны страниц и статические файлы.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-contrib/multitemplate"

	"fyyur/internal/forms"
)

//go:embed templates static
var files embed.FS

const layout = "templates/layouts/main.html"

// Имена шаблонов для c.HTML.
const (
	PageHome          = "pages/home"
	PageVenues        = "pages/venues"
	PageArtists       = "pages/artists"
	PageShows         = "pages/shows"
	PageSearchVenues  = "pages/search_venues"
	PageSearchArtists = "pages/search_artists"
	PageShowVenue     = "pages/show_venue"
	PageShowArtist    = "pages/show_artist"
	FormNewVenue      = "forms/new_venue"
	FormNewArtist     = "forms/new_artist"
	FormNewShow       = "forms/new_show"
	ErrorBadRequest   = "errors/400"
	ErrorNotFound     = "errors/404"
	ErrorServer       = "errors/500"
)

// NewRenderer собирает по одному набору шаблонов (layout + страница) на каждую страницу.
// funcs дополняют стандартные функции шаблонов (has, join, genreChoices, stateChoices).
func NewRenderer(funcs template.FuncMap) (multitemplate.Render, error) {
	fm := template.FuncMap{
		"has":          has,
		"join":         strings.Join,
		"genreChoices": func() []string { return forms.Genres },
		"stateChoices": func() []string { return forms.States },
	}
	for name, fn := range funcs {
		fm[name] = fn
	}

	r := multitemplate.New()
	for _, dir := range []string{"pages", "forms", "errors"} {
		pages, err := fs.Glob(files, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, page := range pages {
			tmpl, err := template.New(path.Base(layout)).Funcs(fm).ParseFS(files, layout, page)
			if err != nil {
				return nil, fmt.Errorf("parse template %s: %w", page, err)
			}
			r.Add(dir+"/"+strings.TrimSuffix(path.Base(page), ".html"), tmpl)
		}
	}
	return r, nil
}

// Static файлы из каталога static для r.StaticFS.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func has(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
