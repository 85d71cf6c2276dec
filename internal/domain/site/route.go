package site

import (
	"path/filepath"
	"strings"

	"gazette/internal/entity"
)

type RouteKind string

const (
	RouteSeason  RouteKind = "season"
	RouteArticle RouteKind = "article"
)

// Route maps one rendered page to its output path under the public dir.
type Route struct {
	Kind    RouteKind
	Slug    string
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// SeasonRoutes flattens a parsed season into the routes its render emits:
// the season page followed by one page per article in publication order.
func SeasonRoutes(s *entity.Season) []Route {
	routes := make([]Route, 0, len(s.Articles)+1)
	routes = append(routes, Route{
		Kind:    RouteSeason,
		Slug:    s.Slug,
		OutPath: filepath.Join(s.Slug, "index.html"),
	})
	for _, a := range s.Articles {
		routes = append(routes, Route{
			Kind:    RouteArticle,
			Slug:    a.Slug,
			OutPath: filepath.Join(s.Slug, a.Slug, "index.html"),
		})
	}
	return routes
}
