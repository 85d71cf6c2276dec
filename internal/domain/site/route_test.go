package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gazette/internal/entity"
)

func TestSeasonRoutes(t *testing.T) {
	s := &entity.Season{
		Slug: "s1",
		Articles: []*entity.Article{
			{Slug: "first"},
			{Slug: "second"},
		},
	}

	routes := SeasonRoutes(s)
	require.Len(t, routes, 3)

	require.Equal(t, RouteSeason, routes[0].Kind)
	require.Equal(t, "s1/index.html", routes[0].OutPath)

	require.Equal(t, RouteArticle, routes[1].Kind)
	require.Equal(t, "s1/first/index.html", routes[1].OutPath)
	require.Equal(t, "s1/second/index.html", routes[2].OutPath)
}

func TestRouteString(t *testing.T) {
	r := Route{Kind: RouteArticle, Slug: "first", OutPath: "s1/first/index.html"}
	require.Equal(t, "article slug=first out=s1/first/index.html", r.String())
}
