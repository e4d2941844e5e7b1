package seoengine

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// apiResponse is the JSON envelope for every API endpoint.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// postResponse is the payload of the single-post endpoint.
type postResponse struct {
	Post    Document   `json:"post"`
	Related []Document `json:"related"`
	JsonLD  string     `json:"jsonLd"`
}

func (a *App) handleListPosts(c echo.Context) error {
	docs := a.Repo.Load(c.Request().Context())
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: docs})
}

func (a *App) handlePost(c echo.Context) error {
	docs := a.Repo.Load(c.Request().Context())
	slug := c.Param("slug")
	for _, doc := range docs {
		if doc.Slug == slug {
			return c.JSON(http.StatusOK, apiResponse{Success: true, Data: postResponse{
				Post:    doc,
				Related: RelatedDocuments(doc, docs),
				JsonLD:  BlogPostingJsonLD(doc, a.Config),
			}})
		}
	}
	return c.JSON(http.StatusNotFound, apiResponse{Success: false, Error: "post not found"})
}

// handleSEOValidate returns the full validation report, or a single
// document's readability result when a slug query parameter is supplied.
// An unknown slug yields the sentinel result, not an error.
func (a *App) handleSEOValidate(c echo.Context) error {
	docs := a.Repo.Load(c.Request().Context())
	if slug := c.QueryParam("slug"); slug != "" {
		for _, doc := range docs {
			if doc.Slug == slug {
				return c.JSON(http.StatusOK, apiResponse{Success: true, Data: ScoreReadability(doc)})
			}
		}
		return c.JSON(http.StatusOK, apiResponse{Success: true, Data: NotFoundReadability()})
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: ValidateSEO(docs)})
}

func (a *App) handleReadability(c echo.Context) error {
	doc, ok := a.Repo.GetBySlug(c.Request().Context(), c.Param("slug"))
	if !ok {
		return c.JSON(http.StatusNotFound, apiResponse{Success: false, Error: "post not found"})
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: ScoreReadability(doc)})
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Repo.Load(c.Request().Context()))
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Repo.Load(c.Request().Context()))
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK,
		"User-agent: *\nAllow: /\n\nSitemap: "+strings.TrimRight(a.Config.URL, "/")+"/sitemap.xml\n")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}
	if code >= 500 {
		a.logger.Error("server error", "err", err, "uri", c.Request().RequestURI)
	}
	_ = c.JSON(code, apiResponse{Success: false, Error: message})
}
