package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsroom/news-api/internal/api/metrics"
	"github.com/newsroom/news-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for the article aggregate.
type ArticleHandler struct {
	articles ports.ArticleService
}

func NewArticleHandler(articles ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// Create handles POST /api/v1/articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article fields"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.articles.Create(c.Request().Context(), ports.ArticleInput{
		Header:    req.Header,
		ShortDesc: req.ShortDesc,
		Text:      req.Text,
		Keywords:  req.Keywords,
	})
	if err != nil {
		return err
	}

	metrics.ArticleOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toArticleResponse(view))
}

// Update handles PUT /api/v1/articles/:id.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Article id"
// @Param        body  body      articleRequest  true  "Article fields"
// @Success      200   {object}  articleResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.articles.Update(c.Request().Context(), c.Param("id"), ports.ArticleInput{
		Header:    req.Header,
		ShortDesc: req.ShortDesc,
		Text:      req.Text,
		Keywords:  req.Keywords,
	})
	if err != nil {
		return err
	}

	metrics.ArticleOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toArticleResponse(view))
}

// Get handles GET /api/v1/articles/:id.
//
// @Summary      Get an article by id
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Article id"
// @Success      200 {object}  articleResponse
// @Failure      404 {object}  map[string]any
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	view, err := h.articles.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(view))
}

// Delete handles DELETE /api/v1/articles/:id. Deleting a missing id still
// returns 204.
//
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      204
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ArticleOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ByAuthor handles GET /api/v1/articles/author/:name. The name must match
// the stored username exactly; an unknown author yields an empty list.
//
// @Summary      List articles by author username
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Author username"
// @Success      200   {array}   articleResponse
// @Router       /articles/author/{name} [get]
func (h *ArticleHandler) ByAuthor(c echo.Context) error {
	views, err := h.articles.FindByAuthor(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	metrics.ArticleSearchesTotal.WithLabelValues("author").Inc()
	return c.JSON(http.StatusOK, toArticleResponses(views))
}

// ByPeriod handles GET /api/v1/articles/period?startDate&endDate with ISO
// dates, inclusive on both ends.
//
// @Summary      List articles published within a period
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        endDate    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200        {array}   articleResponse
// @Failure      400        {object}  map[string]any
// @Router       /articles/period [get]
func (h *ArticleHandler) ByPeriod(c echo.Context) error {
	start, err := time.Parse(dateLayout, c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate must be a valid YYYY-MM-DD date")
	}
	end, err := time.Parse(dateLayout, c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must be a valid YYYY-MM-DD date")
	}

	views, err := h.articles.FindByPeriod(c.Request().Context(), start, end)
	if err != nil {
		return err
	}
	metrics.ArticleSearchesTotal.WithLabelValues("period").Inc()
	return c.JSON(http.StatusOK, toArticleResponses(views))
}

// Search handles GET /api/v1/articles/search?keyword. Matching is
// case-insensitive on the query side.
//
// @Summary      Search articles by keyword
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  true  "Keyword"
// @Success      200      {array}   articleResponse
// @Failure      400      {object}  map[string]any
// @Router       /articles/search [get]
func (h *ArticleHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}

	views, err := h.articles.SearchByKeyword(c.Request().Context(), keyword)
	if err != nil {
		return err
	}
	metrics.ArticleSearchesTotal.WithLabelValues("keyword").Inc()
	return c.JSON(http.StatusOK, toArticleResponses(views))
}
