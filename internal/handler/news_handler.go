package handler

import (
	"context"
	"log/slog"
	"net/http"

	"krishiapi/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsAggregator interface {
	Aggregate(ctx context.Context, category string) ([]news.Item, error)
}

type NewsHandler struct {
	aggregator NewsAggregator
	source     string
}

func NewNewsHandler(aggregator NewsAggregator, source string) *NewsHandler {
	return &NewsHandler{aggregator: aggregator, source: source}
}

func (h *NewsHandler) GetAgricultureNews(c *gin.Context) {
	category := c.DefaultQuery("category", string(news.CategoryAll))

	items, err := h.aggregator.Aggregate(c.Request.Context(), category)
	if err != nil {
		slog.Error("error parsing news feed", "source", h.source, "error", err)
		c.JSON(http.StatusInternalServerError, NewsErrorResponse{
			Error:   "Unable to fetch news from " + h.source,
			Message: err.Error(),
		})
		return
	}

	res := make([]NewsItemResponse, len(items))
	for i, it := range items {
		res[i] = toNewsItemResponse(it)
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetCategories(c *gin.Context) {
	categories := news.Categories()

	res := make([]NewsCategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = NewsCategoryResponse{
			ID:     string(cat.ID),
			NameEn: cat.NameEn,
			NameGu: cat.NameGu,
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetResources(c *gin.Context) {
	resources := news.Resources()

	res := make([]ResourceResponse, len(resources))
	for i, r := range resources {
		res[i] = ResourceResponse{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
		}
	}

	c.JSON(http.StatusOK, res)
}
