package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"krishiapi/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	latestPricesLimit = 10
	sampleSize        = 5

	// marketPricesOffsetDays is how far back the second date of the
	// market_prices window lies.
	marketPricesOffsetDays = 3
)

type PriceStore interface {
	ListPrices(q model.PriceQuery) ([]model.Price, error)
	GetPriceByID(id int64) (*model.Price, error)
	GetDistricts() ([]string, error)
	GetMarketsByDistrict(district string) ([]string, error)
	GetMarketPrices(market string, dates []time.Time) ([]model.Price, error)
	GetLatestPrices(limit int) ([]model.Price, error)
	GetPriceTotal() (int, error)
	GetSample(n int) (*model.PriceSample, error)
}

type PriceHandler struct {
	repository PriceStore
	location   *time.Location
	now        func() time.Time
}

func NewPriceHandler(repository PriceStore, location *time.Location) *PriceHandler {
	if location == nil {
		location = time.Local
	}
	return &PriceHandler{repository: repository, location: location, now: time.Now}
}

func (h *PriceHandler) today() time.Time {
	y, m, d := h.now().In(h.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (h *PriceHandler) ListPrices(c *gin.Context) {
	q := model.PriceQuery{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Limit:    getQueryLimit(c),
		Offset:   getQueryOffset(c),
	}

	prices, err := h.repository.ListPrices(q)
	if err != nil {
		slog.Error("error listing prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toPriceResponses(prices))
}

func (h *PriceHandler) GetPrice(c *gin.Context) {
	id := c.Param("id")

	priceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid price id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price id"})
		return
	}

	price, err := h.repository.GetPriceByID(priceID)
	if err != nil {
		slog.Error("error fetching price", "error", err, "price_id", priceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if price == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price not found"})
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(*price))
}

func (h *PriceHandler) GetDistricts(c *gin.Context) {
	districts, err := h.repository.GetDistricts()
	if err != nil {
		slog.Error("error fetching districts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, sortedUnique(districts))
}

func (h *PriceHandler) GetMarketsByDistrict(c *gin.Context) {
	district := c.Query("district")
	if district == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a district parameter"})
		return
	}

	markets, err := h.repository.GetMarketsByDistrict(district)
	if err != nil {
		slog.Error("error fetching markets", "error", err, "district", district)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, sortedUnique(markets))
}

// GetMarketPrices returns a market's rows for today and for the day
// marketPricesOffsetDays earlier.
func (h *PriceHandler) GetMarketPrices(c *gin.Context) {
	market := c.Query("market")
	if market == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a market parameter"})
		return
	}

	today := h.today()
	offsetDate := today.AddDate(0, 0, -marketPricesOffsetDays)

	prices, err := h.repository.GetMarketPrices(market, []time.Time{today, offsetDate})
	if err != nil {
		slog.Error("error fetching market prices", "error", err, "market", market)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toPriceResponses(prices))
}

func (h *PriceHandler) GetLatestPrices(c *gin.Context) {
	prices, err := h.repository.GetLatestPrices(latestPricesLimit)
	if err != nil {
		slog.Error("error fetching latest prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if len(prices) > latestPricesLimit {
		prices = prices[:latestPricesLimit]
	}

	c.JSON(http.StatusOK, toPriceResponses(prices))
}

func (h *PriceHandler) GetDebugData(c *gin.Context) {
	sample, err := h.repository.GetSample(sampleSize)
	if err != nil {
		slog.Error("error fetching sample data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if sample == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No price records available"})
		return
	}

	c.JSON(http.StatusOK, DebugDataResponse{
		SampleRecord: SampleRecordResponse{
			District:  sample.Record.District,
			Market:    sample.Record.Market,
			Commodity: sample.Record.Commodity,
		},
		SampleDistricts: sample.Districts,
		SampleMarkets:   sample.Markets,
	})
}

func (h *PriceHandler) TestConnection(c *gin.Context) {
	count, err := h.repository.GetPriceTotal()
	if err != nil {
		slog.Error("error counting prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Connected successfully. Found %d records in database.", count),
	})
}

func (h *PriceHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetPriceTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func sortedUnique(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []string{}
	}
	return out
}
