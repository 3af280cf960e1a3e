package handler

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, prices *PriceHandler, news *NewsHandler) {
	p := r.Group("/prices")
	p.GET("/", prices.ListPrices)
	p.GET("/districts/", prices.GetDistricts)
	p.GET("/markets_by_district/", prices.GetMarketsByDistrict)
	p.GET("/market_prices/", prices.GetMarketPrices)
	p.GET("/latest_prices/", prices.GetLatestPrices)
	p.GET("/debug_data/", prices.GetDebugData)
	p.GET("/test_connection/", prices.TestConnection)
	p.GET("/:id/", prices.GetPrice)

	n := r.Group("/news")
	n.GET("/agriculture_news/", news.GetAgricultureNews)
	n.GET("/categories/", news.GetCategories)
	n.GET("/resources/", news.GetResources)

	r.GET("/health", prices.GetHealth)
}
