package handler

import (
	"krishiapi/internal/model"
	"krishiapi/pkg/news"
)

const dateLayout = "2006-01-02"

type PriceResponse struct {
	ID          int64  `json:"id"`
	Commodity   string `json:"commodity"`
	Market      string `json:"market"`
	District    string `json:"district"`
	State       string `json:"state"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
	ArrivalDate string `json:"arrival_date"`
}

type SampleRecordResponse struct {
	District  string `json:"district"`
	Market    string `json:"market"`
	Commodity string `json:"commodity"`
}

type DebugDataResponse struct {
	SampleRecord    SampleRecordResponse `json:"sample_record"`
	SampleDistricts []string             `json:"sample_districts"`
	SampleMarkets   []string             `json:"sample_markets"`
}

type SourceResponse struct {
	Name string `json:"name"`
}

type NewsItemResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Source      SourceResponse `json:"source"`
	PublishedAt string         `json:"publishedAt"`
	URLToImage  *string        `json:"urlToImage"`
	Category    string         `json:"category"`
}

type NewsCategoryResponse struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameGu string `json:"name_gu"`
}

type ResourceResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type NewsErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toPriceResponse(p model.Price) PriceResponse {
	return PriceResponse{
		ID:          p.ID,
		Commodity:   p.Commodity,
		Market:      p.Market,
		District:    p.District,
		State:       p.State,
		MinPrice:    p.MinPrice.StringFixed(2),
		MaxPrice:    p.MaxPrice.StringFixed(2),
		ModalPrice:  p.ModalPrice.StringFixed(2),
		ArrivalDate: p.ArrivalDate.Format(dateLayout),
	}
}

func toPriceResponses(prices []model.Price) []PriceResponse {
	res := make([]PriceResponse, len(prices))
	for i, p := range prices {
		res[i] = toPriceResponse(p)
	}
	return res
}

func toNewsItemResponse(it news.Item) NewsItemResponse {
	return NewsItemResponse{
		Title:       it.Title,
		Description: it.Description,
		URL:         it.URL,
		Source:      SourceResponse{Name: it.SourceName},
		PublishedAt: it.PublishedAt,
		URLToImage:  it.ImageURL,
		Category:    string(it.Category),
	}
}
