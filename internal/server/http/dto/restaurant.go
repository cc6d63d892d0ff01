package dto

import (
	"time"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// RestaurantRequest creates a restaurant.
type RestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	OpeningHours string `json:"opening_hours" binding:"required"`
}

// RestaurantUpdateRequest changes any subset of restaurant fields.
type RestaurantUpdateRequest struct {
	Name         *string `json:"name"`
	OpeningHours *string `json:"opening_hours"`
}

// RestaurantResponse is the public view of a restaurant.
type RestaurantResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Name         string    `json:"name"`
	OpeningHours string    `json:"opening_hours"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewRestaurantResponse converts a restaurant.
func NewRestaurantResponse(r model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		OpeningHours: r.OpeningHours,
		Balance:      r.Balance,
		CreatedAt:    r.CreatedAt,
	}
}

// NewRestaurantList converts a slice of restaurants, never returning nil.
func NewRestaurantList(items []model.Restaurant) []RestaurantResponse {
	resp := make([]RestaurantResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, NewRestaurantResponse(r))
	}
	return resp
}

// RestaurantDetailsResponse is a restaurant with its menu.
type RestaurantDetailsResponse struct {
	RestaurantResponse
	Menu []MenuItemResponse `json:"menu"`
}

// NewRestaurantDetailsResponse converts restaurant details.
func NewRestaurantDetailsResponse(d *model.RestaurantDetails) RestaurantDetailsResponse {
	return RestaurantDetailsResponse{
		RestaurantResponse: NewRestaurantResponse(d.Restaurant),
		Menu:               NewMenu(d.Menu),
	}
}

// SearchRequest holds search query parameters.
type SearchRequest struct {
	Query    string `form:"q"`
	Page     *int   `form:"page" binding:"omitempty,min=1"`
	PageSize *int   `form:"page_size" binding:"omitempty,min=1"`
	OpenNow  bool   `form:"open_now"`
	MaxPrice *int64 `form:"max_price" binding:"omitempty,min=1"`
}

// SearchQuery converts request parameters into a domain query.
func (r SearchRequest) SearchQuery() model.SearchQuery {
	q := model.SearchQuery{Text: r.Query}
	if r.Page != nil {
		q.Page = *r.Page
	}
	if r.PageSize != nil {
		q.PageSize = *r.PageSize
	}
	if r.MaxPrice != nil {
		q.MaxPrice = *r.MaxPrice
	}
	return q
}

// SearchHit is one scored restaurant.
type SearchHit struct {
	RestaurantResponse
	Score float64 `json:"score"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Items    []SearchHit `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// NewSearchResponse converts a search result page.
func NewSearchResponse(res *model.SearchResult) SearchResponse {
	resp := SearchResponse{
		Items:    make([]SearchHit, 0, len(res.Items)),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}
	for _, hit := range res.Items {
		resp.Items = append(resp.Items, SearchHit{RestaurantResponse: NewRestaurantResponse(hit.Restaurant), Score: hit.Score})
	}
	return resp
}
