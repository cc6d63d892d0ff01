package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/polkiloo/foodmarket/internal/config"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
)

// DishMatchPenalty is subtracted from dish-name scores so restaurant-name matches rank higher.
const DishMatchPenalty = 0.1

var similarity = levenshtein.NewParams()

// Relevance scores text against query in [0, 1]. The score is the best
// similarity of the whole text or of any of its words.
func Relevance(query, text string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	text = strings.ToLower(strings.TrimSpace(text))
	if query == "" || text == "" {
		return 0
	}

	best := levenshtein.Similarity(query, text, similarity)
	for _, word := range strings.Fields(text) {
		if s := levenshtein.Similarity(query, word, similarity); s > best {
			best = s
		}
	}
	return best
}

// Score rates a restaurant by its name and its dishes.
func Score(query string, candidate model.SearchCandidate) float64 {
	best := Relevance(query, candidate.Restaurant.Name)
	for _, dish := range candidate.Dishes {
		if s := Relevance(query, dish) - DishMatchPenalty; s > best {
			best = s
		}
	}
	return best
}

// SearchUseCase ranks restaurants by relevance and pages the result.
type SearchUseCase struct {
	restaurants repository.RestaurantRepository
	cache       repository.SearchCache
	logger      *zap.Logger
	pageSize    int
	maxPageSize int
	now         func() time.Time
	group       singleflight.Group
}

// NewSearchUseCase constructs SearchUseCase.
func NewSearchUseCase(restaurants repository.RestaurantRepository, cache repository.SearchCache, cfg *config.Config, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		restaurants: restaurants,
		cache:       cache,
		logger:      logger.Named("search"),
		pageSize:    cfg.SearchPageSize,
		maxPageSize: cfg.SearchMaxPageSize,
		now:         time.Now,
	}
}

// Search returns one page of matching restaurants. With openNow only restaurants
// open at the current server time are kept and the cache is bypassed.
func (u *SearchUseCase) Search(ctx context.Context, query model.SearchQuery, openNow bool) (*model.SearchResult, error) {
	query = u.normalize(query)
	if openNow {
		now := u.now()
		query.OpenAt = &now
	}
	if query.OpenAt != nil {
		return u.compute(ctx, query)
	}

	key, err := u.cache.Key(ctx, query)
	if err != nil {
		u.logger.Warn("search cache key failed", zap.Error(err))
		return u.compute(ctx, query)
	}
	page, ok, err := u.cache.Get(ctx, key)
	switch {
	case err != nil:
		u.logger.Warn("search cache read failed", zap.String("key", key), zap.Error(err))
	case ok:
		return page, nil
	}

	if key == "" {
		return u.compute(ctx, query)
	}

	// The shared computation outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	ch := u.group.DoChan(key, func() (any, error) {
		result, err := u.compute(shared, query)
		if err != nil {
			return nil, err
		}
		if err := u.cache.Set(shared, key, result); err != nil {
			u.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
		}
		return result, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.SearchResult), nil
	}
}

func (u *SearchUseCase) normalize(query model.SearchQuery) model.SearchQuery {
	query.Text = strings.TrimSpace(query.Text)
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = u.pageSize
	}
	if u.maxPageSize > 0 && query.PageSize > u.maxPageSize {
		query.PageSize = u.maxPageSize
	}
	if query.PageSize <= 0 {
		query.PageSize = 1
	}
	if query.MaxPrice < 0 {
		query.MaxPrice = 0
	}
	return query
}

func (u *SearchUseCase) compute(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	candidates, err := u.restaurants.SearchCandidates(ctx)
	if err != nil {
		return nil, err
	}

	hits := make([]model.ScoredRestaurant, 0, len(candidates))
	for _, c := range candidates {
		if query.OpenAt != nil && !u.isOpen(c.Restaurant, *query.OpenAt) {
			continue
		}
		if query.MaxPrice > 0 && (len(c.Dishes) == 0 || c.MinPrice > query.MaxPrice) {
			continue
		}
		hits = append(hits, model.ScoredRestaurant{Restaurant: c.Restaurant, Score: Score(query.Text, c)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Restaurant.Name != b.Restaurant.Name {
			return a.Restaurant.Name < b.Restaurant.Name
		}
		return a.Restaurant.ID < b.Restaurant.ID
	})

	return paginate(hits, query.Page, query.PageSize), nil
}

func (u *SearchUseCase) isOpen(rest model.Restaurant, at time.Time) bool {
	schedule, err := model.ParseSchedule(rest.OpeningHours)
	if err != nil {
		u.logger.Debug("skipping restaurant with unparsable hours", zap.Int64("restaurant_id", rest.ID), zap.Error(err))
		return false
	}
	return schedule.IsOpen(at)
}

func paginate(hits []model.ScoredRestaurant, page, pageSize int) *model.SearchResult {
	result := &model.SearchResult{Total: len(hits), Page: page, PageSize: pageSize, Items: []model.ScoredRestaurant{}}
	if page-1 >= (len(hits)+pageSize-1)/pageSize {
		return result
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(hits) {
		end = len(hits)
	}
	result.Items = append(result.Items, hits[start:end]...)
	return result
}
