package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	testhelpers "github.com/polkiloo/foodmarket/internal/test"
)

func seedRestaurants(t *testing.T, f catalogueFixture) (int64, int64) {
	t.Helper()
	ctx := context.Background()
	first, err := f.restaurants.Create(ctx, 1, "Diner", weekdayHours)
	if err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	second, err := f.restaurants.Create(ctx, 2, "Noodle Bar", weekdayHours)
	if err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return first.ID, second.ID
}

func TestMenuUseCaseAdd(t *testing.T) {
	f := newCatalogueFixture()
	uc := f.menuUseCase()
	ctx := context.Background()
	diner, _ := seedRestaurants(t, f)

	item, err := uc.Add(ctx, 1, diner, "  Tomato Soup ", 450)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if item.Dish != "Tomato Soup" || item.Price != 450 || item.RestaurantID != diner {
		t.Fatalf("unexpected item %+v", item)
	}
	if f.cache.Generation != 1 {
		t.Fatalf("expected cache invalidation, generation %d", f.cache.Generation)
	}

	if _, err := uc.Add(ctx, 1, diner, "Tomato Soup", 500); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected duplicate dish error, got %v", err)
	}
}

func TestMenuUseCaseSameDishAcrossRestaurants(t *testing.T) {
	f := newCatalogueFixture()
	ctx := context.Background()
	diner, noodles := seedRestaurants(t, f)
	dish := testhelpers.RandomDish()

	first, err := f.menuUseCase().Add(ctx, 1, diner, dish, 300)
	if err != nil {
		t.Fatalf("add to first restaurant: %v", err)
	}
	second, err := f.menuUseCase().Add(ctx, 2, noodles, dish, 350)
	if err != nil {
		t.Fatalf("expected same dish allowed in another restaurant, got %v", err)
	}
	if first.ID == second.ID || second.RestaurantID != noodles {
		t.Fatalf("unexpected items %+v %+v", first, second)
	}
}

func TestMenuUseCaseAddFailures(t *testing.T) {
	f := newCatalogueFixture()
	uc := f.menuUseCase()
	ctx := context.Background()
	diner, _ := seedRestaurants(t, f)

	cases := []struct {
		name         string
		userID       int64
		restaurantID int64
		dish         string
		price        int64
		want         error
	}{
		{"blank dish", 1, diner, " ", 100, domainErrors.ErrInvalidName},
		{"zero price", 1, diner, "Soup", 0, domainErrors.ErrInvalidPrice},
		{"negative price", 1, diner, "Soup", -10, domainErrors.ErrInvalidPrice},
		{"not owner", 2, diner, "Soup", 100, domainErrors.ErrForbidden},
		{"unknown restaurant", 1, 99, "Soup", 100, domainErrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Add(ctx, tc.userID, tc.restaurantID, tc.dish, tc.price); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(f.menu.Items) != 0 || f.cache.Invalidated != 0 {
		t.Fatalf("failed adds must not store items or invalidate cache")
	}
}

func TestMenuUseCaseList(t *testing.T) {
	f := newCatalogueFixture()
	uc := f.menuUseCase()
	ctx := context.Background()
	diner, bar := seedRestaurants(t, f)

	if _, err := uc.Add(ctx, 1, diner, "Soup", 300); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := uc.Add(ctx, 2, bar, "Ramen", 900); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	items, err := uc.List(ctx, diner)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(items) != 1 || items[0].Dish != "Soup" {
		t.Fatalf("unexpected menu %+v", items)
	}

	if _, err := uc.List(ctx, 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for unknown restaurant, got %v", err)
	}
}

func TestMenuUseCaseUpdate(t *testing.T) {
	f := newCatalogueFixture()
	uc := f.menuUseCase()
	ctx := context.Background()
	diner, bar := seedRestaurants(t, f)

	item, err := uc.Add(ctx, 1, diner, "Soup", 300)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	foreign, err := uc.Add(ctx, 2, bar, "Ramen", 900)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	updated, err := uc.Update(ctx, 1, diner, item.ID, model.MenuItemUpdate{Dish: ptr(" Bisque "), Price: ptr(int64(650))})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Dish != "Bisque" || updated.Price != 650 {
		t.Fatalf("unexpected update result %+v", updated)
	}

	unchanged, err := uc.Update(ctx, 1, diner, item.ID, model.MenuItemUpdate{})
	if err != nil || unchanged.Dish != "Bisque" {
		t.Fatalf("empty update must return current item, got %+v %v", unchanged, err)
	}

	cases := []struct {
		name   string
		userID int64
		rest   int64
		itemID int64
		update model.MenuItemUpdate
		want   error
	}{
		{"item of another restaurant", 1, diner, foreign.ID, model.MenuItemUpdate{Price: ptr(int64(1))}, domainErrors.ErrNotFound},
		{"unknown item", 1, diner, 99, model.MenuItemUpdate{Price: ptr(int64(1))}, domainErrors.ErrNotFound},
		{"not owner", 2, diner, item.ID, model.MenuItemUpdate{Price: ptr(int64(1))}, domainErrors.ErrForbidden},
		{"bad price", 1, diner, item.ID, model.MenuItemUpdate{Price: ptr(int64(0))}, domainErrors.ErrInvalidPrice},
		{"blank dish", 1, diner, item.ID, model.MenuItemUpdate{Dish: ptr("")}, domainErrors.ErrInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Update(ctx, tc.userID, tc.rest, tc.itemID, tc.update); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if f.cache.Generation != 3 {
		t.Fatalf("expected three invalidations, got %d", f.cache.Generation)
	}
}

func TestMenuUseCaseDelete(t *testing.T) {
	f := newCatalogueFixture()
	uc := f.menuUseCase()
	ctx := context.Background()
	diner, bar := seedRestaurants(t, f)

	item, err := uc.Add(ctx, 1, diner, "Soup", 300)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if err := uc.Delete(ctx, 2, bar, item.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found through another restaurant, got %v", err)
	}
	if err := uc.Delete(ctx, 2, diner, item.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := uc.Delete(ctx, 1, diner, item.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, ok := f.menu.Items[item.ID]; ok {
		t.Fatalf("expected item to be removed")
	}
	if err := uc.Delete(ctx, 1, diner, item.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if f.cache.Generation != 2 {
		t.Fatalf("expected two invalidations, got %d", f.cache.Generation)
	}
}
