package service

import (
	"context"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
)

// ListStore persists one shopping list per storage key. Load returns a nil
// list and no error when nothing has been stored under the key yet.
type ListStore interface {
	Load(ctx context.Context, key string) (*model.ShoppingList, error)
	Save(ctx context.Context, key string, list *model.ShoppingList) error
}

// MealSource supplies the planned meals for the given date keys. Dates with
// nothing planned are simply absent from the result.
type MealSource interface {
	MealPlan(ctx context.Context, household string, dates []string) (model.MealPlan, error)
}

// MealPlanStore is a MealSource that can also be written to.
type MealPlanStore interface {
	MealSource
	ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error
	DeleteDay(ctx context.Context, household, date string) error
	Range(ctx context.Context, household, from, to string) (model.MealPlan, error)
}

// ObjectUploader stores exported lists and hands out temporary links to them.
type ObjectUploader interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// IShoppingService defines the interface for shopping list operations
type IShoppingService interface {
	Generate(ctx context.Context, household string, daysAhead int) (*model.ShoppingList, error)
	Get(ctx context.Context, household string) (*model.ShoppingList, error)
	Grouped(ctx context.Context, household string) ([]model.AisleGroup, error)
	Export(ctx context.Context, household string) (string, error)
	Toggle(ctx context.Context, household, itemID string) (*model.ShoppingList, error)
	Add(ctx context.Context, household, name string) (*model.ShoppingListItem, error)
	Delete(ctx context.Context, household, itemID string) (*model.ShoppingList, error)
	Clear(ctx context.Context, household string) (*model.ShoppingList, error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	ReplaceDay(ctx context.Context, household, date string, day model.DayPlan) error
	DeleteDay(ctx context.Context, household, date string) error
	Range(ctx context.Context, household, from, to string) (model.MealPlan, error)
}

// IShareService defines the interface for publishing an exported list
type IShareService interface {
	Share(ctx context.Context, household string) (*ShareLink, error)
}
