package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/kioskhub/dashboard/backend/internal/shopping"
	"go.uber.org/zap"
)

// DefaultStorageKey is the per-household suffix lists are stored under.
const DefaultStorageKey = "shopping-list"

// ShoppingService owns the persisted shopping list of every household.
// Mutations of one household's list are serialised within the process;
// writers in other processes still race on a last-writer-wins basis.
type ShoppingService struct {
	store      ListStore
	meals      MealSource
	engine     *shopping.Engine
	storageKey string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewShoppingService wires the service. engine may be nil to use the
// built-in catalog and the wall clock.
func NewShoppingService(store ListStore, meals MealSource, engine *shopping.Engine, storageKey string) *ShoppingService {
	if engine == nil {
		engine = shopping.NewEngine(nil)
	}
	if storageKey == "" {
		storageKey = DefaultStorageKey
	}
	return &ShoppingService{
		store:      store,
		meals:      meals,
		engine:     engine,
		storageKey: storageKey,
		locks:      make(map[string]*sync.Mutex),
	}
}

// StorageKey returns the store key for a household's list.
func (s *ShoppingService) StorageKey(household string) string {
	return household + ":" + s.storageKey
}

func (s *ShoppingService) lock(household string) func() {
	s.mu.Lock()
	l, ok := s.locks[household]
	if !ok {
		l = &sync.Mutex{}
		s.locks[household] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *ShoppingService) check(household string) error {
	if s == nil || s.store == nil {
		return ErrNotInitialized
	}
	if !ValidHousehold(household) {
		return ErrInvalidHousehold
	}
	return nil
}

func (s *ShoppingService) load(ctx context.Context, household string) (*model.ShoppingList, error) {
	list, err := s.store.Load(ctx, s.StorageKey(household))
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}
	if list == nil {
		return model.NewShoppingList(), nil
	}
	if list.Items == nil {
		list.Items = []model.ShoppingListItem{}
	}
	return list, nil
}

func (s *ShoppingService) save(ctx context.Context, household string, list *model.ShoppingList) error {
	if err := s.store.Save(ctx, s.StorageKey(household), list); err != nil {
		return fmt.Errorf("failed to save shopping list: %w", err)
	}
	return nil
}

// mutate runs fn on the household's list under its lock and saves the list
// when fn reports a change.
func (s *ShoppingService) mutate(ctx context.Context, household string, fn func(*model.ShoppingList) bool) (*model.ShoppingList, error) {
	if err := s.check(household); err != nil {
		return nil, err
	}
	unlock := s.lock(household)
	defer unlock()

	list, err := s.load(ctx, household)
	if err != nil {
		return nil, err
	}
	if fn(list) {
		if err := s.save(ctx, household, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Generate rebuilds the household's list from its meal plan, replacing
// whatever was stored before, checked flags and manual items included.
func (s *ShoppingService) Generate(ctx context.Context, household string, daysAhead int) (*model.ShoppingList, error) {
	if err := s.check(household); err != nil {
		return nil, err
	}
	if s.meals == nil {
		return nil, ErrNotInitialized
	}
	unlock := s.lock(household)
	defer unlock()

	dates := s.engine.DateKeys(daysAhead)
	plan, err := s.meals.MealPlan(ctx, household, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal plan: %w", err)
	}

	list := s.engine.GenerateForDates(plan, dates)
	if err := s.save(ctx, household, list); err != nil {
		return nil, err
	}

	logger.Named("shopping").Info("shopping list generated",
		zap.String("household", household),
		zap.Int("days", len(plan)),
		zap.Int("items", len(list.Items)),
	)
	return list, nil
}

// Get returns the stored list, or an empty one if none has been stored.
func (s *ShoppingService) Get(ctx context.Context, household string) (*model.ShoppingList, error) {
	if err := s.check(household); err != nil {
		return nil, err
	}
	return s.load(ctx, household)
}

// Grouped returns the stored list partitioned by aisle.
func (s *ShoppingService) Grouped(ctx context.Context, household string) ([]model.AisleGroup, error) {
	list, err := s.Get(ctx, household)
	if err != nil {
		return nil, err
	}
	return shopping.Group(list, s.engine.Catalog()), nil
}

// Export renders the stored list as a plain-text checklist.
func (s *ShoppingService) Export(ctx context.Context, household string) (string, error) {
	list, err := s.Get(ctx, household)
	if err != nil {
		return "", err
	}
	return shopping.ExportText(list, s.engine.Catalog()), nil
}

// Toggle flips an item's checked flag. Unknown ids are ignored.
func (s *ShoppingService) Toggle(ctx context.Context, household, itemID string) (*model.ShoppingList, error) {
	return s.mutate(ctx, household, func(list *model.ShoppingList) bool {
		return shopping.Toggle(list, itemID)
	})
}

// Add appends a manually entered item.
func (s *ShoppingService) Add(ctx context.Context, household, name string) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	_, err := s.mutate(ctx, household, func(list *model.ShoppingList) bool {
		item = s.engine.AddManual(list, name)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item. Unknown ids are ignored.
func (s *ShoppingService) Delete(ctx context.Context, household, itemID string) (*model.ShoppingList, error) {
	return s.mutate(ctx, household, func(list *model.ShoppingList) bool {
		return shopping.Delete(list, itemID)
	})
}

// Clear empties the list and forgets when it was generated.
func (s *ShoppingService) Clear(ctx context.Context, household string) (*model.ShoppingList, error) {
	return s.mutate(ctx, household, func(list *model.ShoppingList) bool {
		shopping.Clear(list)
		return true
	})
}
