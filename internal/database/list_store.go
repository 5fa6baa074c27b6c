package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormListStore keeps shopping lists in the shopping_lists table.
type GormListStore struct {
	db *gorm.DB
}

func NewGormListStore(db *gorm.DB) *GormListStore {
	return &GormListStore{db: db}
}

func (s *GormListStore) Load(ctx context.Context, key string) (*model.ShoppingList, error) {
	var rec model.StoredShoppingList
	err := s.db.WithContext(ctx).First(&rec, "storage_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", key, err)
	}

	items := []model.ShoppingListItem(rec.Items)
	if items == nil {
		items = []model.ShoppingListItem{}
	}
	return &model.ShoppingList{Items: items, LastGenerated: rec.LastGenerated}, nil
}

func (s *GormListStore) Save(ctx context.Context, key string, list *model.ShoppingList) error {
	rec := model.StoredShoppingList{
		StorageKey:    key,
		Items:         model.ItemList(list.Items),
		LastGenerated: list.LastGenerated,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "last_generated", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save list %s: %w", key, err)
	}
	return nil
}

// RedisKeyPrefix namespaces list keys in redis.
const RedisKeyPrefix = "kiosk:shopping:"

// RedisListStore keeps each list as a JSON string value.
type RedisListStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListStore creates a store. A zero ttl keeps lists forever.
func NewRedisListStore(client *redis.Client, ttl time.Duration) *RedisListStore {
	return &RedisListStore{client: client, ttl: ttl}
}

func (s *RedisListStore) Load(ctx context.Context, key string) (*model.ShoppingList, error) {
	data, err := s.client.Get(ctx, RedisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", key, err)
	}

	var list model.ShoppingList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode list %s: %w", key, err)
	}
	return &list, nil
}

func (s *RedisListStore) Save(ctx context.Context, key string, list *model.ShoppingList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode list %s: %w", key, err)
	}
	if err := s.client.Set(ctx, RedisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save list %s: %w", key, err)
	}
	return nil
}

// MemoryListStore keeps lists in process memory. Lists are copied on the way
// in and out so callers never share state with the store.
type MemoryListStore struct {
	mu    sync.RWMutex
	lists map[string]*model.ShoppingList
}

func NewMemoryListStore() *MemoryListStore {
	return &MemoryListStore{lists: make(map[string]*model.ShoppingList)}
}

func (s *MemoryListStore) Load(_ context.Context, key string) (*model.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists[key].Clone(), nil
}

func (s *MemoryListStore) Save(_ context.Context, key string, list *model.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = list.Clone()
	return nil
}
