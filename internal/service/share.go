package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"go.uber.org/zap"
)

// DefaultShareTTL is how long a shared link stays valid.
const DefaultShareTTL = 24 * time.Hour

// ShareLink points at an uploaded text export.
type ShareLink struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShareService uploads the text export of a list and returns a presigned link.
type ShareService struct {
	lists    IShoppingService
	uploader ObjectUploader
	ttl      time.Duration
	now      func() time.Time
}

func NewShareService(lists IShoppingService, uploader ObjectUploader, ttl time.Duration) *ShareService {
	if ttl <= 0 {
		ttl = DefaultShareTTL
	}
	return &ShareService{lists: lists, uploader: uploader, ttl: ttl, now: time.Now}
}

// Share publishes the current export of the household's list.
func (s *ShareService) Share(ctx context.Context, household string) (*ShareLink, error) {
	if s == nil || s.lists == nil || s.uploader == nil {
		return nil, ErrNotInitialized
	}

	text, err := s.lists.Export(ctx, household)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("shopping-lists/%s/%s.txt", household, uuid.NewString())
	if err := s.uploader.PutObject(ctx, key, []byte(text), "text/plain; charset=utf-8"); err != nil {
		return nil, fmt.Errorf("failed to upload shopping list: %w", err)
	}

	url, err := s.uploader.GeneratePresignedURL(ctx, key, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to presign shopping list link: %w", err)
	}

	logger.Named("share").Info("shopping list shared", zap.String("household", household), zap.String("key", key))
	return &ShareLink{URL: url, Key: key, ExpiresAt: s.now().Add(s.ttl).UTC()}, nil
}
