package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/mocks"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareUploadsExport(t *testing.T) {
	ctx := context.Background()
	lists := new(mocks.MockShoppingService)
	lists.On("Export", mock.Anything, "home").Return("🥛 Dairy & Eggs\n- [ ] 3 egg\n", nil)

	uploader := new(mocks.MockUploader)
	uploader.On("PutObject", mock.Anything,
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "shopping-lists/home/") && strings.HasSuffix(key, ".txt")
		}),
		[]byte("🥛 Dairy & Eggs\n- [ ] 3 egg\n"),
		"text/plain; charset=utf-8",
	).Return(nil)
	uploader.On("GeneratePresignedURL", mock.Anything, mock.AnythingOfType("string"), time.Hour).
		Return("https://bucket.example/list.txt?sig=abc", nil)

	svc := service.NewShareService(lists, uploader, time.Hour)
	link, err := svc.Share(ctx, "home")
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.example/list.txt?sig=abc", link.URL)
	assert.True(t, strings.HasPrefix(link.Key, "shopping-lists/home/"))
	assert.WithinDuration(t, time.Now().Add(time.Hour), link.ExpiresAt, time.Minute)
	uploader.AssertExpectations(t)
}

func TestShareErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	lists := new(mocks.MockShoppingService)
	lists.On("Export", mock.Anything, "home").Return("", nil)

	uploader := new(mocks.MockUploader)
	uploader.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

	_, err := service.NewShareService(lists, uploader, 0).Share(ctx, "home")
	assert.ErrorIs(t, err, boom)

	bad := new(mocks.MockShoppingService)
	bad.On("Export", mock.Anything, "BAD").Return("", service.ErrInvalidHousehold)
	_, err = service.NewShareService(bad, uploader, 0).Share(ctx, "BAD")
	assert.ErrorIs(t, err, service.ErrInvalidHousehold)

	_, err = service.NewShareService(lists, nil, 0).Share(ctx, "home")
	assert.ErrorIs(t, err, service.ErrNotInitialized)
}
