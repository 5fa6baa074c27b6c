package mealplan

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"go.uber.org/zap"
)

// HTTPSource reads the meal plan from another kiosk API server through its
// GET /api/v1/households/:household/meals endpoint.
type HTTPSource struct {
	client *resty.Client
}

// NewHTTPSource creates a source for the server at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Accept", "application/json")
	return &HTTPSource{client: client}
}

type rangeResponse struct {
	Meals model.MealPlan `json:"meals"`
}

// MealPlan fetches the range spanned by dates and keeps only those dates.
func (s *HTTPSource) MealPlan(ctx context.Context, household string, dates []string) (model.MealPlan, error) {
	if len(dates) == 0 {
		return model.MealPlan{}, nil
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	var body rangeResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("household", household).
		SetQueryParams(map[string]string{"from": sorted[0], "to": sorted[len(sorted)-1]}).
		SetResult(&body).
		Get("/api/v1/households/{household}/meals")
	if err != nil {
		logger.Named("mealplan").Warn("meal plan request failed", zap.String("household", household), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode())
	}

	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
	}
	plan := model.MealPlan{}
	for date, day := range body.Meals {
		if wanted[date] {
			plan[date] = day
		}
	}
	return plan, nil
}
