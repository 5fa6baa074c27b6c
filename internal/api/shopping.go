package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"github.com/kioskhub/dashboard/backend/internal/shopping"
	"github.com/kioskhub/dashboard/backend/internal/types"
)

type ShoppingHandler struct {
	lists     service.IShoppingService
	share     service.IShareService
	validator *validator.Validate
	daysAhead int
}

func NewShoppingHandler(lists service.IShoppingService, share service.IShareService, validate *validator.Validate, daysAhead int) *ShoppingHandler {
	if daysAhead <= 0 {
		daysAhead = shopping.DefaultDaysAhead
	}
	return &ShoppingHandler{lists: lists, share: share, validator: validate, daysAhead: daysAhead}
}

// RegisterRoutes mounts the list endpoints under a /households/:household
// group. A non-nil limiter guards regeneration.
func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	list := router.Group("/shopping-list")
	{
		list.GET("", h.GetList)
		list.DELETE("", h.ClearList)
		list.GET("/grouped", h.GetGrouped)
		list.GET("/export", h.Export)
		list.POST("/items", h.AddItem)
		list.POST("/items/:id/toggle", h.ToggleItem)
		list.DELETE("/items/:id", h.DeleteItem)
		list.POST("/share", h.Share)

		if limiter != nil {
			list.POST("/generate", limiter.PerHousehold(), h.Generate)
		} else {
			list.POST("/generate", h.Generate)
		}
	}

	if limiter != nil {
		router.GET("/rate-limits/generate", h.generateLimitStatus(limiter))
	}
}

// generateLimitStatus reports how many regenerations the household has left
// in the current window.
func (h *ShoppingHandler) generateLimitStatus(limiter *middleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		household := c.Param("household")
		if !service.ValidHousehold(household) {
			badRequest(c, service.ErrInvalidHousehold.Error())
			return
		}

		remaining, reset, err := limiter.GetRemainingRequests(c.Request.Context(), household)
		if err != nil {
			respondError(c, err, "Failed to check rate limit")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": reset.Unix(),
			"window":     limiter.Window().String(),
		})
	}
}

func (h *ShoppingHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		badRequest(c, err.Error())
		return
	}

	days := req.DaysAhead
	if days == 0 {
		days = h.daysAhead
	}

	household := c.Param("household")
	list, err := h.lists.Generate(c.Request.Context(), household, days)
	if err != nil {
		respondError(c, err, "Failed to generate shopping list")
		return
	}
	c.JSON(http.StatusOK, types.NewShoppingListResponse(household, list))
}

func (h *ShoppingHandler) GetList(c *gin.Context) {
	household := c.Param("household")
	list, err := h.lists.Get(c.Request.Context(), household)
	if err != nil {
		respondError(c, err, "Failed to load shopping list")
		return
	}
	c.JSON(http.StatusOK, types.NewShoppingListResponse(household, list))
}

func (h *ShoppingHandler) GetGrouped(c *gin.Context) {
	household := c.Param("household")
	groups, err := h.lists.Grouped(c.Request.Context(), household)
	if err != nil {
		respondError(c, err, "Failed to load shopping list")
		return
	}
	c.JSON(http.StatusOK, types.GroupedResponse{Household: household, Groups: groups})
}

func (h *ShoppingHandler) Export(c *gin.Context) {
	text, err := h.lists.Export(c.Request.Context(), c.Param("household"))
	if err != nil {
		respondError(c, err, "Failed to export shopping list")
		return
	}
	c.String(http.StatusOK, text)
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	var req types.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.lists.Add(c.Request.Context(), c.Param("household"), req.Name)
	if err != nil {
		respondError(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	household := c.Param("household")
	list, err := h.lists.Toggle(c.Request.Context(), household, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, types.NewShoppingListResponse(household, list))
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	household := c.Param("household")
	list, err := h.lists.Delete(c.Request.Context(), household, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete item")
		return
	}
	c.JSON(http.StatusOK, types.NewShoppingListResponse(household, list))
}

func (h *ShoppingHandler) ClearList(c *gin.Context) {
	household := c.Param("household")
	list, err := h.lists.Clear(c.Request.Context(), household)
	if err != nil {
		respondError(c, err, "Failed to clear shopping list")
		return
	}
	c.JSON(http.StatusOK, types.NewShoppingListResponse(household, list))
}

func (h *ShoppingHandler) Share(c *gin.Context) {
	if h.share == nil {
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "sharing is not enabled")
		return
	}
	link, err := h.share.Share(c.Request.Context(), c.Param("household"))
	if err != nil {
		respondError(c, err, "Failed to share shopping list")
		return
	}
	c.JSON(http.StatusOK, link)
}
