package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"github.com/kioskhub/dashboard/backend/internal/types"
)

type MealPlanHandler struct {
	plans     service.IMealPlanService
	validator *validator.Validate
}

func NewMealPlanHandler(plans service.IMealPlanService, validate *validator.Validate) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, validator: validate}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.PUT("/:date", h.ReplaceDay)
		meals.DELETE("/:date", h.DeleteDay)
	}
}

func (h *MealPlanHandler) ListMeals(c *gin.Context) {
	var q types.MealRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}
	if err := h.validator.Struct(q); err != nil {
		badRequest(c, "from and to must be dates in YYYY-MM-DD form")
		return
	}

	household := c.Param("household")
	plan, err := h.plans.Range(c.Request.Context(), household, q.From, q.To)
	if err != nil {
		respondError(c, err, "Failed to load meal plan")
		return
	}
	c.JSON(http.StatusOK, types.MealPlanResponse{Household: household, Meals: plan})
}

func (h *MealPlanHandler) ReplaceDay(c *gin.Context) {
	var req types.ReplaceDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		badRequest(c, err.Error())
		return
	}

	household, date := c.Param("household"), c.Param("date")
	if err := h.plans.ReplaceDay(c.Request.Context(), household, date, req.Categories); err != nil {
		respondError(c, err, "Failed to save meal plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan updated", "household": household, "date": date})
}

func (h *MealPlanHandler) DeleteDay(c *gin.Context) {
	household, date := c.Param("household"), c.Param("date")
	if err := h.plans.DeleteDay(c.Request.Context(), household, date); err != nil {
		respondError(c, err, "Failed to delete meal plan")
		return
	}
	c.Status(http.StatusNoContent)
}
