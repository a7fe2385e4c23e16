package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitloop/habitloop/models"
	"github.com/habitloop/habitloop/utils"
)

const habitCachePrefix = "cache:habits:"

// HabitController handles habit CRUD endpoints.
type HabitController struct {
	db *gorm.DB
}

// NewHabitController creates a new controller instance.
func NewHabitController(db *gorm.DB) *HabitController {
	return &HabitController{db: db}
}

// CreateHabit validates and stores a new habit for the authenticated user.
func (h *HabitController) CreateHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Name         string  `json:"name" binding:"required"`
		Icon         string  `json:"icon" binding:"required"`
		Color        string  `json:"color" binding:"required"`
		Category     string  `json:"category" binding:"required"`
		WeeklyGoal   *int    `json:"weekly_goal"`
		ReminderTime *string `json:"reminder_time"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	name := utils.Sanitize(trimmed(req.Name))
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40011, "name must not be empty")
		return
	}
	if !models.Icon(req.Icon).Valid() {
		utils.Error(ctx, http.StatusBadRequest, 40012, "unknown icon")
		return
	}
	if !models.Color(req.Color).Valid() {
		utils.Error(ctx, http.StatusBadRequest, 40013, "unknown color")
		return
	}
	if !models.Category(req.Category).Valid() {
		utils.Error(ctx, http.StatusBadRequest, 40014, "unknown category")
		return
	}

	goal := 7
	if req.WeeklyGoal != nil {
		goal = *req.WeeklyGoal
	}
	if goal < 1 || goal > 7 {
		utils.Error(ctx, http.StatusBadRequest, 40015, "weekly goal must be between 1 and 7")
		return
	}
	if req.ReminderTime != nil && *req.ReminderTime != "" && !validReminderTime(*req.ReminderTime) {
		utils.Error(ctx, http.StatusBadRequest, 40016, "reminder time must be HH:MM")
		return
	}

	habit := models.Habit{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		Icon:         req.Icon,
		Color:        req.Color,
		Category:     req.Category,
		WeeklyGoal:   goal,
		ReminderTime: req.ReminderTime,
	}
	if err := h.db.Create(&habit).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to create habit")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, habit)
}

// ListHabits returns all habits of the user with their completions attached.
func (h *HabitController) ListHabits(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	cacheKey := habitCachePrefix + itoa(userID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var habits []models.Habit
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Find(&habits).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to list habits")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"habits": habits}}
	utils.CacheSetJSON(cacheKey, wrapper, 10*time.Minute)
	utils.Success(ctx, gin.H{"habits": habits})
}

// GetHabit returns a single habit with completions.
func (h *HabitController) GetHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var habit models.Habit
	err := h.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		First(&habit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	utils.Success(ctx, habit)
}

// UpdateHabit applies a partial update. Each present field is validated
// before anything is written, so a rejected request changes nothing.
func (h *HabitController) UpdateHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		Name         *string `json:"name"`
		Icon         *string `json:"icon"`
		Color        *string `json:"color"`
		Category     *string `json:"category"`
		WeeklyGoal   *int    `json:"weekly_goal"`
		ReminderTime *string `json:"reminder_time"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	habit, err := findOwnedHabit(h.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := utils.Sanitize(trimmed(*req.Name))
		if name == "" {
			utils.Error(ctx, http.StatusBadRequest, 40011, "name must not be empty")
			return
		}
		updates["name"] = name
	}
	if req.Icon != nil {
		if !models.Icon(*req.Icon).Valid() {
			utils.Error(ctx, http.StatusBadRequest, 40012, "unknown icon")
			return
		}
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		if !models.Color(*req.Color).Valid() {
			utils.Error(ctx, http.StatusBadRequest, 40013, "unknown color")
			return
		}
		updates["color"] = *req.Color
	}
	if req.Category != nil {
		if !models.Category(*req.Category).Valid() {
			utils.Error(ctx, http.StatusBadRequest, 40014, "unknown category")
			return
		}
		updates["category"] = *req.Category
	}
	if req.WeeklyGoal != nil {
		if *req.WeeklyGoal < 1 || *req.WeeklyGoal > 7 {
			utils.Error(ctx, http.StatusBadRequest, 40015, "weekly goal must be between 1 and 7")
			return
		}
		updates["weekly_goal"] = *req.WeeklyGoal
	}
	if req.ReminderTime != nil {
		if *req.ReminderTime != "" && !validReminderTime(*req.ReminderTime) {
			utils.Error(ctx, http.StatusBadRequest, 40016, "reminder time must be HH:MM")
			return
		}
		if *req.ReminderTime == "" {
			updates["reminder_time"] = nil
		} else {
			updates["reminder_time"] = *req.ReminderTime
		}
	}

	if len(updates) > 0 {
		if err := h.db.Model(habit).Updates(updates).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to update habit")
			return
		}
		utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	}

	utils.Success(ctx, habit)
}

// DeleteHabit removes a habit and all its completions.
func (h *HabitController) DeleteHabit(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(h.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		return tx.Delete(habit).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to delete habit")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, gin.H{"deleted": habit.ID})
}
