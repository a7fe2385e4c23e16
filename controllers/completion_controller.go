package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitloop/habitloop/dates"
	"github.com/habitloop/habitloop/models"
	"github.com/habitloop/habitloop/utils"
)

var errAlreadyCompleted = errors.New("habit already completed for this date")

// CompletionController handles marking and unmarking daily progress.
type CompletionController struct {
	db    *gorm.DB
	today *dates.TodayCache
}

// NewCompletionController creates a new controller instance.
func NewCompletionController(db *gorm.DB) *CompletionController {
	return &CompletionController{
		db:    db,
		today: dates.NewTodayCache(time.Now, time.Minute),
	}
}

// Toggle flips the completion state of a habit for a date (default today).
// Removing a completion removes its note with it; both changes ride the same
// transaction so the two are never observed apart.
func (c *CompletionController) Toggle(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(c.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	var req struct {
		Date string `json:"date"`
		Note string `json:"note"`
	}
	// Body is optional; an empty body toggles today without a note.
	_ = ctx.ShouldBindJSON(&req)

	date := req.Date
	if date == "" {
		date = c.today.Today()
	}
	if !dates.Valid(date) {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid date, use YYYY-MM-DD")
		return
	}

	completed := false
	err = c.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Completion
		err := tx.Where("habit_id = ? AND date = ?", habit.ID, date).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		completed = true
		record := models.Completion{
			ID:      uuid.NewString(),
			HabitID: habit.ID,
			Date:    date,
			Note:    utils.Sanitize(trimmed(req.Note)),
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to toggle completion")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, gin.H{
		"habit_id":  habit.ID,
		"date":      date,
		"completed": completed,
	})
}

// Create marks a habit complete for a date. A duplicate (habit, date) pair is
// a conflict; callers wanting flip semantics should use Toggle instead.
func (c *CompletionController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(c.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
		Note string `json:"note"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "date is required")
		return
	}
	if !dates.Valid(req.Date) {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid date, use YYYY-MM-DD")
		return
	}

	record := models.Completion{
		ID:      uuid.NewString(),
		HabitID: habit.ID,
		Date:    req.Date,
		Note:    utils.Sanitize(trimmed(req.Note)),
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Completion
		if err := tx.Where("habit_id = ? AND date = ?", habit.ID, req.Date).First(&existing).Error; err == nil {
			return errAlreadyCompleted
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyCompleted) {
			utils.Error(ctx, http.StatusConflict, 40920, err.Error())
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to create completion")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, record)
}

// Delete removes the completion for ?date=YYYY-MM-DD.
func (c *CompletionController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(c.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	date := ctx.Query("date")
	if date == "" {
		utils.Error(ctx, http.StatusBadRequest, 40022, "date query parameter is required")
		return
	}
	if !dates.Valid(date) {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid date, use YYYY-MM-DD")
		return
	}

	res := c.db.Where("habit_id = ? AND date = ?", habit.ID, date).Delete(&models.Completion{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to delete completion")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40420, "completion not found")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, gin.H{"deleted": date})
}

// SetNote upserts the note of an existing completion. Dates without a
// completion cannot carry a note.
func (c *CompletionController) SetNote(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(c.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
		Note string `json:"note"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "date is required")
		return
	}
	if !dates.Valid(req.Date) {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid date, use YYYY-MM-DD")
		return
	}

	var completion models.Completion
	if err := c.db.Where("habit_id = ? AND date = ?", habit.ID, req.Date).First(&completion).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusBadRequest, 40023, "date is not completed")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load completion")
		return
	}

	completion.Note = utils.Sanitize(trimmed(req.Note))
	if err := c.db.Save(&completion).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to save note")
		return
	}

	utils.InvalidateByPrefix(habitCachePrefix + itoa(userID))
	utils.Success(ctx, completion)
}

// History returns a habit's completions, optionally limited to a date range,
// newest first, with limit/offset pagination.
func (c *CompletionController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habit, err := findOwnedHabit(c.db, ctx.Param("id"), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	limit := 100
	offset := 0
	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			utils.Error(ctx, http.StatusBadRequest, 40024, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}
	if v := ctx.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.Error(ctx, http.StatusBadRequest, 40025, "offset must be non-negative")
			return
		}
		offset = n
	}

	start := ctx.Query("start")
	end := ctx.Query("end")
	if (start != "" && !dates.Valid(start)) || (end != "" && !dates.Valid(end)) {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid date, use YYYY-MM-DD")
		return
	}

	query := c.db.Model(&models.Completion{}).Where("habit_id = ?", habit.ID)
	if start != "" && end != "" {
		query = query.Where("date >= ? AND date <= ?", start, end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to count history")
		return
	}

	var completions []models.Completion
	if err := query.Order("date DESC").Offset(offset).Limit(limit).Find(&completions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to fetch history")
		return
	}

	utils.Success(ctx, gin.H{
		"completions": completions,
		"pagination": gin.H{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}
