package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/habitloop/habitloop/dates"
	"github.com/habitloop/habitloop/models"
	"github.com/habitloop/habitloop/tracker"
	"github.com/habitloop/habitloop/utils"
)

// StatsController exposes the derived statistics: the cross-habit summary,
// the calendar heatmap and per-habit history figures.
type StatsController struct {
	db    *gorm.DB
	today *dates.TodayCache
}

// NewStatsController creates a new controller instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		db:    db,
		today: dates.NewTodayCache(time.Now, time.Minute),
	}
}

// Summary returns today's completion counts, weekly rate, streaks, lifetime
// totals and perfect days across all of the user's habits.
func (s *StatsController) Summary(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habits, err := loadAggregates(s.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load habits")
		return
	}

	utils.Success(ctx, tracker.Summarize(habits, s.today.Today()))
}

// Heatmap returns the rolling 365-day completion intensity grid, grouped
// into week columns ready for rendering.
func (s *StatsController) Heatmap(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	habits, err := loadAggregates(s.db, userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load habits")
		return
	}

	days := tracker.Heatmap(habits, s.today.Today())
	utils.Success(ctx, gin.H{
		"days":  days,
		"weeks": tracker.HeatmapWeeks(days),
	})
}

// HabitStats returns one habit's lifetime figures plus a 30-day calendar:
// the history view.
func (s *StatsController) HabitStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var habit models.Habit
	err := s.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).
		Preload("Completions").
		First(&habit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "habit not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to get habit")
		return
	}

	agg := toAggregate(&habit)
	today := s.today.Today()
	completed := agg.CompletedDates()

	type calendarDay struct {
		Date      string `json:"date"`
		DayName   string `json:"day_name"`
		Completed bool   `json:"completed"`
	}
	calendar := make([]calendarDay, 0, 30)
	for _, d := range dates.Window(today, 30) {
		calendar = append(calendar, calendarDay{
			Date:      d,
			DayName:   dates.DayName(d),
			Completed: agg.Completed(d),
		})
	}

	weekCount, weekRatio := agg.WeeklyProgress(today)

	utils.Success(ctx, gin.H{
		"habit_id":          habit.ID,
		"total_completions": agg.Len(),
		"current_streak":    tracker.CurrentStreak(completed, today),
		"best_streak":       tracker.BestStreak(completed),
		"weekly_count":      weekCount,
		"weekly_ratio":      weekRatio,
		"calendar":          calendar,
	})
}
