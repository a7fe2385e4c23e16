package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/habitloop/habitloop/dates"
	"github.com/habitloop/habitloop/models"
	"github.com/habitloop/habitloop/tracker"
)

func getUserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get("user_id")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case float64:
		return uint(id), true
	}
	return 0, false
}

// findOwnedHabit loads a habit by id scoped to its owner. A habit belonging
// to someone else is indistinguishable from a missing one.
func findOwnedHabit(db *gorm.DB, id string, userID uint) (*models.Habit, error) {
	var habit models.Habit
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&habit).Error
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// toAggregate converts a habit row plus its completion rows into the
// in-memory aggregate the tracker package computes over.
func toAggregate(h *models.Habit) *tracker.Habit {
	completed := make([]string, 0, len(h.Completions))
	notes := map[string]string{}
	for _, c := range h.Completions {
		completed = append(completed, c.Date)
		if c.Note != "" {
			notes[c.Date] = c.Note
		}
	}

	agg := tracker.Restore(h.ID, h.Name, completed, notes)
	agg.Icon = h.Icon
	agg.Color = h.Color
	agg.Category = h.Category
	agg.WeeklyGoal = h.WeeklyGoal
	if h.ReminderTime != nil {
		agg.ReminderTime = *h.ReminderTime
	}
	agg.CreatedAt = h.CreatedAt.Format(dates.Layout)
	return agg
}

// loadAggregates fetches all of a user's habits with completions and builds
// their aggregates, oldest habit first.
func loadAggregates(db *gorm.DB, userID uint) ([]*tracker.Habit, error) {
	var habits []models.Habit
	if err := db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Preload("Completions").
		Find(&habits).Error; err != nil {
		return nil, err
	}

	aggs := make([]*tracker.Habit, 0, len(habits))
	for i := range habits {
		aggs = append(aggs, toAggregate(&habits[i]))
	}
	return aggs, nil
}

// validReminderTime accepts HH:MM on a 24 hour clock.
func validReminderTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh := s[:2]
	mm := s[3:]
	for _, c := range hh + mm {
		if c < '0' || c > '9' {
			return false
		}
	}
	h := int(hh[0]-'0')*10 + int(hh[1]-'0')
	m := int(mm[0]-'0')*10 + int(mm[1]-'0')
	return h < 24 && m < 60
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
