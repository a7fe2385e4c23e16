package models

import "time"

// Habit represents a tracked habit owned by a user. IDs are opaque UUID strings.
// Completions are removed together with the habit via the foreign key constraint.
type Habit struct {
	ID           string       `gorm:"primaryKey;size:36" json:"id"`
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	Name         string       `gorm:"size:255;not null" json:"name"`
	Icon         string       `gorm:"size:32;not null" json:"icon"`
	Color        string       `gorm:"size:32;not null" json:"color"`
	Category     string       `gorm:"size:32;not null" json:"category"`
	WeeklyGoal   int          `gorm:"default:7" json:"weekly_goal"`
	ReminderTime *string      `gorm:"size:5" json:"reminder_time"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Completions  []Completion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"completions,omitempty"`
}
