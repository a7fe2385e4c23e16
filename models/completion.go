package models

import "time"

// Completion records that a habit was done on a calendar date (YYYY-MM-DD).
// The composite unique index makes a second completion for the same day a
// constraint violation rather than a silent duplicate. The optional note lives
// on the completion row, so deleting the completion deletes the note with it.
type Completion struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	HabitID   string    `gorm:"size:36;index;index:idx_completions_habit_date,unique;not null" json:"habit_id"`
	Date      string    `gorm:"size:10;index:idx_completions_habit_date,unique;not null" json:"date"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
