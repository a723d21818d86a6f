package models

import (
	"time"
)

// Task 任务模型
type Task struct {
	ID               string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID           string    `gorm:"type:varchar(50);index:idx_tasks_user" json:"userId"`
	Title            string    `gorm:"type:varchar(200)" json:"title"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	MoodAtStart      string    `gorm:"type:varchar(50)" json:"moodAtStart,omitempty"`      // 开始时的心情
	MoodAtCompletion string    `gorm:"type:varchar(50)" json:"moodAtCompletion,omitempty"` // 完成时的心情
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
