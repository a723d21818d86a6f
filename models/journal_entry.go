package models

import (
	"time"
)

// JournalEntry 日记模型
type JournalEntry struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index:idx_journals_user" json:"userId"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	TaskID    *string   `gorm:"type:varchar(50)" json:"taskId,omitempty"` // 关联的任务
	MoodLevel string    `gorm:"type:varchar(50)" json:"moodLevel,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
