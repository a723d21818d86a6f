package models

import (
	"time"
)

// FocusSession 专注时段模型
// 创建时处于 started 状态（duration=0，无 endTime），
// stop 后写入 endTime 和 duration，此后不再变化
type FocusSession struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string     `gorm:"type:varchar(50);index:idx_focus_user_start" json:"userId"`
	StartTime time.Time  `gorm:"index:idx_focus_user_start" json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  int        `gorm:"default:0" json:"duration"` // 分钟数
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Stopped 是否已结束
func (s *FocusSession) Stopped() bool {
	return s.EndTime != nil
}
