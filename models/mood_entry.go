package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList 以JSON文本存储的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("无法将 %T 扫描为 StringList", value)
	}
}

// MoodEntry 心情记录模型
type MoodEntry struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string     `gorm:"type:varchar(50);index:idx_moods_user" json:"userId"`
	MoodLevel string     `gorm:"type:varchar(50)" json:"moodLevel"` // Happy/Excited/Neutral/Tired/Sad/Anxious...
	Note      string     `gorm:"type:text" json:"note,omitempty"`
	Tags      StringList `gorm:"type:text" json:"tags,omitempty"`
	TaskID    *string    `gorm:"type:varchar(50)" json:"taskId,omitempty"`    // 关联的任务
	JournalID *string    `gorm:"type:varchar(50)" json:"journalId,omitempty"` // 关联的日记
	Date      time.Time  `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
}
