package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(100)" json:"-"` // bcrypt哈希，不返回给客户端
	Name      string    `gorm:"type:varchar(100)" json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
