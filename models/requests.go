package models

import (
	"time"
)

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Title            string `json:"title" binding:"required"`
	MoodAtStart      string `json:"moodAtStart"`
	MoodAtCompletion string `json:"moodAtCompletion"`
}

// UpdateTaskRequest 任务部分更新请求结构体，nil 字段保持不变
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// MoodEntryRequest 心情记录创建/替换请求结构体
type MoodEntryRequest struct {
	MoodLevel string     `json:"moodLevel" binding:"required"`
	Note      string     `json:"note"`
	Tags      StringList `json:"tags"`
	TaskID    *string    `json:"taskId"`
	JournalID *string    `json:"journalId"`
}

// JournalEntryRequest 日记创建/替换请求结构体
type JournalEntryRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	TaskID    *string `json:"taskId"`
	MoodLevel string  `json:"moodLevel"`
}

// StartFocusRequest 开始专注请求结构体
type StartFocusRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
}

// StopFocusRequest 结束专注请求结构体
type StopFocusRequest struct {
	SessionID string    `json:"sessionId" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// RecordFocusRequest 直接记录已完成专注时段的请求结构体
type RecordFocusRequest struct {
	Duration  int        `json:"duration" binding:"required"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}
