package models

// DailyStat /api/stats 的单日汇总行
type DailyStat struct {
	Date           string  `json:"date"` // YYYY-MM-DD（America/Toronto）
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	JournalEntries int     `json:"journalEntries"`
	AvgMood        float64 `json:"avgMood"`
}

// DailyProgress /api/progress 的单日汇总行
type DailyProgress struct {
	Date         string  `json:"date"`
	JournalCount int     `json:"journalCount"`
	TaskCount    int     `json:"taskCount"` // 仅统计已完成任务
	AvgMood      float64 `json:"avgMood"`
}
