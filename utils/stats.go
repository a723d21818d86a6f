package utils

import (
	"math"
	"sort"
	"time"

	"FocusMateGo/models"
)

// statsLocation 统计按固定时区的自然日分桶，与服务器时区无关
var statsLocation *time.Location

func init() {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		// 系统缺少tzdata时退回固定偏移
		loc = time.FixedZone("EST", -5*3600)
	}
	statsLocation = loc
}

// MoodToScore 心情标签到分值的固定映射，未知标签记0
func MoodToScore(mood string) int {
	switch mood {
	case "Happy":
		return 5
	case "Excited":
		return 4
	case "Neutral":
		return 3
	case "Tired":
		return 2
	case "Sad", "Anxious":
		return 1
	default:
		return 0
	}
}

// FormatLocalDate 按统计时区格式化为 YYYY-MM-DD
func FormatLocalDate(t time.Time) string {
	return t.In(statsLocation).Format("2006-01-02")
}

// Round1 保留一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func avgScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return Round1(float64(sum) / float64(len(scores)))
}

type dailyStatAcc struct {
	taskCount      int
	completedTasks int
	journalCount   int
	moodScores     []int
}

// BuildDailyStats 按自然日汇总任务、心情、日记
// 心情分来源：心情记录的 moodLevel、任务的 moodAtStart/moodAtCompletion、日记的 moodLevel
func BuildDailyStats(tasks []models.Task, moods []models.MoodEntry, journals []models.JournalEntry) []models.DailyStat {
	byDate := make(map[string]*dailyStatAcc)
	get := func(date string) *dailyStatAcc {
		if acc, ok := byDate[date]; ok {
			return acc
		}
		acc := &dailyStatAcc{}
		byDate[date] = acc
		return acc
	}

	for _, t := range tasks {
		acc := get(FormatLocalDate(t.CreatedAt))
		acc.taskCount++
		if t.Completed {
			acc.completedTasks++
		}
		if t.MoodAtStart != "" {
			acc.moodScores = append(acc.moodScores, MoodToScore(t.MoodAtStart))
		}
		if t.MoodAtCompletion != "" {
			acc.moodScores = append(acc.moodScores, MoodToScore(t.MoodAtCompletion))
		}
	}

	for _, m := range moods {
		acc := get(FormatLocalDate(m.Date))
		acc.moodScores = append(acc.moodScores, MoodToScore(m.MoodLevel))
	}

	for _, j := range journals {
		acc := get(FormatLocalDate(j.Date))
		acc.journalCount++
		if j.MoodLevel != "" {
			acc.moodScores = append(acc.moodScores, MoodToScore(j.MoodLevel))
		}
	}

	result := make([]models.DailyStat, 0, len(byDate))
	for date, acc := range byDate {
		result = append(result, models.DailyStat{
			Date:           date,
			TotalTasks:     acc.taskCount,
			CompletedTasks: acc.completedTasks,
			JournalEntries: acc.journalCount,
			AvgMood:        avgScore(acc.moodScores),
		})
	}
	// YYYY-MM-DD 字典序即时间序
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

type dailyProgressAcc struct {
	journalCount int
	taskCount    int
	moodScores   []int
}

// BuildDailyProgress 按自然日汇总日记数、已完成任务数、心情均分
// 与 BuildDailyStats 不同：只计已完成任务，心情分只来自心情记录
func BuildDailyProgress(journals []models.JournalEntry, completedTasks []models.Task, moods []models.MoodEntry) []models.DailyProgress {
	byDate := make(map[string]*dailyProgressAcc)
	get := func(date string) *dailyProgressAcc {
		if acc, ok := byDate[date]; ok {
			return acc
		}
		acc := &dailyProgressAcc{}
		byDate[date] = acc
		return acc
	}

	for _, j := range journals {
		get(FormatLocalDate(j.Date)).journalCount++
	}
	for _, t := range completedTasks {
		get(FormatLocalDate(t.CreatedAt)).taskCount++
	}
	for _, m := range moods {
		acc := get(FormatLocalDate(m.Date))
		acc.moodScores = append(acc.moodScores, MoodToScore(m.MoodLevel))
	}

	result := make([]models.DailyProgress, 0, len(byDate))
	for date, acc := range byDate {
		result = append(result, models.DailyProgress{
			Date:         date,
			JournalCount: acc.journalCount,
			TaskCount:    acc.taskCount,
			AvgMood:      avgScore(acc.moodScores),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}
