package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"FocusMateGo/models"
	"FocusMateGo/utils"
)

type StatsSuite struct {
	APISuite
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsSuite))
}

func (s *StatsSuite) seedDay(userID string) {
	day := torontoNoon(2025, 7, 9)

	s.Require().NoError(s.db.Create(&models.Task{
		ID: utils.GenerateID(), UserID: userID, Title: "done", Completed: true,
		MoodAtStart: "Happy", CreatedAt: day,
	}).Error)
	s.Require().NoError(s.db.Create(&models.Task{
		ID: utils.GenerateID(), UserID: userID, Title: "open", CreatedAt: day,
	}).Error)
	s.Require().NoError(s.db.Create(&models.MoodEntry{
		ID: utils.GenerateID(), UserID: userID, MoodLevel: "Tired", Date: day,
	}).Error)
	s.Require().NoError(s.db.Create(&models.JournalEntry{
		ID: utils.GenerateID(), UserID: userID, Title: "t", Content: "c",
		MoodLevel: "Neutral", Date: day,
	}).Error)
}

func (s *StatsSuite) TestStatsAggregatesAllSources() {
	user, token := s.newUser("a@example.com")
	s.seedDay(user.ID)

	w := s.request("GET", "/api/stats", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var stats []models.DailyStat
	s.decode(w, &stats)
	s.Require().Len(stats, 1)

	row := stats[0]
	s.Equal("2025-07-09", row.Date)
	s.Equal(2, row.TotalTasks)
	s.Equal(1, row.CompletedTasks)
	s.Equal(1, row.JournalEntries)
	// 任务 Happy=5、心情 Tired=2、日记 Neutral=3 → 10/3 = 3.3
	s.Equal(3.3, row.AvgMood)
}

func (s *StatsSuite) TestProgressCountsCompletedOnly() {
	user, token := s.newUser("a@example.com")
	s.seedDay(user.ID)

	w := s.request("GET", "/api/progress", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var progress []models.DailyProgress
	s.decode(w, &progress)
	s.Require().Len(progress, 1)

	row := progress[0]
	s.Equal("2025-07-09", row.Date)
	s.Equal(1, row.JournalCount)
	// 只计已完成任务
	s.Equal(1, row.TaskCount)
	// 心情分只来自心情记录：Tired=2
	s.Equal(2.0, row.AvgMood)
}

func (s *StatsSuite) TestStatsMultipleDaysSorted() {
	user, token := s.newUser("a@example.com")

	s.Require().NoError(s.db.Create(&models.MoodEntry{
		ID: utils.GenerateID(), UserID: user.ID, MoodLevel: "Happy", Date: torontoNoon(2025, 7, 11),
	}).Error)
	s.Require().NoError(s.db.Create(&models.MoodEntry{
		ID: utils.GenerateID(), UserID: user.ID, MoodLevel: "Sad", Date: torontoNoon(2025, 7, 9),
	}).Error)

	w := s.request("GET", "/api/stats", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var stats []models.DailyStat
	s.decode(w, &stats)
	s.Require().Len(stats, 2)
	s.Equal("2025-07-09", stats[0].Date)
	s.Equal("2025-07-11", stats[1].Date)
}

func (s *StatsSuite) TestStatsScopedToCaller() {
	userA, tokenA := s.newUser("a@example.com")
	userB, _ := s.newUser("b@example.com")

	s.seedDay(userA.ID)
	s.seedDay(userB.ID)

	w := s.request("GET", "/api/stats", tokenA, nil)
	s.Equal(http.StatusOK, w.Code)

	var stats []models.DailyStat
	s.decode(w, &stats)
	s.Require().Len(stats, 1)
	s.Equal(2, stats[0].TotalTasks)
}

func (s *StatsSuite) TestStatsEmptyHistory() {
	_, token := s.newUser("a@example.com")

	w := s.request("GET", "/api/stats", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var stats []models.DailyStat
	s.decode(w, &stats)
	s.Empty(stats)
}

func (s *StatsSuite) TestStatsRequireToken() {
	w := s.request("GET", "/api/stats", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request("GET", "/api/progress", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}
