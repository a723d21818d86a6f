package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"FocusMateGo/models"
	"FocusMateGo/utils"
)

type MoodSuite struct {
	APISuite
}

func TestMoodSuite(t *testing.T) {
	suite.Run(t, new(MoodSuite))
}

func (s *MoodSuite) TestCreateMood() {
	user, token := s.newUser("a@example.com")

	w := s.request("POST", "/api/mood", token, map[string]interface{}{
		"moodLevel": "Happy",
		"note":      "good day",
		"tags":      []string{"work", "sunny"},
	})
	s.Equal(http.StatusCreated, w.Code)

	var mood models.MoodEntry
	s.decode(w, &mood)
	s.Equal(user.ID, mood.UserID)
	s.Equal("Happy", mood.MoodLevel)
	s.Equal(models.StringList{"work", "sunny"}, mood.Tags)
	s.False(mood.Date.IsZero())
}

func (s *MoodSuite) TestCreateRequiresMoodLevel() {
	_, token := s.newUser("a@example.com")

	w := s.request("POST", "/api/mood", token, map[string]string{"note": "no mood"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *MoodSuite) TestUpdateReplacesFields() {
	user, token := s.newUser("a@example.com")
	mood := models.MoodEntry{
		ID:        utils.GenerateID(),
		UserID:    user.ID,
		MoodLevel: "Sad",
		Note:      "old note",
		Tags:      models.StringList{"old"},
		Date:      torontoNoon(2025, 7, 9),
	}
	s.Require().NoError(s.db.Create(&mood).Error)

	// 整体替换：没传的 note/tags 被清空
	w := s.request("PUT", "/api/mood/"+mood.ID, token, map[string]interface{}{
		"moodLevel": "Happy",
	})
	s.Equal(http.StatusOK, w.Code)

	var updated models.MoodEntry
	s.decode(w, &updated)
	s.Equal("Happy", updated.MoodLevel)
	s.Empty(updated.Note)
	s.Empty(updated.Tags)
}

func (s *MoodSuite) TestUpdateMissNotFound() {
	_, token := s.newUser("a@example.com")

	w := s.request("PUT", "/api/mood/does-not-exist", token, map[string]string{"moodLevel": "Happy"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *MoodSuite) TestDeleteForeignMoodNotFound() {
	userA, _ := s.newUser("a@example.com")
	_, tokenB := s.newUser("b@example.com")

	mood := models.MoodEntry{ID: utils.GenerateID(), UserID: userA.ID, MoodLevel: "Neutral", Date: torontoNoon(2025, 7, 9)}
	s.Require().NoError(s.db.Create(&mood).Error)

	w := s.request("DELETE", "/api/mood/"+mood.ID, tokenB, nil)
	s.Equal(http.StatusNotFound, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&models.MoodEntry{}).Where("id = ?", mood.ID).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *MoodSuite) TestDeleteOwnMood() {
	user, token := s.newUser("a@example.com")
	mood := models.MoodEntry{ID: utils.GenerateID(), UserID: user.ID, MoodLevel: "Neutral", Date: torontoNoon(2025, 7, 9)}
	s.Require().NoError(s.db.Create(&mood).Error)

	w := s.request("DELETE", "/api/mood/"+mood.ID, token, nil)
	s.Equal(http.StatusOK, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&models.MoodEntry{}).Count(&count).Error)
	s.EqualValues(0, count)
}
