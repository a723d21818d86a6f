package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/utils"
)

// MoodController 心情记录控制器
type MoodController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// ListMoods 获取当前用户的全部心情记录，按创建时间倒序
func (mc *MoodController) ListMoods(c *gin.Context) {
	uid := c.GetString("uid")

	var moods []models.MoodEntry
	if err := mc.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&moods).Error; err != nil {
		config.Logger.Errorw("查询心情记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching moods"})
		return
	}

	c.JSON(http.StatusOK, moods)
}

// CreateMood 创建心情记录，date 默认取当前时间
func (mc *MoodController) CreateMood(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "moodLevel is required"})
		return
	}

	mood := models.MoodEntry{
		ID:        utils.GenerateID(),
		UserID:    uid,
		MoodLevel: req.MoodLevel,
		Note:      req.Note,
		Tags:      req.Tags,
		TaskID:    req.TaskID,
		JournalID: req.JournalID,
		Date:      time.Now(),
	}
	if err := mc.DB.Create(&mood).Error; err != nil {
		config.Logger.Errorw("创建心情记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving mood"})
		return
	}

	InvalidateStatsCache(c, mc.RDB, uid)
	c.JSON(http.StatusCreated, mood)
}

// UpdateMood 整体替换 moodLevel/note/tags，按 id+user_id 过滤
func (mc *MoodController) UpdateMood(c *gin.Context) {
	uid := c.GetString("uid")
	moodID := c.Param("id")

	var req models.MoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "moodLevel is required"})
		return
	}

	var mood models.MoodEntry
	if err := mc.DB.Where("id = ? AND user_id = ?", moodID, uid).First(&mood).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Mood not found or unauthorized"})
		return
	}

	mood.MoodLevel = req.MoodLevel
	mood.Note = req.Note
	mood.Tags = req.Tags
	if err := mc.DB.Save(&mood).Error; err != nil {
		config.Logger.Errorw("更新心情记录失败", "error", err, "uid", uid, "moodID", moodID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating mood"})
		return
	}

	InvalidateStatsCache(c, mc.RDB, uid)
	c.JSON(http.StatusOK, mood)
}

// DeleteMood 删除心情记录，按 id+user_id 过滤
func (mc *MoodController) DeleteMood(c *gin.Context) {
	uid := c.GetString("uid")
	moodID := c.Param("id")

	result := mc.DB.Where("id = ? AND user_id = ?", moodID, uid).Delete(&models.MoodEntry{})
	if result.Error != nil {
		config.Logger.Errorw("删除心情记录失败", "error", result.Error, "uid", uid, "moodID", moodID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting mood"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Mood not found or unauthorized"})
		return
	}

	InvalidateStatsCache(c, mc.RDB, uid)
	c.JSON(http.StatusOK, gin.H{"message": "Mood deleted"})
}
