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

// JournalController 日记控制器
type JournalController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// ListJournals 获取当前用户的全部日记，按日期倒序
func (jc *JournalController) ListJournals(c *gin.Context) {
	uid := c.GetString("uid")

	var entries []models.JournalEntry
	if err := jc.DB.Where("user_id = ?", uid).Order("date DESC").Find(&entries).Error; err != nil {
		config.Logger.Errorw("查询日记失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch journal entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateJournal 创建日记，title 和 content 必填
func (jc *JournalController) CreateJournal(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing title or content"})
		return
	}

	entry := models.JournalEntry{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Title:     req.Title,
		Content:   req.Content,
		TaskID:    req.TaskID,
		MoodLevel: req.MoodLevel,
		Date:      time.Now(),
	}
	if err := jc.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("创建日记失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create journal entry"})
		return
	}

	InvalidateStatsCache(c, jc.RDB, uid)
	c.JSON(http.StatusCreated, entry)
}

// UpdateJournal 替换 title/content 并刷新日期，按 id+user_id 过滤
func (jc *JournalController) UpdateJournal(c *gin.Context) {
	uid := c.GetString("uid")
	entryID := c.Param("id")

	var req models.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing title or content"})
		return
	}

	var entry models.JournalEntry
	if err := jc.DB.Where("id = ? AND user_id = ?", entryID, uid).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found or unauthorized"})
		return
	}

	entry.Title = req.Title
	entry.Content = req.Content
	entry.Date = time.Now()
	if err := jc.DB.Save(&entry).Error; err != nil {
		config.Logger.Errorw("更新日记失败", "error", err, "uid", uid, "entryID", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update journal entry"})
		return
	}

	InvalidateStatsCache(c, jc.RDB, uid)
	c.JSON(http.StatusOK, entry)
}

// DeleteJournal 删除日记，按 id+user_id 过滤
func (jc *JournalController) DeleteJournal(c *gin.Context) {
	uid := c.GetString("uid")
	entryID := c.Param("id")

	result := jc.DB.Where("id = ? AND user_id = ?", entryID, uid).Delete(&models.JournalEntry{})
	if result.Error != nil {
		config.Logger.Errorw("删除日记失败", "error", result.Error, "uid", uid, "entryID", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete journal entry"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found or unauthorized"})
		return
	}

	InvalidateStatsCache(c, jc.RDB, uid)
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
