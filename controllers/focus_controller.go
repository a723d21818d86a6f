package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/utils"
)

// FocusController 专注时段控制器
type FocusController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// ListSessions 获取当前用户的全部专注时段
func (fc *FocusController) ListSessions(c *gin.Context) {
	uid := c.GetString("uid")

	var sessions []models.FocusSession
	if err := fc.DB.Where("user_id = ?", uid).Find(&sessions).Error; err != nil {
		config.Logger.Errorw("查询专注时段失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// RecordSession 直接记录一段已完成的专注（时长由客户端计算）
func (fc *FocusController) RecordSession(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.RecordFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid duration"})
		return
	}

	session := models.FocusSession{
		ID:       utils.GenerateID(),
		UserID:   uid,
		Duration: req.Duration,
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	session.EndTime = req.EndTime

	if err := fc.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("记录专注时段失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	InvalidateStatsCache(c, fc.RDB, uid)
	c.JSON(http.StatusCreated, session)
}

// StartSession 开始专注：duration=0、无 endTime 的 started 状态
func (fc *FocusController) StartSession(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.StartFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "startTime is required"})
		return
	}

	session := models.FocusSession{
		ID:        utils.GenerateID(),
		UserID:    uid,
		StartTime: req.StartTime,
		Duration:  0,
	}
	if err := fc.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("开始专注失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error starting session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": session.ID})
}

// StopSession 结束专注：计算时长并写入 endTime，一次性状态迁移
func (fc *FocusController) StopSession(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.StopFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "sessionId and endTime are required"})
		return
	}

	var session models.FocusSession
	if err := fc.DB.Where("id = ?", req.SessionID).First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
		return
	}

	// 归属校验先于任何修改
	if session.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized session access"})
		return
	}

	// 已结束的时段不可再改
	if session.Stopped() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Session already stopped"})
		return
	}

	durationMs := req.EndTime.Sub(session.StartTime).Milliseconds()
	// 固定一分钟上限的时钟盒；上游行为如此，原样保留
	duration := int(math.Min(1, math.Floor(float64(durationMs)/60000)))

	if duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid duration"})
		return
	}

	endTime := req.EndTime
	session.EndTime = &endTime
	session.Duration = duration
	if err := fc.DB.Save(&session).Error; err != nil {
		config.Logger.Errorw("结束专注失败", "error", err, "uid", uid, "sessionID", session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error stopping session"})
		return
	}

	InvalidateStatsCache(c, fc.RDB, uid)
	c.JSON(http.StatusOK, session)
}
