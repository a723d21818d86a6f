package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/utils"
)

// statsCacheTTL 统计缓存有效期；所有写操作都会主动清除缓存，
// TTL 只是兜底
const statsCacheTTL = 5 * time.Minute

func statsCacheKey(uid string) string    { return "stats:" + uid }
func progressCacheKey(uid string) string { return "progress:" + uid }

// InvalidateStatsCache 写操作后清除该用户的统计缓存
func InvalidateStatsCache(ctx context.Context, rdb *redis.Client, uid string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, statsCacheKey(uid), progressCacheKey(uid)).Err(); err != nil {
		config.Logger.Errorw("清除统计缓存失败", "error", err, "uid", uid)
	}
}

// StatsController 统计控制器
type StatsController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// tryCache 命中缓存时直接输出缓存的JSON
func (sc *StatsController) tryCache(c *gin.Context, key string) bool {
	if sc.RDB == nil {
		return false
	}
	cached, err := sc.RDB.Get(c, key).Result()
	if err != nil {
		if err != redis.Nil {
			config.Logger.Errorw("读取统计缓存失败", "error", err, "key", key)
		}
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
	return true
}

func (sc *StatsController) putCache(c *gin.Context, key string, payload interface{}) {
	if sc.RDB == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := sc.RDB.Set(c, key, b, statsCacheTTL).Err(); err != nil {
		config.Logger.Errorw("写入统计缓存失败", "error", err, "key", key)
	}
}

// GetStats 按自然日汇总任务/心情/日记
// 心情分来源：心情记录、任务的 moodAtStart/moodAtCompletion、日记的 moodLevel
func (sc *StatsController) GetStats(c *gin.Context) {
	uid := c.GetString("uid")

	if sc.tryCache(c, statsCacheKey(uid)) {
		return
	}

	var tasks []models.Task
	var moods []models.MoodEntry
	var journals []models.JournalEntry

	if err := sc.DB.Where("user_id = ?", uid).Find(&tasks).Error; err != nil {
		config.Logger.Errorw("查询任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching statistics"})
		return
	}
	if err := sc.DB.Where("user_id = ?", uid).Find(&moods).Error; err != nil {
		config.Logger.Errorw("查询心情记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching statistics"})
		return
	}
	if err := sc.DB.Where("user_id = ?", uid).Find(&journals).Error; err != nil {
		config.Logger.Errorw("查询日记失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching statistics"})
		return
	}

	stats := utils.BuildDailyStats(tasks, moods, journals)

	sc.putCache(c, statsCacheKey(uid), stats)
	c.JSON(http.StatusOK, stats)
}

// GetProgress 按自然日汇总日记数、已完成任务数和心情均分
// 与 GetStats 不同：任务只计已完成的，心情分只来自心情记录
func (sc *StatsController) GetProgress(c *gin.Context) {
	uid := c.GetString("uid")

	if sc.tryCache(c, progressCacheKey(uid)) {
		return
	}

	var journals []models.JournalEntry
	var completedTasks []models.Task
	var moods []models.MoodEntry

	if err := sc.DB.Where("user_id = ?", uid).Find(&journals).Error; err != nil {
		config.Logger.Errorw("查询日记失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress data"})
		return
	}
	if err := sc.DB.Where("user_id = ? AND completed = ?", uid, true).Find(&completedTasks).Error; err != nil {
		config.Logger.Errorw("查询任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress data"})
		return
	}
	if err := sc.DB.Where("user_id = ?", uid).Find(&moods).Error; err != nil {
		config.Logger.Errorw("查询心情记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress data"})
		return
	}

	progress := utils.BuildDailyProgress(journals, completedTasks, moods)

	sc.putCache(c, progressCacheKey(uid), progress)
	c.JSON(http.StatusOK, progress)
}
