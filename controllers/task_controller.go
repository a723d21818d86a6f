package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/utils"
)

// TaskController 任务控制器
type TaskController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// ListTasks 获取当前用户的全部任务，按创建时间倒序
func (tc *TaskController) ListTasks(c *gin.Context) {
	uid := c.GetString("uid")

	var tasks []models.Task
	if err := tc.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&tasks).Error; err != nil {
		config.Logger.Errorw("查询任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask 创建任务，归属用户取自令牌
func (tc *TaskController) CreateTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	task := models.Task{
		ID:               utils.GenerateID(),
		UserID:           uid,
		Title:            req.Title,
		MoodAtStart:      req.MoodAtStart,
		MoodAtCompletion: req.MoodAtCompletion,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("创建任务失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating task"})
		return
	}

	InvalidateStatsCache(c, tc.RDB, uid)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask 部分更新任务的 title/completed，按 id+user_id 过滤
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	var task models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", taskID, uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found or unauthorized"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}

	if len(updates) > 0 {
		if err := tc.DB.Model(&task).Updates(updates).Error; err != nil {
			config.Logger.Errorw("更新任务失败", "error", err, "uid", uid, "taskID", taskID)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating task"})
			return
		}
	}

	InvalidateStatsCache(c, tc.RDB, uid)
	c.JSON(http.StatusOK, task)
}

// DeleteTask 删除任务，按 id+user_id 过滤
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("id")

	result := tc.DB.Where("id = ? AND user_id = ?", taskID, uid).Delete(&models.Task{})
	if result.Error != nil {
		config.Logger.Errorw("删除任务失败", "error", result.Error, "uid", uid, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting task"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found or unauthorized"})
		return
	}

	InvalidateStatsCache(c, tc.RDB, uid)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
