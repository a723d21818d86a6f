package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"FocusMateGo/controllers"
	"FocusMateGo/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	authController := controllers.AuthController{DB: db}
	taskController := controllers.TaskController{DB: db, RDB: rdb}
	moodController := controllers.MoodController{DB: db, RDB: rdb}
	journalController := controllers.JournalController{DB: db, RDB: rdb}
	focusController := controllers.FocusController{DB: db, RDB: rdb}
	statsController := controllers.StatsController{DB: db, RDB: rdb}

	// 公开路由（无需认证）
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 任务
		private.GET("/tasks", taskController.ListTasks)
		private.POST("/tasks", taskController.CreateTask)
		private.PUT("/tasks/:id", taskController.UpdateTask)
		private.DELETE("/tasks/:id", taskController.DeleteTask)

		// 心情记录
		private.GET("/mood", moodController.ListMoods)
		private.POST("/mood", moodController.CreateMood)
		private.PUT("/mood/:id", moodController.UpdateMood)
		private.DELETE("/mood/:id", moodController.DeleteMood)

		// 日记
		private.GET("/journal", journalController.ListJournals)
		private.POST("/journal", journalController.CreateJournal)
		private.PUT("/journal/:id", journalController.UpdateJournal)
		private.DELETE("/journal/:id", journalController.DeleteJournal)

		// 专注时段
		private.GET("/focus", focusController.ListSessions)
		private.POST("/focus", focusController.RecordSession)
		private.POST("/focus/start", focusController.StartSession)
		private.POST("/focus/stop", focusController.StopSession)

		// 统计
		private.GET("/stats", statsController.GetStats)
		private.GET("/progress", statsController.GetProgress)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
