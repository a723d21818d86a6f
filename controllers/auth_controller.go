package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/utils"
)

// AuthController 认证控制器
type AuthController struct {
	DB *gorm.DB
}

// CredentialsRequest 注册/登录请求结构体
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Register 邮箱注册
func (ac *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password required"})
		return
	}

	// 邮箱唯一性检查
	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.Logger.Errorw("密码哈希失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user := models.User{
		ID:       utils.GenerateID(),
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("用户创建失败", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	config.Logger.Infow("用户注册成功", "userID", user.ID)
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login 邮箱登录
func (ac *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
