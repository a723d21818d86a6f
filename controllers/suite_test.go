package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"FocusMateGo/config"
	"FocusMateGo/models"
	"FocusMateGo/routes"
	"FocusMateGo/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	utils.InitJWT("test-secret")
}

// APISuite 为每个用例准备一套内存数据库和完整路由
type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *APISuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(s.T(), err)

	// 内存库必须限制为单连接，否则每个连接各有一个库
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), config.MigrateDB(db))
	s.db = db

	r := gin.New()
	routes.RegisterRoutes(r, db, nil)
	s.router = r
}

// newUser 直接建库内用户并签发令牌
func (s *APISuite) newUser(email string) (models.User, string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(s.T(), err)

	user := models.User{
		ID:       utils.GenerateID(),
		Email:    email,
		Password: string(hashed),
	}
	require.NoError(s.T(), s.db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	require.NoError(s.T(), err)
	return user, token
}

func (s *APISuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder, target interface{}) {
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), target))
}

// 多伦多时间正午，避开统计分桶的自然日边界
func torontoNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 16, 0, 0, 0, time.UTC)
}
