package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/icutrack/icu-api/middleware"
	"github.com/icutrack/icu-api/model"
	"github.com/icutrack/icu-api/util"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"D001"`
	Password string `json:"password" binding:"required" example:"sharonD001"`
}

type LoginResponse struct {
	Success  bool   `json:"success" example:"true"`
	Username string `json:"username" example:"D001"`
	Name     string `json:"name" example:"Doctor 001"`
	Role     string `json:"role" example:"doctor"`
}

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

// respondInvalidCredentials sends the uniform 401 used for every credential
// failure. Unknown-user and wrong-password must be indistinguishable to the
// caller; only the server-side log records which case occurred.
func respondInvalidCredentials(c *gin.Context) {
	util.CallUserNotAuthorized(c, util.APIErrorParams{
		Msg: "Invalid username or password",
		Err: fmt.Errorf("invalid credentials"),
	})
}

// Login godoc
// @Summary      User login
// @Description  One-shot credential check; no session or token is issued
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} LoginResponse "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      401 {object} util.APIResponse "Invalid credentials"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	err := db.Where("username = ?", req.Username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		util.LogLoginFailure(req.Username, c.ClientIP(), "user not found")
		respondInvalidCredentials(c)
		return
	}
	if err != nil {
		util.LogLoginFailure(req.Username, c.ClientIP(), "database error")
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.LogLoginFailure(req.Username, c.ClientIP(), "invalid password")
		respondInvalidCredentials(c)
		return
	}

	util.LogLoginSuccess(user.Username, c.ClientIP())
	c.JSON(http.StatusOK, LoginResponse{
		Success:  true,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
}
