package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/icutrack/icu-api/model"
	"github.com/icutrack/icu-api/util"
)

// SeedUsers godoc
// @Summary      Provision the fixed account list (admin only)
// @Description  Ensure the predefined accounts exist; existing accounts are reported as already present
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Per-account results"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/admin/seed-users [post]
func SeedUsers(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	results, err := model.SeedUsers(db, model.DefaultSeedAccounts(), util.HashPassword)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to seed accounts",
			Err: err,
		})
		return
	}

	util.LogAdminAction("seed-users", fmt.Sprintf("%d accounts", len(results)), c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Seed accounts processed",
		Data: map[string]interface{}{"results": results},
	})
}

type updateUserRequest struct {
	Role     string `json:"role" example:"admin"`
	Password string `json:"password" example:"newpassword123"`
}

// AdminUpdateUser godoc
// @Summary      Correct a user's role or password (admin only)
// @Description  Out-of-band correction of mutable account fields by username
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        request body updateUserRequest true "Fields to correct"
// @Success      200 {object} util.APIResponse{data=model.User} "User updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "User not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/admin/users/{username} [patch]
func AdminUpdateUser(c *gin.Context) {
	username := c.Param("username")

	var req updateUserRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if req.Role == "" && req.Password == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "At least one field (role or password) must be provided",
			Err: fmt.Errorf("no fields to update"),
		})
		return
	}
	if req.Role != "" && !util.Contains(req.Role, []string{model.RoleAdmin, model.RoleDoctor}) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Role must be admin or doctor",
			Err: fmt.Errorf("invalid role %q", req.Role),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "User not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve user", Err: err})
		return
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		passwordHash, err := util.HashPassword(req.Password)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
			return
		}
		user.PasswordHash = passwordHash
	}

	if err := db.Save(&user).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update user", Err: err})
		return
	}

	util.LogAdminAction("update-user", username, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User updated", Data: user})
}

// DatabaseHealth godoc
// @Summary      Storage connectivity check (admin only)
// @Description  Count user records to prove the database is reachable
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "User count"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/health/db [get]
func DatabaseHealth(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database unreachable", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Database reachable",
		Data: map[string]interface{}{"users": count},
	})
}
