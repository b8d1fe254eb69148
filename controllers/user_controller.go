package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct{ *Srv }

func GetUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// POST /api/register
func (uc *UserController) Register(c *gin.Context) {
	var in struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Role  string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(in.Role) {
		c.JSON(http.StatusBadRequest, app.H{"error": "role must be finder, claimer or admin"})
		return
	}

	u := &models.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: strings.ToLower(in.Email),
		Role:  in.Role,
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, app.H{"error": "a user with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// POST /api/login
//
// Email-only identification: this community tool has no credentials (the
// old CLI took bare user IDs on the command line). The session just gives
// the HTTP surface a stable identity for role checks and claim attribution.
func (uc *UserController) Login(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := uc.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unknown email"})
		return
	}

	sid := uuid.NewString()
	if err := uc.AppSess.Create(c.Request.Context(), sid, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	uc.setAppCookie(c.Writer, sid, uc.Cfg.SessionTTL)
	c.JSON(http.StatusOK, app.H{"user": u})
}

// POST /api/logout
func (uc *UserController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = uc.AppSess.Delete(c.Request.Context(), ck.Value)
	}
	uc.clearAppCookie(c.Writer)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/users?q=alice&page=1&size=20
func (uc *UserController) ListUsers(c *gin.Context) {
	q := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := uc.Repo.ListUsers(c.Request.Context(), q, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"total": res.Total,
		"users": res.Users,
	})
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid uuid"})
		return
	}
	user, err := uc.Repo.FindUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": user})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing id"})
		return
	}

	// Not yourself: an admin locking themselves out helps nobody.
	if uid, ok := currentUserID(c); ok && uid == id {
		c.JSON(http.StatusBadRequest, app.H{"error": "cannot delete yourself"})
		return
	}

	if _, err := uc.Repo.FindUserByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
		return
	}

	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusConflict, app.H{"error": "user has items or claims on record"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	// Revoke every session the deleted user held.
	_ = uc.AppSess.RevokeAllForUser(c.Request.Context(), id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
