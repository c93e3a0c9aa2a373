package handlers

import (
	"errors"
	"net/http"

	"cloudbox/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type RegisterRequest struct {
	QQ       string `json:"qq"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type LoginRequest struct {
	QQ       string `json:"qq"`
	Password string `json:"password"`
}

type NicknameRequest struct {
	QQ       string `json:"qq"`
	Nickname string `json:"nickname"`
}

// publicProfile never includes the password hash
func publicProfile(u *models.User) gin.H {
	return gin.H{
		"qq":            u.QQID,
		"nickname":      u.Nickname,
		"created_at":    u.CreatedAt,
		"last_login_at": u.LastLoginAt,
	}
}

// UserRegister handles POST /api/register. Validation runs in a fixed order
// (presence, qq shape, nickname, password) and reports the first violation.
func UserRegister(c *gin.Context) {
	req := RegisterRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	if req.QQ == "" || req.Nickname == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if err := models.ValidateQQ(req.QQ); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	nickname, err := models.ValidateNickname(req.Nickname)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := models.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserRegister(req.QQ, nickname, req.Password)
	if errors.Is(err, models.ErrUserExists) {
		c.JSON(http.StatusConflict, Response{err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
		return
	}
	c.JSON(http.StatusCreated, publicProfile(user))
}

// UserLogin handles POST /api/login. An unknown id is a 404, distinct from a
// wrong password: per-user accounts exist here, unlike the file gate.
func UserLogin(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	if req.QQ == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if err := models.ValidateQQ(req.QQ); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserLogin(req.QQ, req.Password)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Response{err.Error()})
	case errors.Is(err, models.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, Response{err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
	default:
		c.JSON(http.StatusOK, gin.H{"qq": user.QQID, "nickname": user.Nickname})
	}
}

// UserUpdateNickname handles PUT /api/user/nickname
func UserUpdateNickname(c *gin.Context) {
	req := NicknameRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, BadRequestResponse)
		return
	}
	if req.QQ == "" || req.Nickname == "" {
		c.JSON(http.StatusBadRequest, MissingFieldsResponse)
		return
	}
	if err := models.ValidateQQ(req.QQ); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	nickname, err := models.ValidateNickname(req.Nickname)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserUpdateNickname(req.QQ, nickname)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Response{err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
	default:
		c.JSON(http.StatusOK, gin.H{"qq": user.QQID, "nickname": user.Nickname})
	}
}

// UserGet handles GET /api/user/:qq
func UserGet(c *gin.Context) {
	qq := c.Param("qq")
	if err := models.ValidateQQ(qq); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserGet(qq)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Response{err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
	default:
		c.JSON(http.StatusOK, publicProfile(user))
	}
}
