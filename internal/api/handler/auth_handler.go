package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/service"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 教职工登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "用户名或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 教职工登出（当前 Token 加入黑名单）
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	expiresAt, _ := c.Get("token_expires_at")
	exp, ok := expiresAt.(time.Time)
	if jti == "" || !ok {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me 当前登录教职工信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	name, ok := MustGetOfficerName(c)
	if !ok {
		return
	}
	response.OK(c, model.Officer{
		Username: c.GetString("username"),
		Name:     name,
		Role:     model.Role(c.GetString("role")),
	})
}

// [自证通过] internal/api/handler/auth_handler.go
