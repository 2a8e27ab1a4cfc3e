package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// ── 测试辅助 ──

func setupTestScoringService(recordRepo *mockRecordRepo) *scoringService {
	return &scoringService{
		repo:   &repository.Repository{Record: recordRepo},
		loc:    time.UTC,
		logger: zap.NewNop(),
		now: func() time.Time {
			return time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
		},
	}
}

// auditEntries 拆出非空历史条目（首条之前有一个固定的空行）
func auditEntries(log string) []string {
	var entries []string
	for _, line := range strings.Split(log, "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// ── AdjustScore 测试 ──

func TestScoringService_AdjustScore_Debit(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestScoringService(recordRepo)

	req := &dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 30, Note: "ไม่สวมหมวกกันน็อค"}
	result, err := svc.AdjustScore(context.Background(), "12345", req, "ครูสมชาย")
	if err != nil {
		t.Fatalf("AdjustScore 应成功: %v", err)
	}
	if result.NewScore != 70 {
		t.Errorf("期望NewScore=70，实际=%d", result.NewScore)
	}

	rec := recordRepo.records[0]
	if rec.Score != "70" {
		t.Errorf("期望存储分数=70，实际=%s", rec.Score)
	}
	entries := auditEntries(rec.AuditLog)
	if len(entries) != 1 {
		t.Fatalf("期望 1 条历史，实际 %d 条: %q", len(entries), rec.AuditLog)
	}
	want := "[15/01/2026 09:30] deducted 30 by ครูสมชาย: ไม่สวมหมวกกันน็อค"
	if entries[0] != want {
		t.Errorf("历史条目不符:\n期望 %q\n实际 %q", want, entries[0])
	}
}

func TestScoringService_AdjustScore_CreditAfterDebit(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestScoringService(recordRepo)

	// 先扣 30，再由另一位教师加 10
	_, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 30, Note: "ไม่สวมหมวกกันน็อค"}, "ครูสมชาย")
	if err != nil {
		t.Fatalf("第一次计分应成功: %v", err)
	}
	result, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionCredit, Points: 10, Note: "ช่วยงานจราจร"}, "ครูสมหญิง")
	if err != nil {
		t.Fatalf("第二次计分应成功: %v", err)
	}
	if result.NewScore != 80 {
		t.Errorf("期望NewScore=80，实际=%d", result.NewScore)
	}

	entries := auditEntries(recordRepo.records[0].AuditLog)
	if len(entries) != 2 {
		t.Fatalf("期望 2 条历史，实际 %d 条", len(entries))
	}
	if !strings.Contains(entries[0], "deducted 30 by ครูสมชาย") {
		t.Errorf("第一条历史应为扣分条目，实际 %q", entries[0])
	}
	if !strings.Contains(entries[1], "added 10 by ครูสมหญิง: ช่วยงานจราจร") {
		t.Errorf("第二条历史应为加分条目，实际 %q", entries[1])
	}
}

func TestScoringService_AdjustScore_ClampFloor(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "30"))
	svc := setupTestScoringService(recordRepo)

	result, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 50, Note: "ขับรถย้อนศร"}, "ครูสมชาย")
	if err != nil {
		t.Fatalf("AdjustScore 应成功: %v", err)
	}
	if result.NewScore != 0 {
		t.Errorf("分数应钳制在 0，实际=%d", result.NewScore)
	}
}

func TestScoringService_AdjustScore_ClampCeiling(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "80"))
	svc := setupTestScoringService(recordRepo)

	result, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionCredit, Points: 50, Note: "ชนะการประกวด"}, "ครูสมชาย")
	if err != nil {
		t.Fatalf("AdjustScore 应成功: %v", err)
	}
	if result.NewScore != 100 {
		t.Errorf("分数应钳制在 100，实际=%d", result.NewScore)
	}
}

func TestScoringService_AdjustScore_NonNumericScore(t *testing.T) {
	// 历史脏数据：分数单元格非数字时按满分处理
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "nan"))
	svc := setupTestScoringService(recordRepo)

	result, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 10, Note: "จอดผิดที่"}, "ครูสมชาย")
	if err != nil {
		t.Fatalf("AdjustScore 应成功: %v", err)
	}
	if result.NewScore != 90 {
		t.Errorf("期望NewScore=90，实际=%d", result.NewScore)
	}
}

func TestScoringService_AdjustScore_SingleSparseWrite(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestScoringService(recordRepo)

	_, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 5, Note: "จอดผิดที่"}, "ครูสมชาย")
	if err != nil {
		t.Fatalf("AdjustScore 应成功: %v", err)
	}

	// 分数与历史必须落在同一次稀疏写中，且不触碰其他字段
	if len(recordRepo.writes) != 1 {
		t.Fatalf("期望 1 次稀疏写，实际 %d 次", len(recordRepo.writes))
	}
	fields := recordRepo.writes[0]
	if len(fields) != 2 {
		t.Errorf("期望写入 2 个字段，实际 %d 个", len(fields))
	}
	if _, ok := fields[model.FieldScore]; !ok {
		t.Error("稀疏写应包含分数字段")
	}
	if _, ok := fields[model.FieldAuditLog]; !ok {
		t.Error("稀疏写应包含历史字段")
	}
}

func TestScoringService_AdjustScore_NotFound(t *testing.T) {
	recordRepo := newMockRecordRepo()
	svc := setupTestScoringService(recordRepo)

	_, err := svc.AdjustScore(context.Background(), "99999",
		&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: 10, Note: "x"}, "ครูสมชาย")
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestScoringService_AdjustScore_ValidationEnumeratesAll(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestScoringService(recordRepo)

	// 三个输入全部不合法，应一次性全部枚举
	_, err := svc.AdjustScore(context.Background(), "12345",
		&dto.AdjustScoreRequest{Direction: "remove", Points: 0, Note: ""}, "ครูสมชาย")

	ve, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if len(ve.Violations) != 3 {
		t.Errorf("期望 3 条违规，实际 %d 条: %v", len(ve.Violations), ve.Violations)
	}
	if len(recordRepo.writes) != 0 {
		t.Error("校验失败时不得产生任何写入")
	}
}

func TestScoringService_AdjustScore_PointsOutOfRange(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestScoringService(recordRepo)

	for _, points := range []int{0, 51, -3} {
		_, err := svc.AdjustScore(context.Background(), "12345",
			&dto.AdjustScoreRequest{Direction: DirectionDebit, Points: points, Note: "x"}, "ครูสมชาย")
		if _, ok := apperrors.AsValidation(err); !ok {
			t.Errorf("points=%d 应校验失败，实际: %v", points, err)
		}
	}
}

// [自证通过] internal/service/scoring_service_test.go
