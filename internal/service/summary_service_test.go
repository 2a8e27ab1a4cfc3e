package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// ── 测试辅助 ──

func setupTestSummaryService(recordRepo *mockRecordRepo) SummaryService {
	repo := &repository.Repository{Record: recordRepo}
	return NewSummaryService(repo, zap.NewNop())
}

// ── Summarize 测试 ──

func TestSummaryService_Summarize(t *testing.T) {
	a := testRecord("10001", "นายหนึ่ง", "ม.2/0-5", "100") // 有驾照，税正常
	b := testRecord("10002", "นายสอง", "ม.2/0-7", "80")
	b.LicenseStatus = model.LabelLicenseNo
	b.TaxStatus = model.LabelTaxNo
	c := testRecord("10003", "นายสาม", "ม.5/1-2", "60")
	recordRepo := newMockRecordRepo(a, b, c)
	svc := setupTestSummaryService(recordRepo)

	result, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize 应成功: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("期望Total=3，实际=%d", result.Total)
	}
	if result.LicenseCount != 2 {
		t.Errorf("期望LicenseCount=2，实际=%d", result.LicenseCount)
	}
	if result.LicensePercent != 67 {
		t.Errorf("期望LicensePercent=67，实际=%d", result.LicensePercent)
	}
	if result.TaxCount != 2 {
		t.Errorf("期望TaxCount=2，实际=%d", result.TaxCount)
	}

	// 年级分布：数量倒序，ม.2 两条在前
	if len(result.ByLevel) != 2 {
		t.Fatalf("期望 2 个年级，实际 %d 个", len(result.ByLevel))
	}
	if result.ByLevel[0].Level != "ม.2" || result.ByLevel[0].Count != 2 {
		t.Errorf("年级分布首位不符，实际 %+v", result.ByLevel[0])
	}
	if result.ByLevel[1].Level != "ม.5" || result.ByLevel[1].Count != 1 {
		t.Errorf("年级分布次位不符，实际 %+v", result.ByLevel[1])
	}
}

func TestSummaryService_Summarize_Empty(t *testing.T) {
	svc := setupTestSummaryService(newMockRecordRepo())

	result, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize 应成功: %v", err)
	}
	if result.Total != 0 || result.LicensePercent != 0 || result.TaxPercent != 0 {
		t.Errorf("空表汇总应全为 0，实际 %+v", result)
	}
}

func TestSummaryService_Summarize_StoreUnavailable(t *testing.T) {
	recordRepo := newMockRecordRepo()
	recordRepo.failErr = apperrors.ErrStoreUnavailable
	svc := setupTestSummaryService(recordRepo)

	_, err := svc.Summarize(context.Background())
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Errorf("期望 ErrStoreUnavailable，实际: %v", err)
	}
}

// [自证通过] internal/service/summary_service_test.go
