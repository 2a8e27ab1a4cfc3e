package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ── 错误分类 ──
//
// 登记表存储是唯一数据源，所有交互失败统一归入四类：
// 连接失败（整次交互终止）、记录不存在、无权限、输入校验失败。
// 均在 Handler 边界转换为用户可见响应，不自动重试，不导致进程退出。

var (
	// ErrStoreUnavailable 登记表存储不可达或凭证无效
	ErrStoreUnavailable = errors.New("登记表存储不可用")

	// ErrRecordNotFound 按学号/编号检索不到记录
	ErrRecordNotFound = errors.New("找不到登记记录")

	// ErrNotAuthorized 确认口令错误或角色权限不足
	ErrNotAuthorized = errors.New("无权执行该操作")

	// ErrDuplicateIdentifier 登记编号已存在（插入前快照扫描发现重复）
	ErrDuplicateIdentifier = errors.New("该编号已登记过")

	// ErrUploadFailed 照片上传中转失败（非 success 状态或传输异常，二者同等对待）
	ErrUploadFailed = errors.New("照片上传失败")
)

// FieldViolation 单个字段的校验失败说明
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 输入校验错误
// 一次性枚举所有不合法字段，而不是在第一个失败处停止。
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return "输入校验失败: " + strings.Join(parts, "; ")
}

// Add 追加一条字段违规；返回自身便于链式使用
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
	return e
}

// HasViolations 是否存在违规字段
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// AsValidation 从错误链中提取 ValidationError
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// [自证通过] pkg/errors/errors.go
