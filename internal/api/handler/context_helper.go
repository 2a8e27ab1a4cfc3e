package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/panonthonlaw-dev/cbaregismoto/pkg/errors"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/response"
)

// MustGetOfficerName 从 Gin 上下文中安全提取教职工姓名。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetOfficerName(c *gin.Context) (string, bool) {
	v, exists := c.Get("officer_name")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// handleDomainError 将领域错误统一映射为 HTTP 响应
// 所有失败都在此边界转换为用户可见消息；不重试，不 panic。
func handleDomainError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "输入校验失败", ve.Violations)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrRecordNotFound):
		response.NotFound(c, 12001, "找不到登记记录")
	case errors.Is(err, apperrors.ErrDuplicateIdentifier):
		response.Error(c, http.StatusConflict, 12002, "该编号已登记过")
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		response.ServiceUnavailable(c, 12003, "登记表存储不可用，请稍后再试")
	case errors.Is(err, apperrors.ErrNotAuthorized):
		response.Forbidden(c, 13001, "确认口令错误或无权限")
	case errors.Is(err, apperrors.ErrUploadFailed):
		response.Error(c, http.StatusBadGateway, 14001, "照片上传失败，请重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/context_helper.go
