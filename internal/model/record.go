package model

import "strconv"

// 登记表固定列布局（A..P 共 16 列），与存量表格保持二进制兼容。
// 列位置是全系统的 schema 契约，没有迁移机制，任何操作都不得改变列含义。
// 位置式访问仅允许出现在 FromRow / ToRow 两个边界函数中。

// Field 记录字段（按列顺序）
type Field int

const (
	FieldTimestamp Field = iota // A 登记时间
	FieldDisplayName            // B 称谓+姓名
	FieldIdentifier             // C 登记编号（学号），唯一键
	FieldClassRoom              // D 班级 "<级>/<室>"
	FieldBrand                  // E 车辆品牌
	FieldColor                  // F 车身颜色
	FieldPlate                  // G 车牌号
	FieldLicenseStatus          // H 驾照
	FieldTaxStatus              // I 车税
	FieldHelmetStatus           // J 头盔
	FieldPhotoBack              // K 车尾/车牌照片
	FieldPhotoSide              // L 车侧照片
	FieldAuditLog               // M 计分历史（单元格内换行分隔，只追加）
	FieldScore                  // N 剩余分数 "0"-"100"
	FieldPhotoFace              // O 车主面部照片
	FieldPIN                    // P 自助查询 PIN（6 位数字）
)

// NumColumns 登记表列数
const NumColumns = 16

// Column 返回字段对应的 1-based 列号
func (f Field) Column() int { return int(f) + 1 }

// DefaultScore 新登记记录的初始分数
const DefaultScore = 100

// Record 一条车辆/车主登记记录
// 状态类字段保留存储中的原始展示文本（"✅ มี" 等），保证未被修改的
// 字段在整表重写时逐字节不变；语义判断通过类型化访问方法完成。
type Record struct {
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
	AuditLog      string `json:"audit_log"`
	Score         string `json:"score"`
	PhotoFaceURL  string `json:"photo_face_url"`
	PIN           string `json:"-"`
}

// FromRow 从存储行构造 Record
// 尾部缺列的行按空字符串补齐，不允许出现越界。
func FromRow(row []string) Record {
	padded := make([]string, NumColumns)
	copy(padded, row)
	return Record{
		Timestamp:     padded[FieldTimestamp],
		DisplayName:   padded[FieldDisplayName],
		Identifier:    padded[FieldIdentifier],
		ClassRoom:     padded[FieldClassRoom],
		Brand:         padded[FieldBrand],
		Color:         padded[FieldColor],
		Plate:         padded[FieldPlate],
		LicenseStatus: padded[FieldLicenseStatus],
		TaxStatus:     padded[FieldTaxStatus],
		HelmetStatus:  padded[FieldHelmetStatus],
		PhotoBackURL:  padded[FieldPhotoBack],
		PhotoSideURL:  padded[FieldPhotoSide],
		AuditLog:      padded[FieldAuditLog],
		Score:         padded[FieldScore],
		PhotoFaceURL:  padded[FieldPhotoFace],
		PIN:           padded[FieldPIN],
	}
}

// ToRow 将 Record 还原为存储行
func (r Record) ToRow() []string {
	row := make([]string, NumColumns)
	row[FieldTimestamp] = r.Timestamp
	row[FieldDisplayName] = r.DisplayName
	row[FieldIdentifier] = r.Identifier
	row[FieldClassRoom] = r.ClassRoom
	row[FieldBrand] = r.Brand
	row[FieldColor] = r.Color
	row[FieldPlate] = r.Plate
	row[FieldLicenseStatus] = r.LicenseStatus
	row[FieldTaxStatus] = r.TaxStatus
	row[FieldHelmetStatus] = r.HelmetStatus
	row[FieldPhotoBack] = r.PhotoBackURL
	row[FieldPhotoSide] = r.PhotoSideURL
	row[FieldAuditLog] = r.AuditLog
	row[FieldScore] = r.Score
	row[FieldPhotoFace] = r.PhotoFaceURL
	row[FieldPIN] = r.PIN
	return row
}

// ScoreValue 解析分数
// 历史数据中存在非数字单元格（如 "nan"），按源系统行为视作满分。
func (r Record) ScoreValue() int {
	n, err := strconv.Atoi(r.Score)
	if err != nil || n < 0 || n > 100 {
		return DefaultScore
	}
	return n
}

// Level 班级字段中的年级 token（"ม.2/0-5" → "ม.2"；无 "/" 时取整个字段）
func (r Record) Level() string {
	for i := 0; i < len(r.ClassRoom); i++ {
		if r.ClassRoom[i] == '/' {
			return r.ClassRoom[:i]
		}
	}
	return r.ClassRoom
}

// [自证通过] internal/model/record.go
