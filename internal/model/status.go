package model

import "strings"

// 证件状态在存储中保存为展示文本（含表情符号），语义判断统一走本文件。
// 展示文本只在模型边界生成，业务层不拼接状态字符串。

// DocStatus 证件/装备持有状态
type DocStatus int

const (
	DocUnknown DocStatus = iota
	DocPresent
	DocMissing
)

// ── 展示文本 ──

const (
	LabelLicenseYes = "✅ มี"
	LabelLicenseNo  = "❌ ไม่มี"
	LabelTaxYes     = "✅ ปกติ"
	LabelTaxNo      = "❌ ขาด"
	LabelHelmetYes  = "✅ มี"
	LabelHelmetNo   = "❌ ไม่มี"
)

// ParseDocStatus 从展示文本解析状态
func ParseDocStatus(label string) DocStatus {
	switch {
	case strings.Contains(label, "✅"):
		return DocPresent
	case strings.Contains(label, "❌"):
		return DocMissing
	default:
		return DocUnknown
	}
}

// LicenseLabel 驾照状态展示文本
func LicenseLabel(present bool) string {
	if present {
		return LabelLicenseYes
	}
	return LabelLicenseNo
}

// TaxLabel 车税状态展示文本
func TaxLabel(normal bool) string {
	if normal {
		return LabelTaxYes
	}
	return LabelTaxNo
}

// HelmetLabel 头盔状态展示文本
func HelmetLabel(present bool) string {
	if present {
		return LabelHelmetYes
	}
	return LabelHelmetNo
}

// TaxNormal 车税是否正常（源系统以 "ปกติ" 或 "✅" 子串判断）
func TaxNormal(label string) bool {
	return strings.Contains(label, "ปกติ") || strings.Contains(label, "✅")
}

// ── 登记表单允许值 ──

// Prefixes 称谓选项
var Prefixes = []string{"นาย", "นางสาว", "เด็กชาย", "เด็กหญิง", "นาง", "ครู"}

// Levels 年级选项
var Levels = []string{"ม.1", "ม.2", "ม.3", "ม.4", "ม.5", "ม.6", "ครู,บุคลากร", "พ่อค้าแม่ค้า"}

// Brands 车辆品牌选项
var Brands = []string{"Honda", "Yamaha", "Suzuki", "GPX", "Kawasaki", "อื่นๆ"}

// [自证通过] internal/model/status.go
