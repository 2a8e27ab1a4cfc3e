package dto

// LevelCount 按年级统计的登记车辆数
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// SummaryResponse 工作台汇总
type SummaryResponse struct {
	Total          int          `json:"total"`
	LicenseCount   int          `json:"license_count"`
	LicensePercent int          `json:"license_percent"`
	TaxCount       int          `json:"tax_count"`
	TaxPercent     int          `json:"tax_percent"`
	ByLevel        []LevelCount `json:"by_level"`
}

// [自证通过] internal/dto/summary.go
