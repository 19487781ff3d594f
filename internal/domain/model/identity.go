package model

type IdentityStatus string

const (
	StatusActive    IdentityStatus = "ACTIVE"
	StatusInvited   IdentityStatus = "INVITED"
	StatusSuspended IdentityStatus = "SUSPENDED"
)

// Identity は認証プロバイダーが返すユーザーのスナップショット。
// このシステムでは読み取り専用（作成・更新はプロバイダー側の責任）。
type Identity struct {
	ID        string
	FirstName string
	Status    IdentityStatus
}

// ゲートを通過できるのはACTIVEだけ。
func (i Identity) IsActive() bool {
	return i.Status == StatusActive
}
