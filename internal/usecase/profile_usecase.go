package usecase

import "storefront/internal/domain/model"

type ProfileUsecase struct{}

func NewProfileUsecase() *ProfileUsecase {
	return &ProfileUsecase{}
}

// 画面表示に必要な項目だけ。他のフィールドは境界を越えない。
type ProfileSummaryOutput struct {
	FirstName string `json:"firstName"`
}

// GetProfileSummary はIdentityから表示名だけを射影する。
func (u *ProfileUsecase) GetProfileSummary(identity model.Identity) ProfileSummaryOutput {
	return ProfileSummaryOutput{FirstName: identity.FirstName}
}
