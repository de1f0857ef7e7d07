package dto

// CredentialDTO 登录/注册凭证
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}
