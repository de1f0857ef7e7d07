package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "FarewellVault"
	JWTExpirationTime        = time.Hour * 24
)

// ModeratorClaims 定义了 Token 中携带的审核员身份信息
type ModeratorClaims struct {
	ModeratorID uint64 `json:"moderator_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}
