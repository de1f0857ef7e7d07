package service

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/model"
	"FarewellVault/internal/pkg/redis"
	"FarewellVault/internal/pkg/security"
	"FarewellVault/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

type AuthService interface {
	Register(ctx context.Context, credential *dto.CredentialDTO) error
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	moderatorRepo repository.ModeratorRepo
}

func NewAuthService(moderatorRepo repository.ModeratorRepo) AuthService {
	return &authServiceImpl{moderatorRepo: moderatorRepo}
}

func (s *authServiceImpl) Register(ctx context.Context, credential *dto.CredentialDTO) error {
	if credential.Email == "" || credential.Password == "" {
		return ErrMissingLoginCredentials
	}

	passwordHash, err := security.HashPassword(credential.Password)
	if err != nil {
		return UnExpectedError
	}

	moderator := &model.Moderator{
		Email:    credential.Email,
		Password: passwordHash,
	}
	err = s.moderatorRepo.CreateModerator(ctx, moderator)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrModeratorExist
		}
		return UnExpectedError
	}
	return nil
}

// Login 凭据不匹配与账号不存在返回同一个错误，不泄露注册状态
func (s *authServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	if credential.Email == "" || credential.Password == "" {
		return "", ErrMissingLoginCredentials
	}

	moderator, err := s.moderatorRepo.GetModeratorByEmail(ctx, credential.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPasswordIncorrect
		}
		return "", UnExpectedError
	}

	if err = security.CheckPasswordHash(credential.Password, moderator.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(moderator.ID, moderator.Email)
	if err != nil {
		return "", UnExpectedError
	}
	return token, nil
}

// Logout 将 Token 签名拉黑至其自然过期
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}
