package handler

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/pkg/response"
	"FarewellVault/internal/pkg/util"
	"FarewellVault/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Register(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&credential); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.authSvc.Register(c.Request.Context(), &credential); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AuthHandler) Login(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBind(&credential); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.Login(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
