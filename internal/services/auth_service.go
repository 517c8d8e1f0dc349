// internal/services/auth_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Bhavik-1602/misha-barnd-factory/internal/apperrors"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/config"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/models"
	"github.com/Bhavik-1602/misha-barnd-factory/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	Admin *models.AdminUser `json:"admin"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.BadRequest("validation failed: %v", firstValidationMessage(err))
	}

	var admin models.AdminUser
	if err := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.BadRequest("invalid email or password")
		}
		return nil, apperrors.Internal(err, "failed to load account")
	}

	if !admin.CheckPassword(req.Password) {
		return nil, apperrors.BadRequest("invalid email or password")
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to issue token")
	}

	return &LoginResponse{Token: token, Admin: &admin}, nil
}
