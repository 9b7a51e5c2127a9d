package auth

import (
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"github.com/greenvalley-school/school-cms-api/utils/middleware"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	blacklistService     *auth.BlacklistService
	validator            *validation.Validator
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		blacklistService:     auth.NewBlacklistService(db),
		validator:            validation.NewValidator(),
		bruteForceProtection: bruteForceProtection,
	}
}
