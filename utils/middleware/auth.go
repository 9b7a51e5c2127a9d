package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the admin session token
const SessionCookieName = "session_token"

// AuthMiddleware handles JWT authentication for admin routes
type AuthMiddleware struct {
	jwtManager       *auth.JWTManager
	blacklistService *auth.BlacklistService
	db               *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:       jwtManager,
		blacklistService: auth.NewBlacklistService(db),
		db:               db,
	}
}

// extractToken pulls the session token from the session cookie, falling back
// to a Bearer Authorization header for non-browser clients.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAdmin is middleware that requires a valid, unexpired admin session
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "Missing session token")
		}

		// Validate token
		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Session has expired")
			}
			return response.Unauthorized(c, "Invalid session token")
		}

		// Check if token is revoked (blacklisted)
		isRevoked, err := m.blacklistService.IsTokenRevoked(c.Context(), claims.ID)
		if err != nil {
			return response.InternalServerError(c, "Failed to check session status")
		}
		if isRevoked {
			return response.Unauthorized(c, "Session has been revoked")
		}

		// Load admin from database and verify token version
		var admin model.Admin
		if err := m.db.First(&admin, claims.AdminID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return response.Unauthorized(c, "Admin not found")
			}
			return response.InternalServerError(c, "Failed to load admin")
		}

		if admin.TokenVersion != claims.TokenVersion {
			return response.Unauthorized(c, "Session has been invalidated")
		}

		// Store admin info in context
		c.Locals("admin_id", claims.AdminID)
		c.Locals("admin_username", claims.Username)
		c.Locals("claims", claims)
		c.Locals("admin", &admin)
		c.Locals("token_jti", claims.ID)

		return c.Next()
	}
}

// GetAdminID extracts the admin ID from context
func GetAdminID(c *fiber.Ctx) (uint, bool) {
	adminID := c.Locals("admin_id")
	if adminID == nil {
		return 0, false
	}
	id, ok := adminID.(uint)
	return id, ok
}

// GetAdmin extracts the full admin object from context
func GetAdmin(c *fiber.Ctx) (*model.Admin, bool) {
	admin := c.Locals("admin")
	if admin == nil {
		return nil, false
	}
	a, ok := admin.(*model.Admin)
	return a, ok
}

// GetClaims extracts full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims := c.Locals("claims")
	if claims == nil {
		return nil, false
	}
	claimsData, ok := claims.(*auth.Claims)
	return claimsData, ok
}

// GetTokenJTI extracts the token JTI from context
func GetTokenJTI(c *fiber.Ctx) (string, bool) {
	jti := c.Locals("token_jti")
	if jti == nil {
		return "", false
	}
	j, ok := jti.(string)
	return j, ok
}
