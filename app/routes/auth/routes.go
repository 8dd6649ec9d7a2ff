package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
)

// SetupAuthRoutes sets up all auth-related routes
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	protected := app.Group("/api/auth")
	protected.Use(AuthMiddleware)
	protected.Post("/change-password", ChangePasswordAPI)
	protected.Get("/me", MeAPI)
}

// MeAPI returns the authenticated user.
func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// JWT from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.FirstName+" "+claims.LastName)
	c.Locals("user_roles", claims.Roles)

	return c.Next()
}
