package authController

import (
	"errors"
	"invest/config"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"invest/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const rememberCookie = "remember_token"

// Register creates a pending account and mails the activation link
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := services.RegisterUser(db, reqData.Name, reqData.Email, reqData.Password, config.AppConfig.SaltRound)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(email, name, token string) {
		if err := utils.SendActivationEmail(email, name, token); err != nil {
			log.Printf("Error sending activation email to %s: %v", email, err)
		}
	}(user.Email, user.Name, user.ActivationToken)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful. Check your email to activate the account.", fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"status":   user.Status,
	})
}

// Activate turns a pending account active via the emailed token
func Activate(c *fiber.Ctx) error {
	token := c.Query("token")

	user, err := services.ActivateUser(database.Database.Db, token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or already used activation token!", nil)
		}
		log.Printf("Error activating account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account activated. You can now log in.", fiber.Map{
		"email":  user.Email,
		"status": user.Status,
	})
}

// Login verifies credentials and issues a JWT, plus a remember-token cookie
// when requested
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Remember bool   `json:"remember"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	user, err := services.LoginUser(db, reqData.Email, reqData.Password, ip, c.Get("User-Agent"),
		config.AppConfig.MaxLoginAttempts, config.AppConfig.LoginWindowMins)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTooManyAttempts):
			return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, "Too many login attempts. Try again in 15 minutes.", nil)
		case errors.Is(err, services.ErrInvalidCredentials):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		case errors.Is(err, services.ErrAccountInactive):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account is inactive or pending verification.", nil)
		default:
			log.Printf("Error during login: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process login!", nil)
		}
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	if reqData.Remember {
		remember, err := services.CreateRememberToken(db, user.ID)
		if err != nil {
			log.Printf("Error creating remember token: %v", err)
		} else {
			setRememberCookie(c, remember.Token, remember.ExpiresAt)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// TokenLogin re-establishes a session from the remember-token cookie. The
// presented token is rotated on success.
func TokenLogin(c *fiber.Ctx) error {
	raw := c.Cookies(rememberCookie)
	if raw == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No remember token!", nil)
	}

	db := database.Database.Db
	user, fresh, err := services.LoginWithRememberToken(db, raw, c.IP(), c.Get("User-Agent"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			clearRememberCookie(c)
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired remember token!", nil)
		}
		log.Printf("Error during token login: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process login!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	setRememberCookie(c, fresh.Token, fresh.ExpiresAt)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the remember token and clears the cookie
func Logout(c *fiber.Ctx) error {
	raw := c.Cookies(rememberCookie)
	if err := services.RevokeRememberToken(database.Database.Db, raw); err != nil {
		log.Printf("Error revoking remember token: %v", err)
	}
	clearRememberCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// LoginHistory lists the caller's access log entries
func LoginHistory(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db

	var total int64
	db.Model(&models.AccessLog{}).Where("user_id = ?", userId).Count(&total)

	var logs []models.AccessLog
	if err := db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched!", fiber.Map{
		"logs": logs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func setRememberCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     rememberCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
	})
}

func clearRememberCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     rememberCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
}
