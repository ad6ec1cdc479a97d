package services

import (
	"errors"
	"invest/models"
	"invest/utils"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const rememberTokenDays = 30

// RegisterUser creates a pending account with a hashed password and an
// activation token to be emailed to the client
func RegisterUser(db *gorm.DB, name, email, password string, bcryptCost int) (*models.User, error) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateToken(16)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:            name,
		Username:        utils.GenerateUsername(name),
		Email:           email,
		Password:        string(hashed),
		Role:            models.RoleClient,
		Status:          models.UserStatusPending,
		ActivationToken: token,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ActivateUser flips a pending account to active when the emailed token matches
func ActivateUser(db *gorm.DB, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	var user models.User
	if err := db.Where("activation_token = ? AND status = ?", token, models.UserStatusPending).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	user.Status = models.UserStatusActive
	user.ActivationToken = ""
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginUser checks the lockout window, verifies credentials and account
// status, and records the outcome. An inactive account fails the same way for
// right and wrong passwords, after the password check.
func LoginUser(db *gorm.DB, email, password, ip, userAgent string, maxAttempts, windowMins int) (*models.User, error) {
	windowStart := time.Now().Add(-time.Duration(windowMins) * time.Minute)

	var attempts int64
	if err := db.Model(&models.LoginAttempt{}).
		Where("email = ? AND created_at > ?", email, windowStart).
		Count(&attempts).Error; err != nil {
		return nil, err
	}
	if attempts >= int64(maxAttempts) {
		logAccess(db, nil, ip, userAgent, false, "login blocked: too many attempts")
		return nil, ErrTooManyAttempts
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			recordFailedAttempt(db, email, ip, userAgent)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		recordFailedAttempt(db, email, ip, userAgent)
		return nil, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		logAccess(db, &user.ID, ip, userAgent, false, "account inactive")
		return nil, ErrAccountInactive
	}

	// Successful login clears the attempt counter
	db.Where("email = ?", email).Delete(&models.LoginAttempt{})

	now := time.Now()
	user.LastLogin = &now
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}

	logAccess(db, &user.ID, ip, userAgent, true, "")
	return &user, nil
}

// CreateRememberToken issues a 30-day server-side token for cookie logins
func CreateRememberToken(db *gorm.DB, userID uint) (*models.RememberToken, error) {
	raw, err := utils.GenerateToken(32)
	if err != nil {
		return nil, err
	}
	token := models.RememberToken{
		UserID:    userID,
		Token:     raw,
		ExpiresAt: time.Now().AddDate(0, 0, rememberTokenDays),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// LoginWithRememberToken resolves an unexpired token to an active user and
// rotates it, returning the replacement token
func LoginWithRememberToken(db *gorm.DB, raw, ip, userAgent string) (*models.User, *models.RememberToken, error) {
	var token models.RememberToken
	err := db.Where("token = ? AND expires_at > ?", raw, time.Now()).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}

	var user models.User
	if err := db.Where("id = ? AND status = ?", token.UserID, models.UserStatusActive).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}

	// Rotate: the presented token is spent
	if err := db.Delete(&token).Error; err != nil {
		return nil, nil, err
	}
	fresh, err := CreateRememberToken(db, user.ID)
	if err != nil {
		return nil, nil, err
	}

	logAccess(db, &user.ID, ip, userAgent, true, "token login")
	return &user, fresh, nil
}

// RevokeRememberToken deletes a stored token on logout
func RevokeRememberToken(db *gorm.DB, raw string) error {
	if raw == "" {
		return nil
	}
	return db.Where("token = ?", raw).Delete(&models.RememberToken{}).Error
}

func recordFailedAttempt(db *gorm.DB, email, ip, userAgent string) {
	db.Create(&models.LoginAttempt{Email: email, IPAddress: ip})
	logAccess(db, nil, ip, userAgent, false, "invalid credentials")
}

func logAccess(db *gorm.DB, userID *uint, ip, userAgent string, success bool, message string) {
	db.Create(&models.AccessLog{
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		Success:   success,
		Message:   message,
	})
}
