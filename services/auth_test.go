package services

import (
	"fmt"
	"invest/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret123"

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotEmpty(t, user.ActivationToken)
	assert.NotEmpty(t, user.Username)

	// Stored password is a hash, not the plaintext
	assert.NotEqual(t, testPassword, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(testPassword)))

	_, err = RegisterUser(db, "Other Ana", "ana@example.com", "different", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestActivateUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	_, err = ActivateUser(db, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ActivateUser(db, "bogus-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	activated, err := ActivateUser(db, user.ActivationToken)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, activated.Status)
	assert.Empty(t, activated.ActivationToken)

	// Tokens are single use
	_, err = ActivateUser(db, user.ActivationToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	_, err = ActivateUser(db, user.ActivationToken)
	require.NoError(t, err)

	logged, err := LoginUser(db, "ana@example.com", testPassword, "10.0.0.1", "test-agent", 5, 15)
	require.NoError(t, err)
	assert.NotNil(t, logged.LastLogin)

	var logs int64
	db.Model(&models.AccessLog{}).Where("user_id = ? AND success = ?", user.ID, true).Count(&logs)
	assert.EqualValues(t, 1, logs)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	_, err = ActivateUser(db, user.ActivationToken)
	require.NoError(t, err)

	_, err = LoginUser(db, "ana@example.com", "wrong", "10.0.0.1", "ua", 5, 15)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email fails the same way
	_, err = LoginUser(db, "nobody@example.com", testPassword, "10.0.0.1", "ua", 5, 15)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_InactiveAccount(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	// Correct password on a never-activated account
	_, err = LoginUser(db, "ana@example.com", testPassword, "10.0.0.1", "ua", 5, 15)
	assert.ErrorIs(t, err, ErrAccountInactive)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "ana@example.com").
		Update("status", models.UserStatusSuspended).Error)

	_, err = LoginUser(db, "ana@example.com", testPassword, "10.0.0.1", "ua", 5, 15)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestLoginUser_Lockout(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "Ana Souza", "ana@example.com", testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	_, err = ActivateUser(db, user.ActivationToken)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = LoginUser(db, "ana@example.com", fmt.Sprintf("wrong-%d", i), "10.0.0.1", "ua", 5, 15)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Sixth attempt is blocked even with the right password
	_, err = LoginUser(db, "ana@example.com", testPassword, "10.0.0.1", "ua", 5, 15)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// Attempts outside the window no longer count
	require.NoError(t, db.Model(&models.LoginAttempt{}).
		Where("email = ?", "ana@example.com").
		Update("created_at", time.Now().Add(-16*time.Minute)).Error)

	logged, err := LoginUser(db, "ana@example.com", testPassword, "10.0.0.1", "ua", 5, 15)
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	// Success wiped the attempt rows
	var attempts int64
	db.Model(&models.LoginAttempt{}).Where("email = ?", "ana@example.com").Count(&attempts)
	assert.Zero(t, attempts)
}

func TestRememberToken_Rotation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	token, err := CreateRememberToken(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, token.Token, 64)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), token.ExpiresAt, time.Minute)

	logged, fresh, err := LoginWithRememberToken(db, token.Token, "10.0.0.1", "ua")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEqual(t, token.Token, fresh.Token)

	// The spent token no longer works, the replacement does
	_, _, err = LoginWithRememberToken(db, token.Token, "10.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, _, err = LoginWithRememberToken(db, fresh.Token, "10.0.0.1", "ua")
	assert.NoError(t, err)
}

func TestRememberToken_ExpiredAndRevoked(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	expired, err := CreateRememberToken(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(expired).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, _, err = LoginWithRememberToken(db, expired.Token, "10.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := CreateRememberToken(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, RevokeRememberToken(db, token.Token))

	_, _, err = LoginWithRememberToken(db, token.Token, "10.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRememberToken_InactiveUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	token, err := CreateRememberToken(db, user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("status", models.UserStatusSuspended).Error)

	_, _, err = LoginWithRememberToken(db, token.Token, "10.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
