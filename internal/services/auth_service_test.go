package services

import (
	"testing"
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/database"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/stretchr/testify/assert"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type stubSender struct {
	sent []sentMail
}

func (s *stubSender) Send(to, subject, htmlBody string) error {
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func setupAuthTest(t *testing.T) (*repository.UserRepository, *repository.CategoryRepository, *stubSender, *AuthService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	categoryService := NewCategoryService(categoryRepo, t.TempDir())
	verifyService := NewVerifyService("test-secret", time.Hour)
	sender := &stubSender{}

	authService := NewAuthService(userRepo, categoryService, verifyService, sender, "http://localhost:8080", db, false)

	return userRepo, categoryRepo, sender, authService
}

func TestAuthService_Register(t *testing.T) {
	userRepo, categoryRepo, sender, authService := setupAuthTest(t)

	user, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)
	assert.False(t, user.EmailVerified)

	stored, err := userRepo.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "alice", stored.Username)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)

	categories, err := categoryRepo.ListByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, categories, 16)

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Body, "/verify_email/")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, _, _, authService := setupAuthTest(t)

	_, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)

	_, err = authService.Register("alice2", "alice@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// case-insensitive
	_, err = authService.Register("alice3", "ALICE@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_MalformedEmail(t *testing.T) {
	userRepo, _, sender, authService := setupAuthTest(t)

	for _, email := range []string{"not-an-email", "", "alice@", "@example.com", "Alice <alice@example.com>"} {
		_, err := authService.Register("bob", email, "correct horse")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}

	users, err := userRepo.FindAll()
	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.Empty(t, sender.sent)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	_, _, _, authService := setupAuthTest(t)

	_, err := authService.Register("alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_Authenticate(t *testing.T) {
	userRepo, _, _, authService := setupAuthTest(t)

	user, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)

	// unverified users cannot log in
	_, err = authService.Authenticate("alice@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	user.EmailVerified = true
	assert.NoError(t, userRepo.Update(user))

	got, err := authService.Authenticate("alice@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = authService.Authenticate("alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Authenticate("nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_ResendsVerification(t *testing.T) {
	_, _, sender, authService := setupAuthTest(t)

	_, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	_, err = authService.Authenticate("alice@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Len(t, sender.sent, 2)

	// a wrong password must not trigger mail
	_, err = authService.Authenticate("alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, sender.sent, 2)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	userRepo, _, _, authService := setupAuthTest(t)

	user, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)

	token, err := authService.verifyService.GenerateToken(user)
	assert.NoError(t, err)

	verified, err := authService.VerifyEmail(EncodeUserID(user.ID), token)
	assert.NoError(t, err)
	assert.True(t, verified.EmailVerified)

	stored, _ := userRepo.FindByID(user.ID)
	assert.True(t, stored.EmailVerified)
}

func TestAuthService_VerifyEmail_TokenIsSingleUse(t *testing.T) {
	_, _, _, authService := setupAuthTest(t)

	user, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)

	token, err := authService.verifyService.GenerateToken(user)
	assert.NoError(t, err)

	_, err = authService.VerifyEmail(EncodeUserID(user.ID), token)
	assert.NoError(t, err)

	// the flag flip invalidates the state fingerprint
	_, err = authService.VerifyEmail(EncodeUserID(user.ID), token)
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)
}

func TestAuthService_VerifyEmail_BadInput(t *testing.T) {
	_, _, _, authService := setupAuthTest(t)

	user, err := authService.Register("alice", "alice@example.com", "correct horse")
	assert.NoError(t, err)

	token, err := authService.verifyService.GenerateToken(user)
	assert.NoError(t, err)

	_, err = authService.VerifyEmail("not base64!", token)
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)

	_, err = authService.VerifyEmail(EncodeUserID(999), token)
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)

	_, err = authService.VerifyEmail(EncodeUserID(user.ID), token+"tampered")
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)
}
