package services

import (
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/MikhailEmv/SmartBudget/internal/mail"
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidEmail       = errors.New("malformed email address")
)

const bcryptCost = 12

type AuthService struct {
	userRepo        *repository.UserRepository
	categoryService *CategoryService
	verifyService   *VerifyService
	sender          mail.Sender
	baseURL         string
	db              *gorm.DB
	autoVerify      bool
}

func NewAuthService(
	userRepo *repository.UserRepository,
	categoryService *CategoryService,
	verifyService *VerifyService,
	sender mail.Sender,
	baseURL string,
	db *gorm.DB,
	autoVerify bool,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		categoryService: categoryService,
		verifyService:   verifyService,
		sender:          sender,
		baseURL:         baseURL,
		db:              db,
		autoVerify:      autoVerify,
	}
}

// Register creates an unverified user and seeds the default category
// catalog in the same transaction, then sends the verification mail.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if addr, err := netmail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:      username,
		Email:         email,
		PasswordHash:  string(hash),
		EmailVerified: s.autoVerify,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.CreateInTx(tx, user); err != nil {
			return err
		}
		return s.categoryService.SeedDefaultsInTx(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	if !s.autoVerify {
		if err := s.SendVerification(user); err != nil {
			return user, err
		}
	}

	return user, nil
}

// Authenticate checks credentials. Unverified users get a fresh
// verification mail and ErrEmailNotVerified, matching the login flow of
// the original application.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		if err := s.SendVerification(user); err != nil {
			return nil, err
		}
		return nil, ErrEmailNotVerified
	}

	return user, nil
}

func (s *AuthService) SendVerification(user *models.User) error {
	token, err := s.verifyService.GenerateToken(user)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/verify_email/%s/%s/", s.baseURL, EncodeUserID(user.ID), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Please confirm your email address by following "+
			"<a href=%q>this link</a>.</p><p>If you did not register, ignore this message.</p>",
		user.Username, link,
	)

	return s.sender.Send(user.Email, "Confirm your email", body)
}

// VerifyEmail consumes a verification link. Any failure (bad uid, unknown
// user, tampered or expired token, already verified) yields
// ErrInvalidVerifyToken; the caller redirects to the invalid page.
func (s *AuthService) VerifyEmail(uidb64, token string) (*models.User, error) {
	id, err := DecodeUserID(uidb64)
	if err != nil {
		return nil, ErrInvalidVerifyToken
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidVerifyToken
	}

	if err := s.verifyService.CheckToken(user, token); err != nil {
		return nil, ErrInvalidVerifyToken
	}

	user.EmailVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
