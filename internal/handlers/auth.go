package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(email, password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			msg = "Invalid email or password"
		case errors.Is(err, services.ErrEmailNotVerified):
			msg = "Your email is not verified; a new verification link has been sent"
		default:
			msg = "Login failed, try again later"
			log.Printf("login failed for %s: %v", email, err)
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": msg,
			"Email": email,
		})
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Login failed, try again later",
			"Email": email,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Username": "", "Email": ""})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password1 := c.PostForm("password1")
	password2 := c.PostForm("password2")

	render := func(msg string) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Error":    msg,
			"Username": username,
			"Email":    email,
		})
	}

	if username == "" || email == "" {
		render("Username and email are required")
		return
	}
	if password1 != password2 {
		render("Passwords do not match")
		return
	}

	_, err := h.authService.Register(username, email, password1)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			render("A user with this email already exists")
		case errors.Is(err, services.ErrInvalidEmail):
			render("Enter a valid email address")
		case errors.Is(err, services.ErrWeakPassword):
			render("Password must be at least 8 characters")
		default:
			log.Printf("registration failed for %s: %v", email, err)
			render("Registration failed, try again later")
		}
		return
	}

	c.Redirect(http.StatusFound, "/confirm_email/")
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	c.HTML(http.StatusOK, "confirm_email.html", gin.H{})
}

func (h *AuthHandler) InvalidVerify(c *gin.Context) {
	c.HTML(http.StatusOK, "invalid_verify.html", gin.H{})
}

// VerifyEmail handles the link from the verification mail. Success logs
// the user in; every failure mode lands on the invalid page.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	uidb64 := c.Param("uid")
	token := c.Param("token")

	user, err := h.authService.VerifyEmail(uidb64, token)
	if err != nil {
		c.Redirect(http.StatusFound, "/invalid_verify/")
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login/")
}
