package middleware

import (
	"net/http"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"

type AuthMiddleware struct {
	userRepo *repository.UserRepository
}

func NewAuthMiddleware(userRepo *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo}
}

// RequireLogin redirects anonymous requests to the login page and loads
// the session user into the gin context for handlers downstream.
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		value := session.Get(sessionUserKey)

		userID, ok := value.(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil || user == nil {
			session.Clear()
			session.Save()
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// SetSessionUser establishes a login session for the given user.
func SetSessionUser(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	return session.Save()
}

func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	return value.(*models.User)
}
