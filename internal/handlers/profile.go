package handlers

import (
	"net/http"
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.profileService.GetOrCreate(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
			"User":    user,
			"Profile": &models.UserProfile{},
			"Error":   "Failed to load profile",
		})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":    user,
		"Profile": profile,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	upd := services.ProfileUpdate{
		Name:       c.PostForm("name"),
		Surname:    c.PostForm("surname"),
		Patronymic: c.PostForm("patronymic"),
		Phone:      c.PostForm("phone"),
		Sex:        c.PostForm("sex"),
	}

	if dob := c.PostForm("date_of_birth"); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			profile, _ := h.profileService.GetOrCreate(user.ID)
			c.HTML(http.StatusOK, "profile.html", gin.H{
				"User":    user,
				"Profile": profile,
				"Error":   "Date of birth must be YYYY-MM-DD",
			})
			return
		}
		upd.DateOfBirth = &parsed
	}

	if _, err := h.profileService.Update(user.ID, upd); err != nil {
		profile, _ := h.profileService.GetOrCreate(user.ID)
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
			"User":    user,
			"Profile": profile,
			"Error":   "Failed to save profile",
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/")
}
