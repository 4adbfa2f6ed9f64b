package handlers

import (
	"errors"
	"net/http"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	mediaDir        string
}

func NewCategoryHandler(categoryService *services.CategoryService, mediaDir string) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		mediaDir:        mediaDir,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	categories, err := h.categoryService.List(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "categories.html", gin.H{
			"User":  user,
			"Error": "Failed to load categories",
		})
		return
	}

	c.HTML(http.StatusOK, "categories.html", gin.H{
		"User":       user,
		"Categories": categories,
	})
}

func (h *CategoryHandler) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "category_form.html", gin.H{
		"User":   middleware.CurrentUser(c),
		"Action": "/categories/create/",
		"Name":   "",
		"Kind":   models.CategoryExpense,
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	name := c.PostForm("name")
	kind := c.PostForm("kind")

	render := func(status int, msg string) {
		c.HTML(status, "category_form.html", gin.H{
			"User":   user,
			"Action": "/categories/create/",
			"Name":   name,
			"Kind":   kind,
			"Error":  msg,
		})
	}

	if name == "" {
		render(http.StatusOK, "Name is required")
		return
	}

	icon, err := saveUploadedIcon(c, h.mediaDir, user.ID)
	if err != nil {
		render(http.StatusOK, "Failed to save icon")
		return
	}

	if _, err := h.categoryService.Create(user.ID, name, kind, icon); err != nil {
		if errors.Is(err, services.ErrInvalidCategoryKind) {
			render(http.StatusOK, "Kind must be expense or income")
		} else {
			render(http.StatusInternalServerError, "Failed to create category")
		}
		return
	}

	c.Redirect(http.StatusFound, "/categories/")
}

func (h *CategoryHandler) ShowEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/categories/")
		return
	}

	category, err := h.categoryService.Get(user.ID, id)
	if err != nil {
		c.Redirect(http.StatusFound, "/categories/")
		return
	}

	c.HTML(http.StatusOK, "category_form.html", gin.H{
		"User":   user,
		"Action": "/categories/" + c.Param("id") + "/edit/",
		"Name":   category.Name,
		"Kind":   category.Kind,
	})
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/categories/")
		return
	}

	name := c.PostForm("name")
	kind := c.PostForm("kind")

	icon, err := saveUploadedIcon(c, h.mediaDir, user.ID)
	if err != nil {
		icon = ""
	}

	if _, err := h.categoryService.Update(user.ID, id, name, kind, icon); err != nil {
		c.HTML(http.StatusOK, "category_form.html", gin.H{
			"User":   user,
			"Action": "/categories/" + c.Param("id") + "/edit/",
			"Name":   name,
			"Kind":   kind,
			"Error":  "Failed to update category",
		})
		return
	}

	c.Redirect(http.StatusFound, "/categories/")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err == nil {
		h.categoryService.Delete(user.ID, id)
	}

	c.Redirect(http.StatusFound, "/categories/")
}
