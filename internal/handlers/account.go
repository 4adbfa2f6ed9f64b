package handlers

import (
	"errors"
	"net/http"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	accountService *services.AccountService
	mediaDir       string
}

func NewAccountHandler(accountService *services.AccountService, mediaDir string) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		mediaDir:       mediaDir,
	}
}

func (h *AccountHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	accounts, err := h.accountService.List(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "accounts.html", gin.H{
			"User":  user,
			"Error": "Failed to load accounts",
		})
		return
	}

	c.HTML(http.StatusOK, "accounts.html", gin.H{
		"User":     user,
		"Accounts": accounts,
	})
}

func (h *AccountHandler) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "account_form.html", gin.H{
		"User":    middleware.CurrentUser(c),
		"Action":  "/accounts/create/",
		"Name":    "",
		"Balance": "",
	})
}

func (h *AccountHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	name := c.PostForm("name")
	balanceStr := c.PostForm("balance")

	render := func(status int, msg string) {
		c.HTML(status, "account_form.html", gin.H{
			"User":    user,
			"Action":  "/accounts/create/",
			"Name":    name,
			"Balance": balanceStr,
			"Error":   msg,
		})
	}

	if name == "" {
		render(http.StatusOK, "Name is required")
		return
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		render(http.StatusOK, "Balance must be a number")
		return
	}

	icon, err := saveUploadedIcon(c, h.mediaDir, user.ID)
	if err != nil {
		render(http.StatusOK, "Failed to save icon")
		return
	}

	if _, err := h.accountService.Create(user.ID, name, balance, icon); err != nil {
		if errors.Is(err, services.ErrAccountNameTaken) {
			render(http.StatusOK, "You already have an account with this name")
		} else {
			render(http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	c.Redirect(http.StatusFound, "/accounts/")
}

func (h *AccountHandler) ShowEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/accounts/")
		return
	}

	account, err := h.accountService.Get(user.ID, id)
	if err != nil {
		c.Redirect(http.StatusFound, "/accounts/")
		return
	}

	c.HTML(http.StatusOK, "account_form.html", gin.H{
		"User":    user,
		"Action":  "/accounts/" + c.Param("id") + "/edit/",
		"Name":    account.Name,
		"Balance": account.Balance.StringFixed(2),
	})
}

func (h *AccountHandler) Edit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/accounts/")
		return
	}

	name := c.PostForm("name")
	balanceStr := c.PostForm("balance")

	render := func(msg string) {
		c.HTML(http.StatusOK, "account_form.html", gin.H{
			"User":    user,
			"Action":  "/accounts/" + c.Param("id") + "/edit/",
			"Name":    name,
			"Balance": balanceStr,
			"Error":   msg,
		})
	}

	if name == "" {
		render("Name is required")
		return
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		render("Balance must be a number")
		return
	}

	icon, err := saveUploadedIcon(c, h.mediaDir, user.ID)
	if err != nil {
		icon = ""
	}

	if _, err := h.accountService.Update(user.ID, id, name, balance, icon); err != nil {
		render("Failed to update account")
		return
	}

	c.Redirect(http.StatusFound, "/accounts/")
}

func (h *AccountHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := parseIDParam(c, "id")
	if err == nil {
		h.accountService.Delete(user.ID, id)
	}

	c.Redirect(http.StatusFound, "/accounts/")
}
