package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	transferService *services.TransferService
	accountService  *services.AccountService
}

func NewTransferHandler(transferService *services.TransferService, accountService *services.AccountService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		accountService:  accountService,
	}
}

type transferForm struct {
	FromAccount string
	ToAccount   string
	Amount      string
	Date        string
	Comment     string
}

func (h *TransferHandler) renderForm(c *gin.Context, status int, form transferForm, fieldErrors map[string]string) {
	user := middleware.CurrentUser(c)

	ownAccounts, _ := h.accountService.List(user.ID)
	allAccounts, _ := h.accountService.ListAll()

	c.HTML(status, "transfer.html", gin.H{
		"User":        user,
		"OwnAccounts": ownAccounts,
		"AllAccounts": allAccounts,
		"Form":        form,
		"FieldErrors": fieldErrors,
	})
}

func (h *TransferHandler) ShowForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, transferForm{Date: time.Now().Format("2006-01-02")}, nil)
}

func (h *TransferHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	form := transferForm{
		FromAccount: c.PostForm("from_account"),
		ToAccount:   c.PostForm("to_account"),
		Amount:      c.PostForm("amount"),
		Date:        c.PostForm("date"),
		Comment:     c.PostForm("comment"),
	}

	fieldErrors := map[string]string{}

	fromID, err := parseID(form.FromAccount)
	if err != nil {
		fieldErrors["from_account"] = "Choose a source account"
	}
	toID, err := parseID(form.ToAccount)
	if err != nil {
		fieldErrors["to_account"] = "Choose a destination account"
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || !amount.IsPositive() {
		fieldErrors["amount"] = "Amount must be a positive number"
	}

	date := time.Now()
	if form.Date != "" {
		date, err = time.Parse("2006-01-02", form.Date)
		if err != nil {
			fieldErrors["date"] = "Date must be YYYY-MM-DD"
		}
	}

	if len(form.Comment) > 200 {
		fieldErrors["comment"] = "Comment must be at most 200 characters"
	}

	if len(fieldErrors) > 0 {
		h.renderForm(c, http.StatusOK, form, fieldErrors)
		return
	}

	_, err = h.transferService.Transfer(user.ID, fromID, toID, amount, date, form.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientFunds):
			fieldErrors["from_account"] = "Insufficient funds on this account"
		case errors.Is(err, services.ErrSameAccount):
			fieldErrors["to_account"] = "Destination must differ from source"
		case errors.Is(err, services.ErrNotAccountOwner):
			fieldErrors["from_account"] = "You can only transfer from your own account"
		case errors.Is(err, services.ErrAccountNotFound):
			fieldErrors["from_account"] = "Account not found"
		case errors.Is(err, services.ErrInvalidAmount):
			fieldErrors["amount"] = "Amount must be a positive number"
		default:
			fieldErrors["form"] = "Transfer failed, try again later"
		}
		h.renderForm(c, http.StatusOK, form, fieldErrors)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
