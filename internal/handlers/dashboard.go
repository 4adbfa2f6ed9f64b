package handlers

import (
	"net/http"

	"github.com/MikhailEmv/SmartBudget/internal/middleware"
	"github.com/MikhailEmv/SmartBudget/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	accountService  *services.AccountService
	transferService *services.TransferService
}

func NewDashboardHandler(accountService *services.AccountService, transferService *services.TransferService) *DashboardHandler {
	return &DashboardHandler{
		accountService:  accountService,
		transferService: transferService,
	}
}

// Show renders the main page: the user's accounts and their most recent
// transactions.
func (h *DashboardHandler) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)

	accounts, err := h.accountService.List(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"User":  user,
			"Error": "Failed to load accounts",
		})
		return
	}

	transactions, err := h.transferService.RecentHistory(user.ID, 20)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"User":     user,
			"Accounts": accounts,
			"Error":    "Failed to load transactions",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":         user,
		"Accounts":     accounts,
		"Transactions": transactions,
	})
}
