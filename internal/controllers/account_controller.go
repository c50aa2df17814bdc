package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busmate/internal/config"
	"busmate/internal/store"
)

// ListAccounts lists every account, unfiltered. Diagnostic endpoint.
func ListAccounts(c *gin.Context) {
	accounts, err := store.NewAccountRepository(config.DB).ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing accounts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

// CountAccounts returns the total number of registered accounts.
func CountAccounts(c *gin.Context) {
	count, err := store.NewAccountRepository(config.DB).CountAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting accounts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
