package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"busmate/internal/config"
	"busmate/internal/store"
)

// GetPassengerProfile returns the signed-in passenger's profile joined
// with the account email and type. 404 means the profile step of
// registration was never completed, not a broken account.
func GetPassengerProfile(c *gin.Context) {
	accountID := authenticatedAccountID(c)

	info, err := store.NewProfileRepository(config.DB).GetPassengerProfile(accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not completed"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": info})
}

// GetOperatorProfile is the bus operator counterpart of GetPassengerProfile.
func GetOperatorProfile(c *gin.Context) {
	accountID := authenticatedAccountID(c)

	info, err := store.NewProfileRepository(config.DB).GetOperatorProfile(accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not completed"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": info})
}

// authenticatedAccountID pulls the account ID the JWT middleware stored.
func authenticatedAccountID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}
