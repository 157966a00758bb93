package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	sessionsvc "storefront/internal/service/session"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(store *sessionsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}

		res, err := store.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": domain.ErrDataUnavailable.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func logoutHandler(store *sessionsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Logout()
		c.Status(http.StatusNoContent)
	}
}

func sessionHandler(store *sessionsvc.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Current())
	}
}
