package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/repository"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/utils"
)

type AuthHandler struct {
	log *zap.Logger
}

func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

// Signup creates an account and logs the new user straight in, matching
// the post-signup redirect into the questionnaire.
func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if !utils.IsValidUsername(username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-32 characters: letters, digits, underscores."})
		return
	}
	if !utils.IsComplexPassword(password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with upper, lower, digit and symbol."})
		return
	}

	user, err := repository.CreateUser(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists. Please choose a different one."})
			return
		}
		h.log.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	session := sessions.Default(c)
	session.Set(userIDSessionKey, user.ID)
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session after signup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"redirect": "/assessment/step/1",
	})
}

// Login authenticates a username/password pair. Unknown usernames and
// wrong passwords return the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := repository.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password. Please try again."})
			return
		}
		h.log.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	session := sessions.Default(c)
	session.Set(userIDSessionKey, user.ID)
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session after login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"redirect": "/assessment/step/1",
	})
}

// Logout clears the session, including any in-progress questionnaire.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.log.Error("Failed to clear session on logout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}
