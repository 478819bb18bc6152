package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/wizard"
)

const (
	userIDSessionKey = "userID"
	wizardSessionKey = "wizard"
)

// currentUser pulls the user loaded by the session middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// loadBuffer rebuilds the in-progress questionnaire buffer from the
// session. A missing or unreadable entry yields a fresh buffer.
func loadBuffer(c *gin.Context) *wizard.Buffer {
	session := sessions.Default(c)
	raw, _ := session.Get(wizardSessionKey).(string)
	return wizard.Decode(raw)
}

// saveBuffer writes the buffer back into the session.
func saveBuffer(c *gin.Context, b *wizard.Buffer) error {
	session := sessions.Default(c)
	session.Set(wizardSessionKey, b.Encode())
	return session.Save()
}

// clearBuffer discards the questionnaire buffer, leaving the rest of
// the session (the login) intact.
func clearBuffer(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(wizardSessionKey)
	return session.Save()
}
