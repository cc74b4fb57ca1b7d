package web

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "mv_session"

// sessionID returns the caller's session id, minting one and setting the
// cookie if the request carries none. The cookie itself is only an opaque
// key into the candidate cache; expiry of the cached value is Redis's job.
func (h *Handler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := newSessionID()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
