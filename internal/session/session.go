// Package session manages the signed cookie identifying the current user and
// carries one-shot flash messages between requests.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	sessionName = "blog_session"
	userIDKey   = "user_id"

	maxAgeSeconds = 7 * 24 * 60 * 60
)

// Middleware returns the cookie-backed session middleware. The cookie is
// signed with secret, so its contents are tamper-evident.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
	})
	return sessions.Sessions(sessionName, store)
}

// SignIn binds the session to the given user id.
func SignIn(c *gin.Context, userID int64) error {
	s := sessions.Default(c)
	s.Set(userIDKey, userID)
	return s.Save()
}

// SignOut clears the session, returning the visitor to anonymous.
func SignOut(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// CurrentUserID reports the user id stored in the session, if any.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v := sessions.Default(c).Get(userIDKey)
	id, ok := v.(int64)
	return id, ok
}

// Flash queues a one-shot message shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	s := sessions.Default(c)
	s.AddFlash(message)
	_ = s.Save()
}

// Flashes drains all queued flash messages.
func Flashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
