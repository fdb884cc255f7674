// Package middleware provides HTTP middleware for the blog service.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/models"
	"github.com/goblog/blog-service/internal/service"
	"github.com/goblog/blog-service/internal/session"
)

// currentUserKey is the gin context key holding the resolved *models.User.
const currentUserKey = "currentUser"

// adminUserID identifies the only account allowed to manage posts: the
// first account ever registered.
const adminUserID int64 = 1

// LoadUser resolves the session cookie to a User for the duration of the
// request. A session referencing a user that no longer exists falls back to
// anonymous instead of failing the request.
func LoadUser(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := session.CurrentUserID(c); ok {
			if user, err := auth.UserByID(c.Request.Context(), id); err == nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil when
// the visitor is anonymous.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// AdminOnly aborts with 403 unless the current user is the admin account.
// Anonymous visitors take the same path; the guard never dereferences a
// missing user.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.ID != adminUserID {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
