// Package middleware resolves the cookie session into an explicit
// Identity once per request. USER and ADMIN logins live under
// distinct session key namespaces, and each role gate checks only its
// own namespace, so a session established on one surface can never
// satisfy the other.
package middleware

import (
	"net/http"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"

	userIDKey    = "user_id"
	userNameKey  = "user_name"
	userEmailKey = "user_email"
	userRoleKey  = "user_role"

	adminIDKey    = "admin_id"
	adminNameKey  = "admin_name"
	adminEmailKey = "admin_email"
	adminRoleKey  = "admin_role"
)

// Identity is the authenticated caller, resolved at the boundary and
// passed explicitly to handlers and services.
type Identity struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// SaveUserSession records a USER login under the user-namespaced keys.
func SaveUserSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(userIDKey, user.ID)
	session.Set(userNameKey, user.Name)
	session.Set(userEmailKey, user.Email)
	session.Set(userRoleKey, user.Role)
	return session.Save()
}

// SaveAdminSession records an ADMIN login under the admin-namespaced keys.
func SaveAdminSession(c *gin.Context, admin *models.User) error {
	session := sessions.Default(c)
	session.Set(adminIDKey, admin.ID)
	session.Set(adminNameKey, admin.Name)
	session.Set(adminEmailKey, admin.Email)
	session.Set(adminRoleKey, admin.Role)
	return session.Save()
}

// ClearSession invalidates the whole session. Safe to call when no
// session exists, which makes logout idempotent.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// RequireUser admits only sessions established through the USER login
// surface.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolve(c, userIDKey, userNameKey, userEmailKey, userRoleKey, models.RoleUser)
		if !ok {
			abortUnauthorized(c, "User access required")
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin admits only sessions established through the ADMIN
// login surface.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolve(c, adminIDKey, adminNameKey, adminEmailKey, adminRoleKey, models.RoleAdmin)
		if !ok {
			abortUnauthorized(c, "Admin access required")
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity resolved by a Require* gate.
// Only valid below one of those gates.
func CurrentIdentity(c *gin.Context) Identity {
	return c.MustGet(identityKey).(Identity)
}

func resolve(c *gin.Context, idKey, nameKey, emailKey, roleKey, wantRole string) (Identity, bool) {
	session := sessions.Default(c)

	id, ok := session.Get(idKey).(uint)
	if !ok || id == 0 {
		return Identity{}, false
	}
	role, ok := session.Get(roleKey).(string)
	if !ok || role != wantRole {
		return Identity{}, false
	}

	name, _ := session.Get(nameKey).(string)
	email, _ := session.Get(emailKey).(string)
	return Identity{UserID: id, Name: name, Email: email, Role: role}, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
