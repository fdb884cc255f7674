package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/service"
	"github.com/goblog/blog-service/internal/session"
)

// AuthHandler handles registration, login and logout requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterForm represents the registration form payload.
type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginForm represents the login form payload.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates a new account and signs it in. The response still
// redirects to the login page, matching the original flow.
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{
			"Error": "Please fill in all fields with a valid email.",
		})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			session.Flash(c, "This email is already registered! Login instead!")
			render(c, http.StatusOK, "register.html", nil)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SignIn(c, user.ID); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login verifies credentials and establishes a session. Unknown email and
// wrong password produce distinct messages.
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Please fill in all fields with a valid email.",
		})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrUnknownEmail):
		session.Flash(c, "There is no account associated with that email.")
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, service.ErrIncorrectPassword):
		session.Flash(c, "Incorrect Password.")
		c.Redirect(http.StatusFound, "/login")
	case err != nil:
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		if err := session.SignIn(c, user.ID); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		session.Flash(c, "Successfully logged in!")
		c.Redirect(http.StatusFound, "/")
	}
}

// Logout destroys the session and returns to the post listing.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.SignOut(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
