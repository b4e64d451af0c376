package controllers

import (
	"errors"
	"net/http"

	"bramble/app/middleware"
	"bramble/app/repositories"
	"bramble/app/services"
	"bramble/app/views"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

// AuthController handles registration, login, and logout.
type AuthController struct {
	users    *services.UserService
	sessions *scs.SessionManager
	renderer *views.Renderer
	logger   *zap.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(users *services.UserService, sessions *scs.SessionManager, renderer *views.Renderer, logger *zap.Logger) *AuthController {
	return &AuthController{users: users, sessions: sessions, renderer: renderer, logger: logger}
}

type registerForm struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// RegisterForm renders the registration page.
func (c *AuthController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, c.renderer, c.logger, "register", pageData(r, c.sessions, "Register"))
}

// Register handles the registration form submission. A duplicate email
// sends the visitor to the login page with a notice.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, c.sessions, "/register", "Invalid form data.")
		return
	}

	form := registerForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		data := pageData(r, c.sessions, "Register")
		data.Errors = validationMessages(err)
		data.Form = map[string]string{"name": form.Name, "email": form.Email}
		renderPage(w, c.renderer, c.logger, "register", data)
		return
	}

	user, err := c.users.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			flashError(w, r, c.sessions, "/login", "That email already exists. Please log in.")
			return
		}
		c.logger.Error("registration failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Log the new user straight in.
	if err := c.sessions.RenewToken(r.Context()); err != nil {
		c.logger.Error("session renew failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	c.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginForm renders the login page.
func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, c.renderer, c.logger, "login", pageData(r, c.sessions, "Log In"))
}

// Login handles the login form submission. Bad credentials produce a
// notice on the login page, not an error page.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, c.sessions, "/login", "Invalid form data.")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := c.users.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEmail):
			flashError(w, r, c.sessions, "/login", "That email does not exist. Please try again.")
		case errors.Is(err, services.ErrWrongPassword):
			flashError(w, r, c.sessions, "/login", "Wrong password. Please try again.")
		default:
			c.logger.Error("login failed", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	if err := c.sessions.RenewToken(r.Context()); err != nil {
		c.logger.Error("session renew failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	c.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.sessions.Destroy(r.Context()); err != nil {
		c.logger.Error("session destroy failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
