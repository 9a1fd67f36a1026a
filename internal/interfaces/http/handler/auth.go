package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appidentity "github.com/NoahAndreani/NBA-Projet-compensatoire/internal/application/identity"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/identity"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/domain/shared"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/auth"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", notBlank)
	}
}

// notBlank rejects values made of whitespace only; "required" alone lets a
// string of spaces through.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// LoginForm binds the login page submission.
type LoginForm struct {
	Username string `form:"username" binding:"required,notblank"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm binds the account creation submission. Password2 must repeat
// the password so typos do not lock the user out of a fresh account.
type RegisterForm struct {
	Username  string `form:"username" binding:"required,notblank,min=4,max=20"`
	Password  string `form:"password" binding:"required,min=6"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

// AuthHandler serves the login, register and logout pages.
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	sessions    *auth.SessionService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *appidentity.AuthService, sessions *auth.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Index redirects the site root to the players page. Anonymous visitors get
// bounced to the login form by the auth gate on /players.
func (h *AuthHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/players")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.Render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Connexion",
	})
}

// Login authenticates the submitted credentials and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title":        "Connexion",
			"Error":        "Nom d'utilisateur ou mot de passe incorrect",
			"FormUsername": form.Username,
		})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), appidentity.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		status := http.StatusUnauthorized
		message := "Nom d'utilisateur ou mot de passe incorrect"
		if !errors.Is(err, appidentity.ErrInvalidCredentials) {
			h.logger.Error("login failed", zap.Error(err))
			status = http.StatusInternalServerError
			message = "Une erreur est survenue, veuillez réessayer"
		}
		h.Render(c, status, "login.html", gin.H{
			"Title":        "Connexion",
			"Error":        message,
			"FormUsername": form.Username,
		})
		return
	}

	token, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("session issue failed", zap.Error(err))
		h.Render(c, http.StatusInternalServerError, "login.html", gin.H{
			"Title":        "Connexion",
			"Error":        "Une erreur est survenue, veuillez réessayer",
			"FormUsername": form.Username,
		})
		return
	}

	h.sessions.WriteCookie(c, token)
	c.Redirect(http.StatusFound, "/players")
}

// ShowRegister renders the account creation form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.Render(c, http.StatusOK, "register.html", gin.H{
		"Title": "Inscription",
	})
}

// Register creates a new account and sends the user to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.Render(c, http.StatusBadRequest, "register.html", gin.H{
			"Title":        "Inscription",
			"Error":        registerBindError(form),
			"FormUsername": form.Username,
		})
		return
	}

	err := h.authService.Register(c.Request.Context(), appidentity.RegisterInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		status := http.StatusBadRequest
		var message string
		var domainErr *shared.DomainError
		switch {
		case errors.Is(err, identity.ErrUsernameTaken):
			message = "Ce nom d'utilisateur existe déjà"
		case errors.As(err, &domainErr) && domainErr.Code == "INVALID_USERNAME":
			message = "Le nom d'utilisateur doit contenir entre 4 et 20 caractères"
		case errors.As(err, &domainErr) && domainErr.Code == "INVALID_PASSWORD":
			message = "Le mot de passe doit contenir au moins 6 caractères"
		default:
			h.logger.Error("registration failed", zap.Error(err))
			status = http.StatusInternalServerError
			message = "Une erreur est survenue, veuillez réessayer"
		}
		h.Render(c, status, "register.html", gin.H{
			"Title":        "Inscription",
			"Error":        message,
			"FormUsername": form.Username,
		})
		return
	}

	h.RedirectWithFlash(c, "/login", "Compte créé avec succès!")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	h.RedirectWithFlash(c, "/login", "Vous avez été déconnecté.")
}

// registerBindError picks the most useful message for a failed form binding.
func registerBindError(form RegisterForm) string {
	switch {
	case len(form.Username) < 4 || len(form.Username) > 20:
		return "Le nom d'utilisateur doit contenir entre 4 et 20 caractères"
	case len(form.Password) < 6:
		return "Le mot de passe doit contenir au moins 6 caractères"
	case form.Password != form.Password2:
		return "Les mots de passe ne correspondent pas"
	default:
		return "Formulaire invalide, veuillez réessayer"
	}
}
