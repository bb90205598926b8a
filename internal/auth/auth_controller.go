package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/internal/user"
	"github.com/keita-f/scrimmage/pkg/apperrors"
	"github.com/keita-f/scrimmage/pkg/responses"
	"github.com/keita-f/scrimmage/pkg/token"
	"github.com/keita-f/scrimmage/pkg/validator"
	"github.com/keita-f/scrimmage/utils"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// @Summary      Register a new user
// @Description  Create an account with name, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201  {object}  responses.SuccessResponse{data=user.PublicProfile}
// @Failure      400  {object}  responses.ErrorResponse "Validation error"
// @Failure      409  {object}  responses.ErrorResponse "Email already registered"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetUserByEmail(email); err == nil {
		responses.Conflict(c, "Email already registered")
		return
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("register: email lookup failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("register: password hashing failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		TeamName: req.TeamName,
	}
	if err := ac.repo.CreateUser(newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			responses.Conflict(c, "Email already registered")
			return
		}
		log.Printf("register: user creation failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", newUser.Public())
}

// @Summary      Log in
// @Description  Verify credentials and set the http-only session cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  responses.SuccessResponse{data=AuthResponse}
// @Failure      401  {object}  responses.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.Unauthorized(c, "Email or password is incorrect")
			return
		}
		log.Printf("login: user lookup failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Email or password is incorrect")
		return
	}

	expiry := time.Duration(ac.config.JWT.ExpiryHours) * time.Hour
	tok, err := token.GenerateJWT(u.ID, u.Name, u.Email, ac.config.JWT.Secret, expiry)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	ac.setSessionCookie(c, tok, int(expiry.Seconds()))
	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{User: u.Public()})
}

// @Summary      Log out
// @Description  Clear the session cookie.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setSessionCookie(c, "", -1)
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// @Summary      Current user
// @Description  Return the profile bound to the session.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=user.PublicProfile}
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/me [get]
// @Security     CookieAuth
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.Unauthorized(c, "Account no longer exists")
			return
		}
		log.Printf("me: user lookup failed: %v", err)
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", u.Public())
}

func (ac *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	secure := ac.config.App.Env == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", secure, true)
}
