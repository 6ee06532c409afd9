package controllers

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httperrors"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`         // Display name
	Email    string `json:"email" binding:"required,email" example:"jane@doe.dev"` // Email address used to log in
	Password string `json:"password" binding:"required,min=8"`                  // Password, at least 8 characters
}

type RegisterResponse struct {
	Message string    `json:"message" example:"user registered successfully"`
	UserID  uuid.UUID `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@doe.dev"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`  // Short-lived bearer token
	RefreshToken string `json:"refreshToken"` // Long-lived token for the refresh endpoint
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed. All of them are public.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", co.Refresh)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.Logout)
}

// @Summary		Register
// @Description	Creates a new user account
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			request	body		RegisterRequest	true	"Registration data"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	user := models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
	}

	if err := co.DB.Create(&user).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "user registered successfully",
		UserID:  user.ID,
	})
}

// @Summary		Login
// @Description	Verifies credentials and issues an access and a refresh token
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	TokenResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			request	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	var user models.User
	err := co.DB.Where(&models.User{Email: models.NormalizeEmail(request.Email)}).First(&user).Error
	if err != nil {
		// An unknown email reads exactly like a wrong password
		if errors.Is(err, models.ErrResourceNotFound) {
			httperrors.Handler(c, auth.ErrInvalidCredentials)
			return
		}

		httperrors.Handler(c, err)
		return
	}

	if err := auth.CheckPassword(user.Password, request.Password); err != nil {
		httperrors.Handler(c, err)
		return
	}

	tokens, err := co.issueTokens(user.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// @Summary		Refresh tokens
// @Description	Exchanges a valid refresh token for a new token pair
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	TokenResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Param			request	body		RefreshRequest	true	"Refresh token"
// @Router			/v1/auth/refresh [post]
func (co Controller) Refresh(c *gin.Context) {
	var request RefreshRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	id, err := auth.ParseToken(request.RefreshToken, co.Config.JWTRefreshSecret)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// The user must still exist
	var user models.User
	if err := co.DB.First(&user, "id = ?", id).Error; err != nil {
		httperrors.Handler(c, auth.ErrTokenInvalid)
		return
	}

	tokens, err := co.issueTokens(user.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// @Summary		Logout
// @Description	Ends the session. Tokens are stateless, so clients discard them
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (co Controller) issueTokens(userID uuid.UUID) (TokenResponse, error) {
	accessToken, err := auth.NewToken(userID, co.Config.JWTSecret, co.Config.AccessTokenExpiry)
	if err != nil {
		return TokenResponse{}, err
	}

	refreshToken, err := auth.NewToken(userID, co.Config.JWTRefreshSecret, co.Config.RefreshTokenExpiry)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
