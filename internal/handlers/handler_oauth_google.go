package handlers

import (
	"net/http"
	"net/url"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/bilalcinal/WhereDoUSpend/internal/middleware"
	"github.com/bilalcinal/WhereDoUSpend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles Google sign-in, both the server-side redirect
// flow and the SPA flow where the client obtains an ID token itself.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	authHandler        *AuthHandler
	frontendBaseURL    string
	isProduction       bool
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		authHandler:        NewAuthHandler(services.User, services.Token),
		frontendBaseURL:    cfg.FrontendBaseURL,
		isProduction:       cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(cfg, services)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginRedirect)
		google.GET("/callback", h.Callback)
		google.POST("/token", h.TokenLogin)
	}
}

// LoginRedirect godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen. A state cookie guards the callback against CSRF.
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginRedirect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to start Google sign-in")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// Callback godoc
// @Summary Google sign-in callback
// @Description Completes the redirect flow: verifies state, exchanges the code, signs the user in and returns a token pair.
// @Tags oauth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.isProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauthToken, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code with Google", "error", err.Error())
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch Google profile")
		return
	}

	h.completeSignIn(c, info)
}

// TokenLogin godoc
// @Summary Google ID token login
// @Description Signs in with a Google ID token obtained by the client (e.g. Google Identity Services) and returns a token pair.
// @Tags oauth
// @Accept json
// @Produce json
// @Param token body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/token [post]
func (h *GoogleOAuthHandler) TokenLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", "error", err.Error())
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	h.completeSignIn(c, googleUserInfoFromPayload(payload))
}

// completeSignIn finds or registers the Google user and responds with a token
// pair, redirecting to the frontend callback page when one is configured.
func (h *GoogleOAuthHandler) completeSignIn(c *gin.Context, info *domain.GoogleUserInfo) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in with Google")
		return
	}

	tokens, err := h.authHandler.issueTokenPair(c, user)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate token")
		return
	}

	if h.frontendBaseURL != "" && c.Request.Method == http.MethodGet {
		redirect := h.frontendBaseURL + "/auth/callback#" + url.Values{
			"accessToken":  {tokens.AccessToken},
			"refreshToken": {tokens.RefreshToken},
			"userID":       {tokens.UserID},
		}.Encode()
		c.Redirect(http.StatusTemporaryRedirect, redirect)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// googleUserInfoFromPayload maps the verified ID token claims onto the
// profile shape the userinfo endpoint returns.
func googleUserInfoFromPayload(payload *idtoken.Payload) *domain.GoogleUserInfo {
	claimString := func(key string) string {
		if v, ok := payload.Claims[key].(string); ok {
			return v
		}
		return ""
	}
	verified, _ := payload.Claims["email_verified"].(bool)
	return &domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         claimString("email"),
		VerifiedEmail: verified,
		Name:          claimString("name"),
		Picture:       claimString("picture"),
	}
}
