package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cloud.google.com/go/storage"

	"github.com/Prakash-Banjade/smart-tutor/config"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/internal/session"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
	"github.com/Prakash-Banjade/smart-tutor/pkg/mailer"
	"github.com/Prakash-Banjade/smart-tutor/pkg/response"
	"github.com/Prakash-Banjade/smart-tutor/pkg/validation"
)

// SessionHandler exposes login, registration, session restore and profile
// editing. Auth always succeeds: the gateway behind the session service
// fabricates accounts, so these endpoints exercise the full session
// lifecycle without a real identity provider.
type SessionHandler struct {
	Sessions  *session.Service
	JWT       *helpers.JWTManager
	Logger    *logrus.Logger
	Cookies   *helpers.Manager
	Cfg       *config.Config
	Pub       *helpers.RabbitPublisher
	GCS       *storage.Client
	GCSBucket string
}

func NewSessionHandler(sessions *session.Service, jwt *helpers.JWTManager, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher, gcs *storage.Client) *SessionHandler {
	return &SessionHandler{
		Sessions:  sessions,
		JWT:       jwt,
		Logger:    logger,
		Cookies:   helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Cfg:       cfg,
		Pub:       pub,
		GCS:       gcs,
		GCSBucket: cfg.GCSBucket,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

type updateProfileRequest struct {
	Age                 *int     `json:"age"`
	Subjects            []string `json:"subjects"`
	Subtopics           []string `json:"subtopics"`
	EducationLevel      *string  `json:"education_level"`
	Qualification       *string  `json:"qualification"`
	TeachingExperience  *int     `json:"teaching_experience"`
	Bio                 *string  `json:"bio"`
	AvatarURL           *string  `json:"avatar_url"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
}

// issueSession generates a token pair for the session and sets the cookies.
func (h *SessionHandler) issueSession(c *gin.Context, userID, sessionID string) (map[string]any, bool) {
	access, aexp, err := h.JWT.GenerateAccessToken(userID, sessionID)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return nil, false
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return nil, false
	}
	h.Cookies.SetPair(c, access, aexp, refresh, rexp)
	return map[string]any{"access_expires_at": aexp, "refresh_expires_at": rexp}, true
}

// Login POST /api/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sid := uuid.NewString()
	mgr := h.Sessions.ManagerFor(sid)
	u, err := mgr.Login(c.Request.Context(), req.Email, req.Password, session.Role(req.Role))
	if err != nil {
		h.Logger.WithError(err).Warn("login failed")
		response.Error[any](c, http.StatusServiceUnavailable, "login failed", nil)
		return
	}

	meta, ok := h.issueSession(c, u.ID, sid)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, u, "login successful", meta)
}

// Register POST /api/register
func (h *SessionHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sid := uuid.NewString()
	mgr := h.Sessions.ManagerFor(sid)
	u, err := mgr.Register(c.Request.Context(), req.Name, req.Email, req.Password, session.Role(req.Role))
	if err != nil {
		h.Logger.WithError(err).Warn("registration failed")
		response.Error[any](c, http.StatusServiceUnavailable, "registration failed", nil)
		return
	}

	if h.Pub != nil && h.Cfg.MailSendEnabled {
		job := mailer.NewWelcomeJob(u.Name, u.Email, string(u.Role))
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
			h.Logger.WithError(err).Warn("welcome email enqueue failed")
		}
	}

	meta, ok := h.issueSession(c, u.ID, sid)
	if !ok {
		return
	}
	response.Success(c, http.StatusCreated, u, "registration successful", meta)
}

// Refresh POST /api/refresh rotates the token pair using the refresh cookie.
func (h *SessionHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	claims, err := h.JWT.ParseRefreshToken(refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	meta, ok := h.issueSession(c, claims.UserID, claims.SessionID)
	if !ok {
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"refreshed": true}, "token refreshed", meta)
}

// Session GET /api/session returns the restored user behind the cookie, or
// 401 when no record exists. The auth middleware has already restored it.
func (h *SessionHandler) Session(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionIDKey)
	u, err := h.Sessions.ManagerFor(sid).Restore(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "session store unavailable", nil)
		return
	}
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "session", nil)
}

// Logout POST /api/logout clears the record and the cookies. Always 200.
func (h *SessionHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionIDKey)
	h.Sessions.ManagerFor(sid).Logout(c.Request.Context())
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// GetProfile GET /api/profile
func (h *SessionHandler) GetProfile(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionIDKey)
	u, err := h.Sessions.ManagerFor(sid).Restore(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "session store unavailable", nil)
		return
	}
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

// UpdateProfile PUT /api/profile merges the submitted fields into the
// session record. Absent fields are left untouched.
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sid := c.GetString(middleware.CtxSessionIDKey)
	mgr := h.Sessions.ManagerFor(sid)
	if _, err := mgr.Restore(c.Request.Context()); err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "session store unavailable", nil)
		return
	}

	u, err := mgr.UpdateProfile(c.Request.Context(), session.ProfileUpdate{
		Age:                 req.Age,
		Subjects:            req.Subjects,
		Subtopics:           req.Subtopics,
		EducationLevel:      req.EducationLevel,
		Qualification:       req.Qualification,
		TeachingExperience:  req.TeachingExperience,
		Bio:                 req.Bio,
		AvatarURL:           req.AvatarURL,
		OnboardingCompleted: req.OnboardingCompleted,
	})
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		response.Error[any](c, http.StatusServiceUnavailable, "failed to update profile", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated", nil)
}

// UploadAvatar POST /api/profile/avatar stores the uploaded image in GCS and
// saves its public URL on the profile. Requires GCS to be configured.
func (h *SessionHandler) UploadAvatar(c *gin.Context) {
	if h.GCS == nil || h.GCSBucket == "" {
		response.Error[any](c, http.StatusServiceUnavailable, "avatar storage not configured", nil)
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing avatar file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", uid, uuid.NewString()+ext))
	contentType := header.Header.Get("Content-Type")

	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.GCSBucket, objectPath, contentType, file)
	if err != nil {
		h.Logger.WithError(err).Warn("avatar upload failed")
		response.Error[any](c, http.StatusInternalServerError, "avatar upload failed", nil)
		return
	}

	sid := c.GetString(middleware.CtxSessionIDKey)
	mgr := h.Sessions.ManagerFor(sid)
	if _, err := mgr.Restore(c.Request.Context()); err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "session store unavailable", nil)
		return
	}
	u, err := mgr.UpdateProfile(c.Request.Context(), session.ProfileUpdate{AvatarURL: &url})
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": u.AvatarURL}, "avatar uploaded", nil)
}
