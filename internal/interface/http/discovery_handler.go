package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
	"github.com/Prakash-Banjade/smart-tutor/internal/discovery"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/internal/search"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
	"github.com/Prakash-Banjade/smart-tutor/pkg/mailer"
	"github.com/Prakash-Banjade/smart-tutor/pkg/response"
	"github.com/Prakash-Banjade/smart-tutor/pkg/validation"
)

// DiscoveryHandler serves tutor and study group discovery plus group
// creation. Filtering and ordering are recomputed per request from the
// catalog snapshot; query parameters map one-to-one onto criteria fields.
type DiscoveryHandler struct {
	Catalog *catalog.Catalog
	Mirror  *search.Mirror
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher
	MailOn  bool
}

func NewDiscoveryHandler(cat *catalog.Catalog, mirror *search.Mirror, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailOn bool) *DiscoveryHandler {
	return &DiscoveryHandler{Catalog: cat, Mirror: mirror, Logger: logger, Pub: pub, MailOn: mailOn}
}

// Tutors GET /api/tutors
func (h *DiscoveryHandler) Tutors(c *gin.Context) {
	crit := discovery.TutorCriteria{
		Query:        c.Query("q"),
		Subject:      c.Query("subject"),
		PriceMin:     discovery.ParseBound(c.Query("price_min")),
		PriceMax:     discovery.ParseBound(c.Query("price_max")),
		MaxDistance:  discovery.ParseBound(c.Query("max_distance")),
		MinRating:    discovery.ParseBound(c.Query("min_rating")),
		SessionType:  c.Query("session_type"),
		Availability: c.Query("availability"),
		SortBy:       discovery.SortKey(c.Query("sort")),
	}
	out := discovery.Tutors(h.Catalog.Tutors(), crit)
	response.Success(c, http.StatusOK, out, "tutors", map[string]any{"count": len(out)})
}

// Groups GET /api/groups
func (h *DiscoveryHandler) Groups(c *gin.Context) {
	crit := discovery.GroupCriteria{
		Query:            c.Query("q"),
		Subject:          c.Query("subject"),
		MaxDistance:      discovery.ParseBound(c.Query("max_distance")),
		Size:             discovery.GroupSize(c.Query("size")),
		MeetingFrequency: c.Query("meeting_frequency"),
		StudyLevel:       c.Query("study_level"),
		SortBy:           discovery.SortKey(c.Query("sort")),
	}
	out := discovery.Groups(h.Catalog.Groups(), crit)
	response.Success(c, http.StatusOK, out, "study groups", map[string]any{"count": len(out)})
}

// Subjects GET /api/subjects returns the canonical subject list used by
// filters and onboarding forms.
func (h *DiscoveryHandler) Subjects(c *gin.Context) {
	response.Success(c, http.StatusOK, catalog.Subjects, "subjects", nil)
}

// Search GET /api/search proxies full-text search to the Elasticsearch
// mirror. Without a mirror it returns an empty result set.
func (h *DiscoveryHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Mirror.Search(c.Request.Context(), q, 20)
	if err != nil {
		h.Logger.WithError(err).Warn("search failed")
		response.Error[any](c, http.StatusServiceUnavailable, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

type createGroupRequest struct {
	Name             string   `json:"name" binding:"required"`
	Subject          string   `json:"subject" binding:"required"`
	Description      string   `json:"description"`
	Location         string   `json:"location" binding:"required"`
	Distance         float64  `json:"distance"`
	MaxMembers       int      `json:"max_members" binding:"required,min=1"`
	MeetingFrequency string   `json:"meeting_frequency"`
	MeetingDays      []string `json:"meeting_days"`
	NextMeeting      string   `json:"next_meeting"` // RFC 3339
	StudyLevel       string   `json:"study_level"`
}

// CreateGroup POST /api/groups (auth required). The creator joins the group
// immediately, so it starts with one member.
func (h *DiscoveryHandler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var next time.Time
	if req.NextMeeting != "" {
		t, err := time.Parse(time.RFC3339, req.NextMeeting)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid next_meeting, want RFC 3339", nil)
			return
		}
		next = t
	}

	g := catalog.StudyGroup{
		Name:             req.Name,
		Subject:          req.Subject,
		Description:      req.Description,
		Location:         req.Location,
		Distance:         req.Distance,
		Members:          1,
		MaxMembers:       req.MaxMembers,
		MeetingFrequency: req.MeetingFrequency,
		MeetingDays:      req.MeetingDays,
		NextMeeting:      next,
		StudyLevel:       req.StudyLevel,
		CreatedBy: catalog.GroupCreator{
			Name: c.GetString(middleware.CtxUserNameKey),
		},
	}

	created, err := h.Catalog.AddStudyGroup(g)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidGroup) {
			response.Error[any](c, http.StatusBadRequest, "invalid study group", err.Error())
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create group", nil)
		return
	}

	h.Mirror.IndexGroup(c.Request.Context(), created)

	if h.Pub != nil && h.MailOn {
		job := mailer.NewGroupCreatedJob(created.CreatedBy.Name, c.GetString(middleware.CtxUserEmailKey), created.Name)
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
			h.Logger.WithError(err).Warn("group created email enqueue failed")
		}
	}

	response.Success(c, http.StatusCreated, created, "study group created", nil)
}
