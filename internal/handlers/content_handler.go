package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohagbhuiyan/portfolio-api/internal/services"
	apperrors "github.com/sohagbhuiyan/portfolio-api/pkg/errors"
)

// contentCacheControl lets browsers and CDNs keep the static profile briefly
const contentCacheControl = "public, max-age=300"

type ContentHandler struct {
	service services.ContentServiceInterface
}

func NewContentHandler(service services.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context())
	h.respond(c, profile, err)
}

func (h *ContentHandler) GetExperiences(c *gin.Context) {
	experiences, err := h.service.GetExperiences(c.Request.Context())
	h.respond(c, experiences, err)
}

func (h *ContentHandler) GetProjects(c *gin.Context) {
	projects, err := h.service.GetProjects(c.Request.Context())
	h.respond(c, projects, err)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.service.GetProjectByID(c.Request.Context(), c.Param("id"))
	if apperrors.Is(err, apperrors.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found", err)
		return
	}
	h.respond(c, project, err)
}

func (h *ContentHandler) GetSkills(c *gin.Context) {
	skills, err := h.service.GetSkills(c.Request.Context())
	h.respond(c, skills, err)
}

func (h *ContentHandler) GetEducation(c *gin.Context) {
	education, err := h.service.GetEducation(c.Request.Context())
	h.respond(c, education, err)
}

func (h *ContentHandler) respond(c *gin.Context, body any, err error) {
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "Content not available", err)
		return
	}
	c.Header("Cache-Control", contentCacheControl)
	c.Header("Pragma", "")
	c.JSON(http.StatusOK, body)
}
