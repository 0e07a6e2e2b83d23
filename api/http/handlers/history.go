package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/resumatch/backend/api/http/presenter"
	"github.com/resumatch/backend/pkg/history"
)

// HistoryHandler serves stored resume-analysis results.
type HistoryHandler struct {
	uc       history.UseCase
	log      *logrus.Logger
	maxBytes int64
}

func NewHistoryHandler(uc history.UseCase, log *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{
		uc:       uc,
		log:      log,
		maxBytes: 15 << 20, // 15MB
	}
}

// List returns the caller's analysis history, newest first.
// @Summary Analysis history
// @Tags    history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	items, err := h.uc.List(c.Context(), uid)
	if err != nil {
		h.log.WithError(err).Error("list history")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving history")
	}
	if items == nil {
		items = []history.Item{}
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"history": items})
}

// Get returns one full analysis owned by the caller.
// @Summary Analysis by id
// @Tags    history
// @Produce json
// @Param   id path int true "analysis id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid analysis id")
	}
	a, err := h.uc.Get(c.Context(), uid, id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Analysis not found")
		}
		h.log.WithError(err).Error("get analysis")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving analysis")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"analysis": a})
}

// Delete removes one analysis owned by the caller. Irreversible.
// @Summary Delete analysis
// @Tags    history
// @Produce json
// @Param   id path int true "analysis id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/{id} [delete]
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid analysis id")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Analysis not found")
		}
		h.log.WithError(err).Error("delete analysis")
		return presenter.Error(c, http.StatusInternalServerError, "Error deleting analysis")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"message": "Analysis deleted successfully"})
}

type compareRequest struct {
	IDs []int64 `json:"ids"`
}

// Compare resolves the requested ids and returns the two oldest as a pair.
// @Summary Compare analyses
// @Tags    history
// @Accept  json
// @Produce json
// @Param   input body compareRequest true "analysis ids (at least 2)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /history/compare [post]
func (h *HistoryHandler) Compare(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	var req compareRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	cmp, err := h.uc.Compare(c.Context(), uid, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrNotEnoughIDs):
			return presenter.Error(c, http.StatusBadRequest, "Please provide at least 2 analysis IDs to compare")
		case errors.Is(err, history.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Not enough analyses found for comparison")
		default:
			h.log.WithError(err).Error("compare analyses")
			return presenter.Error(c, http.StatusInternalServerError, "Error comparing analyses")
		}
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"comparison": cmp})
}

type saveAnalysisRequest struct {
	JobRole         string          `json:"job_role"`
	ResumeText      string          `json:"resume_text"`
	MatchPercentage int             `json:"match_percentage"`
	MatchedSkills   []string        `json:"matched_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	LearningRoadmap json.RawMessage `json:"learning_roadmap"`
}

// Save persists an analysis computed by the client-side analysis flow.
// @Summary Save analysis result
// @Tags    history
// @Accept  json
// @Produce json
// @Param   input body saveAnalysisRequest true "analysis payload"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /history [post]
func (h *HistoryHandler) Save(c *fiber.Ctx) error {
	uid, email, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	var req saveAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.JobRole) == "" || strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, "job_role and resume_text are required")
	}
	name, _ := c.Locals("userName").(string)
	id, err := h.uc.Save(c.Context(), history.Analysis{
		UserID:          uid,
		UserEmail:       email,
		UserName:        name,
		JobRole:         req.JobRole,
		ResumeText:      req.ResumeText,
		MatchPercentage: req.MatchPercentage,
		MatchedSkills:   req.MatchedSkills,
		MissingSkills:   req.MissingSkills,
		LearningRoadmap: req.LearningRoadmap,
	})
	if err != nil {
		h.log.WithError(err).Error("save analysis")
		return presenter.Error(c, http.StatusInternalServerError, "Error saving analysis")
	}
	return presenter.OK(c, http.StatusCreated, fiber.Map{"id": id})
}

// ExtractText turns an uploaded PDF/DOCX into plain resume text for the
// analysis flow. Nothing is persisted here.
// @Summary Extract resume text
// @Tags    history
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (PDF/DOCX)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/extract [post]
func (h *HistoryHandler) ExtractText(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	txt, err := history.ExtractResumeText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to parse resume file")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"text": txt})
}
