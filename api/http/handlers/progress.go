package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/resumatch/backend/api/http/presenter"
	"github.com/resumatch/backend/pkg/progress"
)

// ProgressHandler serves skill progress, achievements and the stats aggregate.
type ProgressHandler struct {
	uc  progress.UseCase
	log *logrus.Logger
}

func NewProgressHandler(uc progress.UseCase, log *logrus.Logger) *ProgressHandler {
	return &ProgressHandler{uc: uc, log: log}
}

// Get returns the caller's skill progress rows, most recently started first.
// @Summary Skill progress
// @Tags    progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /progress [get]
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	skills, err := h.uc.Get(c.Context(), uid)
	if err != nil {
		h.log.WithError(err).Error("get progress")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving progress")
	}
	if skills == nil {
		skills = []progress.SkillProgress{}
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"skills": skills})
}

type updateProgressRequest struct {
	SkillName string `json:"skill_name"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Update upserts one (user, skill) progress row. The achievement check runs
// as a side effect inside the use case and never fails the request.
// @Summary Update skill progress
// @Tags    progress
// @Accept  json
// @Produce json
// @Param   input body updateProgressRequest true "progress payload"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /progress [post]
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	uid, email, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	var req updateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.uc.Update(c.Context(), uid, email, req.SkillName, req.Status, req.Notes); err != nil {
		if errors.Is(err, progress.ErrSkillRequired) {
			return presenter.Error(c, http.StatusBadRequest, "Skill name is required")
		}
		h.log.WithError(err).Error("update progress")
		return presenter.Error(c, http.StatusInternalServerError, "Error updating progress")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"message": "Progress updated successfully"})
}

// Achievements returns the caller's badges, newest first.
// @Summary Achievements
// @Tags    progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /achievements [get]
func (h *ProgressHandler) Achievements(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	achievements, err := h.uc.Achievements(c.Context(), uid)
	if err != nil {
		h.log.WithError(err).Error("get achievements")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving achievements")
	}
	if achievements == nil {
		achievements = []progress.Achievement{}
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"achievements": achievements})
}

// Stats returns the dashboard aggregate. The four numbers come from
// independent reads and are not a single snapshot.
// @Summary Progress statistics
// @Tags    progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /progress/stats [get]
func (h *ProgressHandler) Stats(c *fiber.Ctx) error {
	uid, _, err := identity(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	s, err := h.uc.Stats(c.Context(), uid)
	if err != nil {
		h.log.WithError(err).Error("get stats")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving stats")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{
		"totalSkills":       s.TotalSkills,
		"completedSkills":   s.CompletedSkills,
		"inProgressSkills":  s.InProgressSkills,
		"recentlyCompleted": s.RecentlyCompleted,
	})
}
