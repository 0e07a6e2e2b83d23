package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/resumatch/backend/api/http/presenter"
	"github.com/resumatch/backend/pkg/jobskills"
)

// JobSkillsHandler serves the static role-to-skills reference table.
type JobSkillsHandler struct {
	uc  jobskills.UseCase
	log *logrus.Logger
}

func NewJobSkillsHandler(uc jobskills.UseCase, log *logrus.Logger) *JobSkillsHandler {
	return &JobSkillsHandler{uc: uc, log: log}
}

// List returns every seeded job role with its required skills.
// @Summary Job roles
// @Tags    job-roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /job-roles [get]
func (h *JobSkillsHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.Context())
	if err != nil {
		h.log.WithError(err).Error("list job roles")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving job roles")
	}
	if roles == nil {
		roles = []jobskills.Profile{}
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"roles": roles})
}

// Get returns the skill profile for a single role.
// @Summary Job role by name
// @Tags    job-roles
// @Produce json
// @Param   role path string true "job role name (URL-encoded)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-roles/{role} [get]
func (h *JobSkillsHandler) Get(c *fiber.Ctx) error {
	role, err := url.PathUnescape(c.Params("role"))
	if err != nil || role == "" {
		return presenter.Error(c, http.StatusBadRequest, "invalid job role")
	}
	p, err := h.uc.Get(c.Context(), role)
	if err != nil {
		if errors.Is(err, jobskills.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job role not found")
		}
		h.log.WithError(err).Error("get job role")
		return presenter.Error(c, http.StatusInternalServerError, "Error retrieving job role")
	}
	return presenter.OK(c, http.StatusOK, fiber.Map{"role": p})
}
