package handlers

import (
	"net/http"

	"eventify/models"
	"eventify/services/planner"

	"github.com/gin-gonic/gin"
)

// PlannerPackageHandler serves the planner dashboard.
type PlannerPackageHandler struct {
	PackageSvc planner.PackageService
}

func NewPlannerPackageHandler(svc planner.PackageService) *PlannerPackageHandler {
	return &PlannerPackageHandler{PackageSvc: svc}
}

// ListPackages handles GET /api/planner/packages.
func (h *PlannerPackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.PackageSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list packages", err)
		return
	}
	if packages == nil {
		packages = []models.PlannerPackage{}
	}
	c.JSON(http.StatusOK, packages)
}

// CreatePackage handles POST /api/planner/packages.
func (h *PlannerPackageHandler) CreatePackage(c *gin.Context) {
	var req models.CreatePlannerPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pkg, err := h.PackageSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "failed to create package", err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// GetPackage handles GET /api/planner/packages/:id.
func (h *PlannerPackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.PackageSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to fetch package", err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage handles PATCH /api/planner/packages/:id.
func (h *PlannerPackageHandler) UpdatePackage(c *gin.Context) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	pkg, err := h.PackageSvc.UpdateDetails(c.Request.Context(), c.Param("id"), body.Title, body.Description)
	if err != nil {
		respondError(c, "failed to update package", err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles DELETE /api/planner/packages/:id.
func (h *PlannerPackageHandler) DeletePackage(c *gin.Context) {
	if err := h.PackageSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "failed to delete package", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}

// AddService handles POST /api/planner/packages/:id/services.
func (h *PlannerPackageHandler) AddService(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	pkg, err := h.PackageSvc.AddService(c.Request.Context(), c.Param("id"), body.ServiceID)
	if err != nil {
		respondError(c, "failed to add service", err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetStats handles GET /api/planner/stats.
func (h *PlannerPackageHandler) GetStats(c *gin.Context) {
	stats, err := h.PackageSvc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "failed to load stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
