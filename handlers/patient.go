package handlers

import (
	"net/http"

	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PatientHandler covers the patient registry. The registry has no business
// rules of its own, so handlers talk to the repository directly.
type PatientHandler struct {
	Repo patientRepo.PatientRepository
}

func NewPatientHandler(repo patientRepo.PatientRepository) *PatientHandler {
	return &PatientHandler{Repo: repo}
}

// CreatePatientHandler handles POST /api/patients.
func (h *PatientHandler) CreatePatientHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if patient.Name == "" || patient.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required", "")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), &patient)
	if err != nil {
		logger.Error("Failed to create patient", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create patient", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPatientHandler handles GET /api/patients/:id.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	patient, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "patient not found", "")
		return
	}
	c.JSON(http.StatusOK, patient)
}

// ListPatientsHandler handles GET /api/patients.
func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	patients, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list patients", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list patients", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients, "count": len(patients)})
}

// UpdatePatientHandler handles PATCH /api/patients/:id.
func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	// Identity and bookkeeping fields are not writable through the API.
	for _, field := range []string{"id", "_id", "createdAt", "updatedAt"} {
		delete(updates, field)
	}
	if len(updates) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no updatable fields supplied", "")
		return
	}
	if err := h.Repo.Update(c.Request.Context(), c.Param("id"), bson.M(updates)); err != nil {
		utils.JSONError(c, http.StatusNotFound, "patient not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient updated"})
}

// DeletePatientHandler handles DELETE /api/patients/:id.
func (h *PatientHandler) DeletePatientHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "patient not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient deleted"})
}
