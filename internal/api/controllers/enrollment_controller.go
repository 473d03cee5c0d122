package controllers

import (
	"net/http"

	"aulago/internal/services"
	"aulago/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentController struct {
	enrollmentService services.EnrollmentServiceInterface
}

func NewEnrollmentController(enrollmentService services.EnrollmentServiceInterface) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// ListMine godoc
// @Summary List the caller's enrollments
// @Tags Enrollments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /enrollments/mine [get]
func (ec *EnrollmentController) ListMine(c *gin.Context) {
	buyerID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	enrollments, err := ec.enrollmentService.ListMine(c.Request.Context(), buyerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, enrollments, "Enrollments fetched successfully")
}
