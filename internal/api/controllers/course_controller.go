package controllers

import (
	"net/http"

	"aulago/internal/models/request_models"
	"aulago/internal/services"
	"aulago/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse godoc
// @Summary Publish a new course
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.CreateCourseRequest true "Course payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /courses [post]
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req request_models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	instructorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	course, err := cc.courseService.CreateCourse(c.Request.Context(), instructorID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, course, "Course created successfully")
}

// GetCourse godoc
// @Summary Get a course by id
// @Tags Courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} utils.APIResponse
// @Router /courses/{id} [get]
func (cc *CourseController) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid course id")
		return
	}

	course, err := cc.courseService.GetCourseById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, course, "Course fetched successfully")
}

// ListCourses godoc
// @Summary List published courses
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, courses, "Courses fetched successfully")
}
