package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Create a new report
// @Description Citizen files an incident report; nearby volunteers are alerted asynchronously
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report data"
// @Success 201 {object} ReportResponse "Report created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Citizen not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "createReport"})

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("Failed to bind request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Request validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := DTOToReportModel(req)
	if err := h.reportService.CreateReport(c.Request.Context(), report); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List reports
// @Description Get paginated list of reports
// @Tags Reports
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {array} ReportResponse "List of reports"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "listReports"})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Nearby unassigned reports
// @Description Get unclaimed reports within the volunteer's response radius
// @Tags Reports
// @Accept json
// @Produce json
// @Param volunteer_id query string true "Volunteer account ID"
// @Success 200 {array} ReportResponse "Nearby reports"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/nearby [get]
func (h *Handler) nearbyReports(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "nearbyReports"})

	volunteerUserID, err := uuid.Parse(c.Query("volunteer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer_id"})
		return
	}

	reports, err := h.reportService.NearbyUnassignedReports(c.Request.Context(), volunteerUserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Citizen's own reports
// @Description Get reports filed by the given citizen
// @Tags Reports
// @Accept json
// @Produce json
// @Param citizen_id query string true "Citizen account ID"
// @Success 200 {array} ReportResponse "Citizen reports"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Citizen not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/my [get]
func (h *Handler) myReports(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "myReports"})

	citizenID, err := uuid.Parse(c.Query("citizen_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid citizen_id"})
		return
	}

	reports, err := h.reportService.ListReportsByCitizen(c.Request.Context(), citizenID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single report by its ID
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse "Report found"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "getReport"})

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Report status history
// @Description Get the audit trail of status transitions for a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {array} TaskHistoryResponse "Transition history"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/{id}/history [get]
func (h *Handler) reportHistory(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "reportHistory"})

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	entries, err := h.reportService.ReportHistory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToTaskHistoryResponses(entries))
}

// @Summary Claim a report
// @Description Volunteer claims an unassigned report; exactly one of concurrent claimers wins
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param volunteer_id query string true "Volunteer account ID"
// @Success 200 {object} ReportResponse "Report claimed"
// @Failure 400 {object} map[string]string "Volunteer unavailable"
// @Failure 404 {object} map[string]string "Report or volunteer not found"
// @Failure 409 {object} map[string]string "Report already claimed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/{id}/claim [put]
func (h *Handler) claimReport(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "claimReport"})

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}
	volunteerUserID, err := uuid.Parse(c.Query("volunteer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer_id"})
		return
	}

	report, err := h.reportService.ClaimReport(c.Request.Context(), reportID, volunteerUserID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Update report status
// @Description Assigned volunteer moves a report along its status lifecycle
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param status body StatusUpdateRequest true "New status and acting volunteer"
// @Success 200 {object} ReportResponse "Status updated"
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 403 {object} map[string]string "Not the assigned volunteer"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Concurrent status change"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /reports/{id}/status [put]
func (h *Handler) updateReportStatus(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "report", "method": "updateReportStatus"})

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("Failed to bind request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Request validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.UpdateReportStatus(c.Request.Context(), reportID, models.Status(req.NewStatus), req.VolunteerID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToReportResponse(report))
}
