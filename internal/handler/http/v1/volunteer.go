package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/urban_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Register a volunteer
// @Description Create a volunteer together with its account record
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param volunteer body RegisterVolunteerRequest true "Volunteer data"
// @Success 201 {object} VolunteerResponse "Volunteer registered"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers [post]
func (h *Handler) registerVolunteer(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "registerVolunteer"})

	var req RegisterVolunteerRequest
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

	user, volunteer := DTOToVolunteerModel(req)
	created, err := h.volunteerService.RegisterVolunteer(c.Request.Context(), user, volunteer)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToVolunteerResponse(created))
}

// @Summary List volunteers
// @Description Get all registered volunteers, or the one linked to an account when user_id is given
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param user_id query string false "Volunteer account ID"
// @Success 200 {array} VolunteerResponse "List of volunteers"
// @Failure 400 {object} map[string]string "Invalid user_id"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "listVolunteers"})

	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		volunteer, err := h.volunteerService.GetVolunteerByUserID(c.Request.Context(), userID)
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelsToVolunteerResponses([]*models.Volunteer{volunteer}))
		return
	}

	volunteers, err := h.volunteerService.ListVolunteers(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToVolunteerResponses(volunteers))
}

// @Summary Nearby available volunteers
// @Description Get available volunteers within the alert radius of a point
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {array} VolunteerResponse "Nearby volunteers"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers/nearby [get]
func (h *Handler) nearbyVolunteers(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "nearbyVolunteers"})

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	volunteers, err := h.volunteerService.NearbyVolunteers(c.Request.Context(), lat, lon)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToVolunteerResponses(volunteers))
}

// @Summary Get volunteer by ID
// @Description Get a single volunteer by its ID
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} VolunteerResponse "Volunteer found"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers/{id} [get]
func (h *Handler) getVolunteer(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "getVolunteer"})

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer id"})
		return
	}

	volunteer, err := h.volunteerService.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Volunteer's assigned reports
// @Description Get reports assigned to the volunteer; id is the volunteer account ID
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer account ID"
// @Success 200 {array} ReportResponse "Assigned reports"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers/{id}/reports [get]
func (h *Handler) volunteerReports(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "volunteerReports"})

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer id"})
		return
	}

	reports, err := h.reportService.ListReportsByVolunteer(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Update volunteer availability
// @Description Toggle whether the volunteer accepts new assignments
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param availability body AvailabilityRequest true "New availability"
// @Success 200 {object} VolunteerResponse "Availability updated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /volunteers/{id}/availability [put]
func (h *Handler) updateAvailability(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "volunteer", "method": "updateAvailability"})

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer id"})
		return
	}

	var req AvailabilityRequest
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

	volunteer, err := h.volunteerService.UpdateAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Raise an area alert
// @Description Broadcast an alert to available volunteers near a point
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body AlertRequest true "Alert data"
// @Success 202 {object} AlertResponse "Alert dispatched"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /alerts [post]
func (h *Handler) raiseAlert(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "alert", "method": "raiseAlert"})

	var req AlertRequest
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

	notified, err := h.alertService.Dispatch(c.Request.Context(), req.Type, req.Latitude, req.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusAccepted, AlertResponse{Notified: notified})
}

// @Summary List recipient notifications
// @Description Get persisted notifications for a recipient
// @Tags Notifications
// @Accept json
// @Produce json
// @Param recipient_type query string true "Recipient type" Enums(CITIZEN, VOLUNTEER, NGO, GOVERNMENT)
// @Param recipient_id query string true "Recipient ID"
// @Success 200 {array} NotificationResponse "Notifications"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "notification", "method": "listNotifications"})

	recipientType := models.ActorType(c.Query("recipient_type"))
	recipientID, err := uuid.Parse(c.Query("recipient_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient_id"})
		return
	}

	recipient := models.ActorRef{Type: recipientType, ID: recipientID}
	if !recipient.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient_type"})
		return
	}

	notifications, err := h.notifications.ListByRecipient(c.Request.Context(), recipient)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}
