package v1

import "github.com/shenikar/urban_response_system/internal/models"

// DTOToReportModel преобразует DTO создания заявки в доменную модель
func DTOToReportModel(dto CreateReportRequest) *models.Report {
	return &models.Report{
		CitizenID:   dto.CitizenID,
		Description: dto.Description,
		Location:    dto.Location,
		ImagePath:   dto.ImagePath,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Category:    models.Category(dto.Category),
	}
}

// DTOToVolunteerModel преобразует DTO регистрации в модели учетки и волонтера
func DTOToVolunteerModel(dto RegisterVolunteerRequest) (*models.User, *models.Volunteer) {
	user := &models.User{
		Email:  dto.User.Email,
		Name:   dto.User.Name,
		Mobile: dto.User.Mobile,
	}
	volunteer := &models.Volunteer{
		Vtype:        models.VolunteerType(dto.Vtype),
		Area:         dto.Area,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Availability: dto.Availability,
		Skill:        dto.Skill,
	}
	return user, volunteer
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:          model.ID,
		Description: model.Description,
		Location:    model.Location,
		ImagePath:   model.ImagePath,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      string(model.Status),
		Category:    string(model.Category),
		CitizenID:   model.CitizenID,
		VolunteerID: model.VolunteerID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

// ModelToVolunteerResponse преобразует модель волонтера в DTO для ответа
func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:           model.ID,
		Vtype:        string(model.Vtype),
		Area:         model.Area,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Availability: model.Availability,
		Skill:        model.Skill,
		UserID:       model.UserID,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToVolunteerResponses преобразует слайс моделей в слайс DTO
func ModelsToVolunteerResponses(volunteers []*models.Volunteer) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(volunteers))
	for i, volunteer := range volunteers {
		responses[i] = ModelToVolunteerResponse(volunteer)
	}
	return responses
}

// ModelToNotificationResponse преобразует модель уведомления в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:            model.ID,
		Message:       model.Message,
		RecipientType: string(model.Recipient.Type),
		RecipientID:   model.Recipient.ID,
		ReportID:      model.ReportID,
		Type:          string(model.Type),
		CreatedAt:     model.CreatedAt,
	}
}

// ModelsToNotificationResponses преобразует слайс моделей в слайс DTO
func ModelsToNotificationResponses(notifications []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ModelToNotificationResponse(n)
	}
	return responses
}

// ModelToTaskHistoryResponse преобразует запись журнала в DTO для ответа
func ModelToTaskHistoryResponse(model *models.TaskHistory) *TaskHistoryResponse {
	return &TaskHistoryResponse{
		ID:            model.ID,
		ReportID:      model.ReportID,
		OldStatus:     string(model.OldStatus),
		NewStatus:     string(model.NewStatus),
		ChangedByType: string(model.ChangedBy.Type),
		ChangedByID:   model.ChangedBy.ID,
		ChangedAt:     model.ChangedAt,
	}
}

// ModelsToTaskHistoryResponses преобразует слайс записей журнала в слайс DTO
func ModelsToTaskHistoryResponses(entries []*models.TaskHistory) []*TaskHistoryResponse {
	responses := make([]*TaskHistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToTaskHistoryResponse(entry)
	}
	return responses
}
