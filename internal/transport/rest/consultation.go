package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

const maxAttachmentSize = 20 << 20 // 20 МБ

func (h *Handler) consultationErrorResponse(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrConsultorioOcupado):
		conflictResponse(c, err.Error())
	case errors.Is(err, domain.ErrFechaPasada), errors.Is(err, domain.ErrDatosInvalidos):
		badRequestResponse(c, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err))
		badRequestResponse(c, fallback)
	}
}

// @Summary Создать консультацию
// @Description Записывает консультацию. Занятый кабинет возвращает 409, дата в прошлом - 400
// @Tags Консультации
// @Accept json
// @Produce json
// @Param input body domain.CreateConsultationDTO true "Данные консультации"
// @Success 201 {object} map[string]interface{} "ID созданной консультации"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или дата в прошлом"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} errorResponseBody "Кабинет занят на выбранное время"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations [post]
func (h *Handler) createConsultation(c *gin.Context) {
	var input domain.CreateConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Consultation.Create(c.Request.Context(), input)
	if err != nil {
		h.consultationErrorResponse(c, err, "ошибка создания консультации")
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить консультацию по ID
// @Description Возвращает данные консультации
// @Tags Консультации
// @Produce json
// @Param id path int true "ID консультации"
// @Success 200 {object} domain.Consultation "Данные консультации"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Консультация не найдена"
// @Security ApiKeyAuth
// @Router /consultations/{id} [get]
func (h *Handler) getConsultationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	consultation, err := h.services.Consultation.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения консультации", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if consultation == nil {
		notFoundResponse(c, "консультация не найдена")
		return
	}

	successResponse(c, http.StatusOK, consultation)
}

// @Summary Перенести консультацию в календаре
// @Description Меняет дату, время или длительность. Статус сбрасывается в pending, конфликт кабинета возвращает 409
// @Tags Консультации
// @Accept json
// @Produce json
// @Param id path int true "ID консультации"
// @Param input body domain.UpdateConsultationTimeDTO true "Новые дата, время или длительность"
// @Success 200 {object} messageResponseType "Сообщение об успешном переносе"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или дата в прошлом"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Консультация не найдена"
// @Failure 409 {object} errorResponseBody "Кабинет занят на выбранное время"
// @Security ApiKeyAuth
// @Router /consultations/{id}/time [put]
func (h *Handler) updateConsultationTime(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateConsultationTimeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Consultation.UpdateTime(c.Request.Context(), id, input); err != nil {
		h.consultationErrorResponse(c, err, "ошибка переноса консультации")
		return
	}

	messageResponse(c, http.StatusOK, "консультация перенесена")
}

// @Summary Отменить или перенести консультацию
// @Description В режиме cancel отменяет консультацию, в режиме reschedule переносит на новые дату и время
// @Tags Консультации
// @Accept json
// @Produce json
// @Param id path int true "ID консультации"
// @Param input body domain.RescheduleConsultationDTO true "Режим и новые дата и время"
// @Success 200 {object} messageResponseType "Сообщение об успешной операции"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или дата в прошлом"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Консультация не найдена"
// @Failure 409 {object} errorResponseBody "Кабинет занят на выбранное время"
// @Security ApiKeyAuth
// @Router /consultations/{id}/reschedule [post]
func (h *Handler) rescheduleConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.RescheduleConsultationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Consultation.Reschedule(c.Request.Context(), id, input); err != nil {
		h.consultationErrorResponse(c, err, "ошибка переноса консультации")
		return
	}

	messageResponse(c, http.StatusOK, "консультация обработана")
}

// @Summary Отменить консультацию
// @Description Переводит консультацию в статус cancelled
// @Tags Консультации
// @Produce json
// @Param id path int true "ID консультации"
// @Success 204 {object} nil "Консультация отменена"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations/{id} [delete]
func (h *Handler) cancelConsultation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Consultation.Cancel(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка отмены консультации", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary Список консультаций
// @Description Возвращает консультации с фильтрацией по пациенту, профессионалу, кабинету, статусу и периоду
// @Tags Консультации
// @Produce json
// @Param patient_id query int false "ID пациента"
// @Param professional_id query int false "ID профессионала"
// @Param consultorio_id query int false "ID кабинета"
// @Param status query string false "Статус консультации"
// @Param start_date query string false "Начало периода (YYYY-MM-DD)"
// @Param end_date query string false "Конец периода (YYYY-MM-DD)"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список консультаций"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations [get]
func (h *Handler) getConsultations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := domain.ConsultationFilter{
		Limit:  limit,
		Offset: offset,
	}

	if str := c.Query("patient_id"); str != "" {
		id, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат patient_id")
			return
		}
		filter.PatientID = &id
	}

	if str := c.Query("professional_id"); str != "" {
		id, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат professional_id")
			return
		}
		filter.ProfessionalID = &id
	}

	if str := c.Query("consultorio_id"); str != "" {
		id, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат consultorio_id")
			return
		}
		filter.ConsultorioID = &id
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ConsultationStatus(statusStr)
		filter.Status = &status
	}

	if startStr := c.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			badRequestResponse(c, "неверный формат start_date")
			return
		}
		filter.StartDate = &start
	}

	if endStr := c.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			badRequestResponse(c, "неверный формат end_date")
			return
		}
		filter.EndDate = &end
	}

	consultations, total, err := h.services.Consultation.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка консультаций", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, consultations, total, page, limit)
}

// @Summary Прикрепить файл к консультации
// @Description Загружает файл (multipart/form-data, поле file) и прикрепляет его к консультации
// @Tags Консультации
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID консультации"
// @Param file formData file true "Файл"
// @Success 201 {object} map[string]interface{} "ID вложения"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations/{id}/attachments [post]
func (h *Handler) addConsultationAttachment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "файл не найден в запросе")
		return
	}

	if fileHeader.Size > maxAttachmentSize {
		badRequestResponse(c, "файл слишком большой")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("ошибка открытия файла", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("ошибка чтения файла", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachmentID, err := h.services.Consultation.AddAttachment(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		h.logger.Error("ошибка загрузки вложения", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": attachmentID})
}

// @Summary Вложения консультации
// @Description Возвращает список файлов, прикрепленных к консультации
// @Tags Консультации
// @Produce json
// @Param id path int true "ID консультации"
// @Success 200 {array} domain.ConsultationAttachment "Список вложений"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations/{id}/attachments [get]
func (h *Handler) getConsultationAttachments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	attachments, err := h.services.Consultation.ListAttachments(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения вложений", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, attachments)
}

// @Summary Скачать вложение
// @Description Отдает содержимое файла вложения
// @Tags Консультации
// @Produce octet-stream
// @Param id path int true "ID вложения"
// @Success 200 {file} file "Содержимое файла"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Вложение не найдено"
// @Security ApiKeyAuth
// @Router /consultations/attachments/{id} [get]
func (h *Handler) downloadConsultationAttachment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	attachment, data, err := h.services.Consultation.GetAttachment(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения вложения", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "вложение не найдено")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+attachment.FileName+"\"")
	c.Data(http.StatusOK, attachment.ContentType, data)
}

// @Summary Удалить вложение
// @Description Удаляет файл вложения из хранилища и запись о нем
// @Tags Консультации
// @Produce json
// @Param id path int true "ID вложения"
// @Success 204 {object} nil "Вложение удалено"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultations/attachments/{id} [delete]
func (h *Handler) deleteConsultationAttachment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Consultation.DeleteAttachment(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления вложения", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
