package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Создать пациента
// @Description Создает карточку пациента
// @Tags Пациенты
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Данные пациента"
// @Success 201 {object} map[string]interface{} "ID созданного пациента"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	var input domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Patient.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания пациента", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить пациента по ID
// @Description Возвращает карточку пациента
// @Tags Пациенты
// @Produce json
// @Param id path int true "ID пациента"
// @Success 200 {object} domain.Patient "Карточка пациента"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Пациент не найден"
// @Security ApiKeyAuth
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	patient, err := h.services.Patient.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения пациента", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if patient == nil {
		notFoundResponse(c, "пациент не найден")
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Обновить пациента
// @Description Обновляет карточку пациента
// @Tags Пациенты
// @Accept json
// @Produce json
// @Param id path int true "ID пациента"
// @Param input body domain.UpdatePatientDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /patients/{id} [put]
func (h *Handler) updatePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdatePatientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Patient.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления пациента", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "пациент обновлен")
}

// @Summary Удалить пациента
// @Description Удаляет карточку пациента
// @Tags Пациенты
// @Produce json
// @Param id path int true "ID пациента"
// @Success 204 {object} nil "Пациент удален"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /patients/{id} [delete]
func (h *Handler) deletePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Patient.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления пациента", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary Список пациентов
// @Description Возвращает список пациентов с фильтрацией по профессионалу
// @Tags Пациенты
// @Produce json
// @Param professional_id query int false "ID профессионала"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список пациентов"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := domain.PatientFilter{
		Limit:  limit,
		Offset: offset,
	}

	if profStr := c.Query("professional_id"); profStr != "" {
		profID, err := strconv.ParseInt(profStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат professional_id")
			return
		}
		filter.ProfessionalID = &profID
	}

	patients, total, err := h.services.Patient.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка пациентов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, patients, total, page, limit)
}
