package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
	"clinica/internal/service"
)

// @Summary Создать профессионала
// @Description Создает профиль психолога или психиатра
// @Tags Профессионалы
// @Accept json
// @Produce json
// @Param input body domain.CreateProfessionalDTO true "Данные профессионала"
// @Success 201 {object} map[string]interface{} "ID созданного профессионала"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals [post]
func (h *Handler) createProfessional(c *gin.Context) {
	var input domain.CreateProfessionalDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Professional.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания профессионала", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить профессионала по ID
// @Description Возвращает данные профессионала
// @Tags Профессионалы
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {object} domain.Professional "Данные профессионала"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Профессионал не найден"
// @Security ApiKeyAuth
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	professional, err := h.services.Professional.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения профессионала", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if professional == nil {
		notFoundResponse(c, "профессионал не найден")
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Мой профиль профессионала
// @Description Возвращает профиль профессионала, привязанный к текущему пользователю
// @Tags Профессионалы
// @Produce json
// @Success 200 {object} domain.Professional "Данные профессионала"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Профиль не найден"
// @Security ApiKeyAuth
// @Router /professionals/me [get]
func (h *Handler) getMyProfessionalProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	professional, err := h.services.Professional.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка получения профиля", zap.Int64("userId", userID), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if professional == nil {
		notFoundResponse(c, "профиль профессионала не найден")
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Обновить профессионала
// @Description Обновляет данные профессионала
// @Tags Профессионалы
// @Accept json
// @Produce json
// @Param id path int true "ID профессионала"
// @Param input body domain.UpdateProfessionalDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id} [put]
func (h *Handler) updateProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateProfessionalDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Professional.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления профессионала", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "профессионал обновлен")
}

// @Summary Удалить профессионала
// @Description Удаляет профиль профессионала
// @Tags Профессионалы
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 204 {object} nil "Профессионал удален"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id} [delete]
func (h *Handler) deleteProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Professional.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления профессионала", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary Список профессионалов
// @Description Возвращает список профессионалов с фильтрацией по роли
// @Tags Профессионалы
// @Produce json
// @Param role query string false "Роль (psychologist или psychiatrist)"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список профессионалов"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := domain.ProfessionalFilter{
		Limit:  limit,
		Offset: offset,
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.ProfessionalRole(roleStr)
		if role != domain.ProfessionalRolePsychologist && role != domain.ProfessionalRolePsychiatrist {
			badRequestResponse(c, "неверная роль профессионала")
			return
		}
		filter.Role = &role
	}

	professionals, total, err := h.services.Professional.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка профессионалов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, professionals, total, page, limit)
}

// @Summary Недельный шаблон доступности
// @Description Возвращает недельный шаблон доступности профессионала
// @Tags Доступность
// @Produce json
// @Param id path int true "ID профессионала"
// @Success 200 {array} domain.WeeklyAvailability "Шаблон по дням недели"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id}/availability [get]
func (h *Handler) getWeeklyAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	availability, err := h.services.Availability.GetWeekly(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения доступности", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, availability)
}

// @Summary Задать недельный шаблон доступности
// @Description Создает или обновляет записи недельного шаблона. День недели: 0=понедельник .. 6=воскресенье
// @Tags Доступность
// @Accept json
// @Produce json
// @Param id path int true "ID профессионала"
// @Param input body []domain.SetWeeklyAvailabilityDTO true "Записи шаблона"
// @Success 200 {object} messageResponseType "Сообщение об успешном сохранении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id}/availability [put]
func (h *Handler) setWeeklyAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input []domain.SetWeeklyAvailabilityDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Availability.SetWeekly(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка сохранения доступности", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "доступность сохранена")
}

// @Summary Исключения из расписания
// @Description Возвращает исключения доступности профессионала за период
// @Tags Доступность
// @Produce json
// @Param id path int true "ID профессионала"
// @Param start_date query string false "Начало периода (YYYY-MM-DD)"
// @Param end_date query string false "Конец периода (YYYY-MM-DD)"
// @Success 200 {array} domain.AvailabilityException "Список исключений"
// @Failure 400 {object} errorResponseBody "Неверный формат параметров"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id}/exceptions [get]
func (h *Handler) getAvailabilityExceptions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	filter := domain.ExceptionFilter{ProfessionalID: id}

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

	exceptions, err := h.services.Availability.ListExceptions(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения исключений", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, exceptions)
}

// @Summary Задать исключение из расписания
// @Description Создает или обновляет исключение доступности на конкретную дату
// @Tags Доступность
// @Accept json
// @Produce json
// @Param id path int true "ID профессионала"
// @Param input body domain.SetExceptionDTO true "Данные исключения"
// @Success 201 {object} map[string]interface{} "ID исключения"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id}/exceptions [post]
func (h *Handler) setAvailabilityException(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.SetExceptionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	exceptionID, err := h.services.Availability.SetException(c.Request.Context(), id, input)
	if err != nil {
		h.logger.Error("ошибка сохранения исключения", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": exceptionID})
}

// @Summary Удалить исключение
// @Description Удаляет исключение доступности
// @Tags Доступность
// @Produce json
// @Param id path int true "ID исключения"
// @Success 204 {object} nil "Исключение удалено"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/exceptions/{id} [delete]
func (h *Handler) deleteAvailabilityException(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Availability.DeleteException(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления исключения", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary Свободные слоты
// @Description Возвращает свободные времена начала консультации на дату. Сетка начал идет с фиксированным шагом независимо от длительности
// @Tags Доступность
// @Produce json
// @Param id path int true "ID профессионала"
// @Param date query string true "Дата (YYYY-MM-DD)"
// @Param duration query int false "Длительность в минутах" default(60)
// @Param step query int false "Шаг сетки в минутах" default(30)
// @Success 200 {array} string "Времена начала в формате HH:MM"
// @Failure 400 {object} errorResponseBody "Неверные параметры"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /professionals/{id}/slots [get]
func (h *Handler) getFreeSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		badRequestResponse(c, "параметр date обязателен")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", strconv.Itoa(domain.DefaultConsultationDuration)))
	if err != nil {
		badRequestResponse(c, "неверный формат duration")
		return
	}

	step, err := strconv.Atoi(c.DefaultQuery("step", strconv.Itoa(service.DefaultSlotStep)))
	if err != nil {
		badRequestResponse(c, "неверный формат step")
		return
	}

	slots, err := h.services.Availability.GenerateSlots(c.Request.Context(), id, dateStr, duration, step)
	if err != nil {
		if errors.Is(err, domain.ErrDatosInvalidos) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("ошибка расчета слотов", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, slots)
}
