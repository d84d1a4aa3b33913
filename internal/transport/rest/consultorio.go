package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinica/internal/domain"
)

// @Summary Создать кабинет
// @Description Создает кабинет клиники
// @Tags Кабинеты
// @Accept json
// @Produce json
// @Param input body domain.CreateConsultorioDTO true "Данные кабинета"
// @Success 201 {object} map[string]interface{} "ID созданного кабинета"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultorios [post]
func (h *Handler) createConsultorio(c *gin.Context) {
	var input domain.CreateConsultorioDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Consultorio.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания кабинета", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить кабинет по ID
// @Description Возвращает данные кабинета
// @Tags Кабинеты
// @Produce json
// @Param id path int true "ID кабинета"
// @Success 200 {object} domain.Consultorio "Данные кабинета"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Кабинет не найден"
// @Security ApiKeyAuth
// @Router /consultorios/{id} [get]
func (h *Handler) getConsultorioByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	consultorio, err := h.services.Consultorio.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("ошибка получения кабинета", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if consultorio == nil {
		notFoundResponse(c, "кабинет не найден")
		return
	}

	successResponse(c, http.StatusOK, consultorio)
}

// @Summary Обновить кабинет
// @Description Обновляет данные кабинета
// @Tags Кабинеты
// @Accept json
// @Produce json
// @Param id path int true "ID кабинета"
// @Param input body domain.UpdateConsultorioDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultorios/{id} [put]
func (h *Handler) updateConsultorio(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateConsultorioDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Consultorio.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления кабинета", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "кабинет обновлен")
}

// @Summary Удалить кабинет
// @Description Удаляет кабинет
// @Tags Кабинеты
// @Produce json
// @Param id path int true "ID кабинета"
// @Success 204 {object} nil "Кабинет удален"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultorios/{id} [delete]
func (h *Handler) deleteConsultorio(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Consultorio.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления кабинета", zap.Int64("id", id), zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary Список кабинетов
// @Description Возвращает все кабинеты клиники
// @Tags Кабинеты
// @Produce json
// @Success 200 {array} domain.Consultorio "Список кабинетов"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /consultorios [get]
func (h *Handler) getConsultorios(c *gin.Context) {
	consultorios, err := h.services.Consultorio.List(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка получения списка кабинетов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, consultorios)
}
