package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/domain"
)

// @Summary Создать запись
// @Description Записывает клиента к мастеру на процедуру. При пересечении с существующей записью возвращает 409
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные для записи"
// @Success 201 {object} map[string]interface{} "ID созданной записи"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} errorResponseBody "Слот уже занят"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			conflictResponse(c, err.Error())
			return
		}
		h.logger.Error("ошибка создания записи", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить запись по ID
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "запись не найдена")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Обновить запись
// @Description Переносит запись или меняет её статус. При пересечении нового времени с другой записью возвращает 409
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param input body domain.UpdateAppointmentDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} errorResponseBody "Слот уже занят"
// @Security ApiKeyAuth
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Appointment.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			conflictResponse(c, err.Error())
			return
		}
		h.logger.Error("ошибка обновления записи", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно обновлена")
}

// @Summary Отменить запись
// @Description Переводит запись в статус cancelled, её интервал освобождается для новых броней
// @Tags Записи
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType "Сообщение об успешной отмене"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "запись успешно отменена")
}

// @Summary Список записей
// @Description Возвращает записи с фильтрами по мастеру, клиенту, статусу и датам
// @Tags Записи
// @Produce json
// @Param master_id query int false "Фильтр по мастеру"
// @Param client_id query int false "Фильтр по клиенту"
// @Param status query string false "Фильтр по статусу" Enums(scheduled, done, cancelled)
// @Param date_from query string false "Начало периода YYYY-MM-DD"
// @Param date_to query string false "Конец периода YYYY-MM-DD"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список записей"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	var filter domain.AppointmentFilter

	if masterIDStr := c.Query("master_id"); masterIDStr != "" {
		masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
		if err == nil {
			filter.MasterID = &masterID
		}
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err == nil {
			filter.ClientID = &clientID
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		filter.Status = &status
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		parsed, err := time.Parse("2006-01-02", dateFrom)
		if err == nil {
			filter.StartDate = &parsed
		}
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		parsed, err := time.Parse("2006-01-02", dateTo)
		if err == nil {
			filter.EndDate = &parsed
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	filter.Limit = limit
	filter.Offset = offset

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка записей", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, appointments, total, page, limit)
}
