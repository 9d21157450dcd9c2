package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/availability"
	"salon/internal/domain"
)

// @Summary График работы мастера
// @Description Возвращает рабочие окна мастера по дням недели
// @Tags Расписание
// @Produce json
// @Param id path int true "ID мастера"
// @Success 200 {object} domain.WorkingHours "График по дням недели"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Router /masters/{id}/working-hours [get]
func (h *Handler) getWorkingHours(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	hours, err := h.services.Schedule.GetWorkingHours(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Задать график работы мастера
// @Description Полностью заменяет график мастера. Дни, не указанные в запросе, считаются выходными
// @Tags Расписание
// @Accept json
// @Produce json
// @Param id path int true "ID мастера"
// @Param input body domain.SetWorkingHoursDTO true "Рабочие окна по дням недели"
// @Success 200 {object} messageResponseType "График сохранен"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Security ApiKeyAuth
// @Router /masters/{id}/working-hours [put]
func (h *Handler) setWorkingHours(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	userRole, _ := getUserRole(c)
	if userRole != domain.UserRoleAdmin {
		master, err := h.services.Master.GetByUserID(c.Request.Context(), userID)
		if err != nil || master.ID != id {
			forbiddenResponse(c, "менять можно только свой график")
			return
		}
	}

	var input domain.SetWorkingHoursDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Schedule.SetWorkingHours(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка сохранения графика", zap.Int64("masterID", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "график успешно сохранен")
}

// @Summary Свободные слоты
// @Description Возвращает сетку слотов мастера на дату под выбранную процедуру. Занятые интервалы помечены
// @Tags Расписание
// @Produce json
// @Param master_id query int true "ID мастера"
// @Param procedure_id query int true "ID процедуры"
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Param only_available query bool false "Вернуть только свободные слоты"
// @Success 200 {array} availability.Slot "Сетка слотов"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Мастер или процедура не найдены"
// @Router /schedule/slots [get]
func (h *Handler) getSlots(c *gin.Context) {
	masterID, err := strconv.ParseInt(c.Query("master_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный параметр master_id")
		return
	}

	procedureID, err := strconv.ParseInt(c.Query("procedure_id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный параметр procedure_id")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		badRequestResponse(c, "неверный формат даты, ожидается YYYY-MM-DD")
		return
	}

	slots, err := h.services.Schedule.GetSlots(c.Request.Context(), masterID, procedureID, date)
	if err != nil {
		h.logger.Error("ошибка расчета слотов",
			zap.Int64("masterID", masterID),
			zap.Int64("procedureID", procedureID),
			zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	if onlyAvailable, _ := strconv.ParseBool(c.DefaultQuery("only_available", "false")); onlyAvailable {
		slots = availability.Available(slots)
	}

	successResponse(c, http.StatusOK, slots)
}
