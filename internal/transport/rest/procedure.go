package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/domain"
)

// @Summary Добавить процедуру
// @Description Создает процедуру в прейскуранте, доступно только администратору
// @Tags Процедуры
// @Accept json
// @Produce json
// @Param input body domain.CreateProcedureDTO true "Данные процедуры"
// @Success 201 {object} map[string]interface{} "ID созданной процедуры"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /procedures [post]
func (h *Handler) createProcedure(c *gin.Context) {
	var input domain.CreateProcedureDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Procedure.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания процедуры", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить процедуру по ID
// @Tags Процедуры
// @Produce json
// @Param id path int true "ID процедуры"
// @Success 200 {object} domain.Procedure "Данные процедуры"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Процедура не найдена"
// @Router /procedures/{id} [get]
func (h *Handler) getProcedureByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	procedure, err := h.services.Procedure.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "процедура не найдена")
		return
	}

	successResponse(c, http.StatusOK, procedure)
}

// @Summary Обновить процедуру
// @Tags Процедуры
// @Accept json
// @Produce json
// @Param id path int true "ID процедуры"
// @Param input body domain.UpdateProcedureDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Процедура не найдена"
// @Security ApiKeyAuth
// @Router /procedures/{id} [put]
func (h *Handler) updateProcedure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateProcedureDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Procedure.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления процедуры", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "процедура успешно обновлена")
}

// @Summary Удалить процедуру
// @Description Убирает процедуру из прейскуранта, история записей сохраняется
// @Tags Процедуры
// @Produce json
// @Param id path int true "ID процедуры"
// @Success 204 {object} nil "Процедура удалена"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /procedures/{id} [delete]
func (h *Handler) deleteProcedure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Procedure.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления процедуры", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Список процедур
// @Tags Процедуры
// @Produce json
// @Param category query string false "Фильтр по категории"
// @Param is_active query bool false "Фильтр по активности"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список процедур"
// @Router /procedures [get]
func (h *Handler) getProcedures(c *gin.Context) {
	var filter domain.ProcedureFilter

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if isActiveStr := c.Query("is_active"); isActiveStr != "" {
		isActive, err := strconv.ParseBool(isActiveStr)
		if err == nil {
			filter.IsActive = &isActive
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

	procedures, total, err := h.services.Procedure.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка процедур", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, procedures, total, page, limit)
}
