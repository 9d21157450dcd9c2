package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/domain"
)

// @Summary Добавить клиента
// @Description Заводит карточку клиента салона
// @Tags Клиенты
// @Accept json
// @Produce json
// @Param input body domain.CreateClientDTO true "Данные клиента"
// @Success 201 {object} map[string]interface{} "ID созданного клиента"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Security ApiKeyAuth
// @Router /clients [post]
func (h *Handler) createClient(c *gin.Context) {
	var input domain.CreateClientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Client.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания клиента", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить клиента по ID
// @Tags Клиенты
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} domain.Client "Карточка клиента"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Клиент не найден"
// @Security ApiKeyAuth
// @Router /clients/{id} [get]
func (h *Handler) getClientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	client, err := h.services.Client.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "клиент не найден")
		return
	}

	successResponse(c, http.StatusOK, client)
}

// @Summary Обновить клиента
// @Tags Клиенты
// @Accept json
// @Produce json
// @Param id path int true "ID клиента"
// @Param input body domain.UpdateClientDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Клиент не найден"
// @Security ApiKeyAuth
// @Router /clients/{id} [put]
func (h *Handler) updateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateClientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Client.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления клиента", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "клиент успешно обновлен")
}

// @Summary Удалить клиента
// @Description Деактивирует карточку клиента, история записей сохраняется
// @Tags Клиенты
// @Produce json
// @Param id path int true "ID клиента"
// @Success 204 {object} nil "Клиент удален"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Security ApiKeyAuth
// @Router /clients/{id} [delete]
func (h *Handler) deleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Client.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления клиента", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Список клиентов
// @Description Возвращает клиентов с поиском по имени и телефону
// @Tags Клиенты
// @Produce json
// @Param search query string false "Поиск по имени или телефону"
// @Param is_active query bool false "Фильтр по активности"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} paginatedResponse "Список клиентов"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Security ApiKeyAuth
// @Router /clients [get]
func (h *Handler) getClients(c *gin.Context) {
	var filter domain.ClientFilter

	if search := c.Query("search"); search != "" {
		filter.Search = &search
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

	clients, total, err := h.services.Client.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка клиентов", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, clients, total, page, limit)
}
