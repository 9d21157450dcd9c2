package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/domain"
)

// Фото ограничено 5 МБ, дальше отсекается до чтения тела.
const maxPhotoSize = 5 << 20

// @Summary Добавить мастера
// @Description Создает профиль мастера, доступно только администратору
// @Tags Мастера
// @Accept json
// @Produce json
// @Param input body domain.CreateMasterDTO true "Данные мастера"
// @Success 201 {object} map[string]interface{} "ID созданного мастера"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /masters [post]
func (h *Handler) createMaster(c *gin.Context) {
	var input domain.CreateMasterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Master.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка создания мастера", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Получить мастера по ID
// @Tags Мастера
// @Produce json
// @Param id path int true "ID мастера"
// @Success 200 {object} domain.Master "Профиль мастера"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Router /masters/{id} [get]
func (h *Handler) getMasterByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	master, err := h.services.Master.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "мастер не найден")
		return
	}

	successResponse(c, http.StatusOK, master)
}

// @Summary Мой профиль мастера
// @Description Возвращает профиль мастера, привязанный к текущему пользователю
// @Tags Мастера
// @Produce json
// @Success 200 {object} domain.Master "Профиль мастера"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 404 {object} errorResponseBody "Профиль мастера не найден"
// @Security ApiKeyAuth
// @Router /masters/me [get]
func (h *Handler) getMyMasterProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	master, err := h.services.Master.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, "профиль мастера не найден")
		return
	}

	successResponse(c, http.StatusOK, master)
}

// @Summary Обновить мастера
// @Tags Мастера
// @Accept json
// @Produce json
// @Param id path int true "ID мастера"
// @Param input body domain.UpdateMasterDTO true "Данные для обновления"
// @Success 200 {object} messageResponseType "Сообщение об успешном обновлении"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Security ApiKeyAuth
// @Router /masters/{id} [put]
func (h *Handler) updateMaster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var input domain.UpdateMasterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Master.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка обновления мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "мастер успешно обновлен")
}

// @Summary Удалить мастера
// @Description Деактивирует профиль мастера, история записей сохраняется
// @Tags Мастера
// @Produce json
// @Param id path int true "ID мастера"
// @Success 204 {object} nil "Мастер удален"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Security ApiKeyAuth
// @Router /masters/{id} [delete]
func (h *Handler) deleteMaster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Master.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Список мастеров
// @Tags Мастера
// @Produce json
// @Param is_active query bool false "Фильтр по активности"
// @Param limit query int false "Количество записей" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {array} domain.Master "Список мастеров"
// @Router /masters [get]
func (h *Handler) getMasters(c *gin.Context) {
	var filter domain.MasterFilter

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

	masters, err := h.services.Master.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, masters)
}

// @Summary Загрузить фото мастера
// @Tags Мастера
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID мастера"
// @Param photo formData file true "Файл изображения"
// @Success 200 {object} messageResponseType "Фото загружено"
// @Failure 400 {object} errorResponseBody "Ошибка загрузки"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Security ApiKeyAuth
// @Router /masters/{id}/photo [post]
func (h *Handler) uploadMasterPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "файл не передан")
		return
	}

	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "файл слишком большой, максимум 5 МБ")
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

	if err := h.services.Master.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename); err != nil {
		h.logger.Error("ошибка загрузки фото мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "фото успешно загружено")
}

// @Summary Удалить фото мастера
// @Tags Мастера
// @Produce json
// @Param id path int true "ID мастера"
// @Success 204 {object} nil "Фото удалено"
// @Failure 400 {object} errorResponseBody "Ошибка удаления"
// @Failure 404 {object} errorResponseBody "Мастер не найден"
// @Security ApiKeyAuth
// @Router /masters/{id}/photo [delete]
func (h *Handler) deleteMasterPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	if err := h.services.Master.DeletePhoto(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка удаления фото мастера", zap.Int64("id", id), zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}
