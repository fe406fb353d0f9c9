package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ShipmentService interface {
	Create(ctx context.Context, userID uuid.UUID, input entities.ShipmentPatch) (entities.Shipment, error)
	List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) (entities.ShipmentPage, error)
	Get(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch entities.ShipmentPatch) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, upd entities.StatusUpdate) (entities.Shipment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (entities.DashboardStats, error)
}

type PackingService interface {
	PackingInstructions(ctx context.Context, userID, id uuid.UUID) (entities.PackingInstructions, error)
}

type ShipmentHandler struct {
	logger    *slog.Logger
	auth      func(http.Handler) http.Handler
	shipments ShipmentService
	packing   PackingService
}

func NewShipmentHandler(logger *slog.Logger, auth func(http.Handler) http.Handler, shipments ShipmentService, packing PackingService) *ShipmentHandler {
	return &ShipmentHandler{
		logger:    logger.With(slog.String("handler", "shipment")),
		auth:      auth,
		shipments: shipments,
		packing:   packing,
	}
}

func (h *ShipmentHandler) Init(r chi.Router) {
	r.Route("/shipments", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		// до /{id}, иначе stats разберется как идентификатор
		r.Get("/stats", h.Stats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Patch("/status", h.UpdateStatus)
			r.Post("/packing-instructions", h.PackingInstructions)
		})
	})
}

// Create создает отправление.
// @Summary      Создать отправление
// @Description  Создает отправление текущего пользователя, рассчитывает стоимость, срок доставки и трек-номер
// @Tags         shipments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        shipment  body      ShipmentRequest  true  "Данные отправления"
// @Success      201  {object}  Shipment
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req ShipmentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	shipment, err := h.shipments.Create(ctx, userID, ShipmentRequestToPatch(req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "create shipment")
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusCreated)
}

// List возвращает отправления пользователя.
// @Summary      Список отправлений
// @Description  Возвращает страницу отправлений текущего пользователя, новые первыми
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Param        status    query     string  false  "Статус или all"
// @Param        search    query     string  false  "Подстрока описания, пункта отправления или назначения"
// @Param        page      query     int     false  "Номер страницы"  default(1)
// @Param        pageSize  query     int     false  "Размер страницы"  default(10)
// @Success      200  {object}  ShipmentList
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments [get]
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := entities.ShipmentFilter{
		Status: query.Get("status"),
		Search: query.Get("search"),
	}

	fields := make(map[string]string)
	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			fields["page"] = "numeric"
		}
		filter.Page = page
	}
	if v := query.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			fields["page_size"] = "numeric"
		}
		filter.PageSize = size
	}
	if len(fields) > 0 {
		utils.WriteValidationError(w, msgValidationFailed, fields)
		return
	}

	page, err := h.shipments.List(ctx, userID, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list shipments")
		return
	}

	utils.WriteJSON(w, ShipmentPageToJSON(page), http.StatusOK)
}

// Get возвращает отправление по ID.
// @Summary      Получить отправление
// @Description  Возвращает отправление текущего пользователя. Чужие отправления не видны
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Идентификатор отправления"
// @Success      200  {object}  Shipment
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/{id} [get]
func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	shipment, err := h.shipments.Get(ctx, userID, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get shipment")
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

// Update частично обновляет отправление.
// @Summary      Обновить отправление
// @Description  Обновляет переданные поля. При изменении параметров доставки стоимость и срок пересчитываются, трек-номер сохраняется
// @Tags         shipments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Идентификатор отправления"
// @Param        shipment  body      ShipmentRequest  true  "Изменяемые поля"
// @Success      200  {object}  Shipment
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/{id} [put]
func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var req ShipmentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	shipment, err := h.shipments.Update(ctx, userID, id, ShipmentRequestToPatch(req))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update shipment")
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

// UpdateStatus меняет только статус отправления.
// @Summary      Обновить статус
// @Description  Меняет статус. Дата доставки сохраняется только для DELIVERED
// @Tags         shipments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Идентификатор отправления"
// @Param        status  body      StatusRequest  true  "Новый статус"
// @Success      200  {object}  Shipment
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	upd := entities.StatusUpdate{Status: entities.ShipmentStatus(req.Status)}
	if req.ActualDeliveryDate != nil && *req.ActualDeliveryDate != "" {
		date, err := parseDate(*req.ActualDeliveryDate)
		if err != nil {
			utils.WriteValidationError(w, msgValidationFailed, map[string]string{"actual_delivery_date": "datetime"})
			return
		}
		upd.ActualDeliveryDate = &date
	}

	shipment, err := h.shipments.UpdateStatus(ctx, userID, id, upd)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update shipment status")
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

// Delete удаляет отправление.
// @Summary      Удалить отправление
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Идентификатор отправления"
// @Success      200  {object}  utils.MessageResponse
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/{id} [delete]
func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.shipments.Delete(ctx, userID, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "delete shipment")
		return
	}

	utils.WriteMessage(w, "Shipment removed", http.StatusOK)
}

// PackingInstructions генерирует инструкции по упаковке.
// @Summary      Инструкции по упаковке
// @Description  Генерирует рекомендации по упаковке на основе описания, хрупкости, способа доставки, расстояния и маршрута
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Идентификатор отправления"
// @Success      200  {object}  PackingResponse
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Отправление не найдено"
// @Failure      500  {object}  PackingErrorResponse "Ошибка генерации"
// @Router       /shipments/{id}/packing-instructions [post]
func (h *ShipmentHandler) PackingInstructions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	instructions, err := h.packing.PackingInstructions(ctx, userID, id)
	var upstream *entities.UpstreamError
	if errors.As(err, &upstream) {
		h.logger.ErrorContext(ctx, "failed to generate packing instructions",
			slog.String("shipment_id", id.String()),
			slog.Any("error", err),
		)
		utils.WriteJSON(w, PackingErrorResponse{
			Message: "Error generating packing instructions",
			Error:   upstream.Error(),
		}, http.StatusInternalServerError)
		return
	}
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "generate packing instructions")
		return
	}

	utils.WriteJSON(w, PackingEntityToJSON(instructions), http.StatusOK)
}

// Stats возвращает статистику для дашборда.
// @Summary      Статистика отправлений
// @Description  Счетчики по статусам, финансовая сводка, последние отправления, разбивка по приоритетам и помесячная динамика за полгода
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /shipments/stats [get]
func (h *ShipmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	stats, err := h.shipments.Stats(ctx, userID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get stats")
		return
	}

	utils.WriteJSON(w, StatsEntityToJSON(stats), http.StatusOK)
}

// target разбирает пользователя и id отправления. Некорректный id не может принадлежать пользователю.
func (h *ShipmentHandler) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := callerID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, "Shipment not found", http.StatusNotFound)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
