// Package httpapi реализует HTTP JSON API сервиса поверх сервисов каталога
// и заказов.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	"github.com/vladislavdragonenkov/ecom/internal/pagination"
	"github.com/vladislavdragonenkov/ecom/internal/service/catalog"
	"github.com/vladislavdragonenkov/ecom/internal/service/orders"
)

// Handler связывает маршруты API с сервисами ядра.
type Handler struct {
	catalog *catalog.Service
	orders  *orders.Service
	logger  *log.Entry
}

// NewHandler конструирует обработчик API.
func NewHandler(catalogSvc *catalog.Service, ordersSvc *orders.Service, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Handler{
		catalog: catalogSvc,
		orders:  ordersSvc,
		logger:  logger,
	}
}

// Register привязывает маршруты API к роутеру.
func (h *Handler) Register(r chi.Router) {
	r.Post("/products", h.createProduct)
	r.Get("/products", h.listProducts)
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{user_id}", h.listUserOrders)
}

type sizePayload struct {
	Size     string `json:"size"`
	Quantity int32  `json:"quantity"`
}

type createProductRequest struct {
	Name  string        `json:"name"`
	Price float64       `json:"price"`
	Sizes []sizePayload `json:"sizes"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}

	sizes := make([]domain.Size, 0, len(req.Sizes))
	for _, size := range req.Sizes {
		sizes = append(sizes, domain.Size{Label: size.Size, Quantity: size.Quantity})
	}

	id, err := h.catalog.CreateProduct(r.Context(), catalog.ProductInput{
		Name:  req.Name,
		Price: req.Price,
		Sizes: sizes,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.catalog.ListProducts(r.Context(), catalog.ListQuery{
		Name: r.URL.Query().Get("name"),
		Size: r.URL.Query().Get("size"),
		Page: page,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Qty       int32  `json:"qty"`
}

type createOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []orderItemPayload `json:"items"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}

	items := make([]orders.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orders.OrderItemInput{ProductID: item.ProductID, Qty: item.Qty})
	}

	id, err := h.orders.CreateOrder(r.Context(), orders.OrderInput{
		UserID: req.UserID,
		Items:  items,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.orders.ListUserOrders(r.Context(), chi.URLParam(r, "user_id"), page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// pageParams читает limit/offset из строки запроса. Отсутствующие значения
// заменяются значениями по умолчанию; нечисловые отклоняются как ошибки
// валидации. Границы значений проверяет сервисный слой.
func pageParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Default()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return pagination.Params{}, domain.ErrLimitInvalid
		}
		params.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return pagination.Params{}, domain.ErrOffsetInvalid
		}
		params.Offset = offset
	}
	return params, nil
}
