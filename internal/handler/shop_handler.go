package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fsanano/go-shop/internal/model"
	"fsanano/go-shop/internal/repository"
	"fsanano/go-shop/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ShopHandler struct {
	svc      *service.ShopService
	users    *repository.UserRegistry
	catalog  *repository.ItemCatalog
	validate *validator.Validate
	log      logrus.FieldLogger
}

func NewShopHandler(
	svc *service.ShopService,
	users *repository.UserRegistry,
	catalog *repository.ItemCatalog,
	log logrus.FieldLogger,
) *ShopHandler {
	return &ShopHandler{
		svc:      svc,
		users:    users,
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

type PurchaseRequest struct {
	UserID  int64   `json:"user_id" validate:"required,gt=0"`
	ItemIDs []int64 `json:"item_ids" validate:"dive,gt=0"` // one entry per unit
}

type PurchaseResponse struct {
	OrderID uuid.UUID            `json:"order_id"`
	Status  model.PurchaseStatus `json:"status"`
	Balance decimal.Decimal      `json:"balance"`
}

var purchaseStatusCodes = map[model.PurchaseStatus]int{
	model.StatusOK:                     http.StatusOK,
	model.StatusUnknownItem:            http.StatusUnprocessableEntity,
	model.StatusUserHasLowBalance:      http.StatusConflict,
	model.StatusInsufficientItemsStock: http.StatusConflict,
}

func (h *ShopHandler) MakePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Get(req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.WithError(err).Error("failed to look up user")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items, ok := h.catalog.Resolve(req.ItemIDs)
	order := model.NewOrder(user, items...)
	if !ok {
		// An id without a catalog entry has no cost and must never be sold.
		writeJSON(w, purchaseStatusCodes[model.StatusUnknownItem], PurchaseResponse{
			OrderID: order.ID,
			Status:  model.StatusUnknownItem,
			Balance: user.Balance(),
		})
		return
	}
	status := h.svc.MakePurchase(order)

	writeJSON(w, purchaseStatusCodes[status], PurchaseResponse{
		OrderID: order.ID,
		Status:  status,
		Balance: user.Balance(),
	})
}

func (h *ShopHandler) Stock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}

func (h *ShopHandler) Items(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
