package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/bistro/database"
	"github.com/ray-remotestate/bistro/database/dbhelper"
	"github.com/ray-remotestate/bistro/models"
	"github.com/ray-remotestate/bistro/utils"
)

// ListOrderItems returns the line items belonging to one order.
func ListOrderItems(w http.ResponseWriter, r *http.Request) {
	orderID := pathInt(r, "order_id")
	logrus.Debugf("fetching order items for order id: %d", orderID)

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	items, err := dbhelper.ListOrderItemsByOrder(tx, orderID)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if len(items) == 0 {
		utils.RespondError(w, http.StatusNotFound, "Order item not found")
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, items, len(items))
}

func CreateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req models.OrderItemRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	item, err := dbhelper.CreateOrderItem(tx, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusCreated, []models.OrderItem{item}, 1)
}

// UpdateOrderItem keys the row by its own id, although the path variable is
// named order_id to match the rest of the collection.
func UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "order_id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if _, err := dbhelper.GetOrderItemByID(tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Order item not found for update")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}

	var req models.OrderItemRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	item, err := dbhelper.UpdateOrderItem(tx, id, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.OrderItem{item}, 1)
}

// DeleteOrderItem removes a line item by (order_id, menu_item_id), not by the
// row's own id.
func DeleteOrderItem(w http.ResponseWriter, r *http.Request) {
	orderID := pathInt(r, "order_id")
	menuItemID := pathInt(r, "menu_item_id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if err := dbhelper.DeleteOrderItem(tx, orderID, menuItemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Order item not found for delete")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Order item deleted")
}

func RegisterOrderItemRoutes(router *mux.Router) {
	sub := router.PathPrefix("/order_item").Subrouter()
	sub.HandleFunc("/{order_id:[0-9]+}", ListOrderItems).Methods(http.MethodGet)
	sub.HandleFunc("/", CreateOrderItem).Methods(http.MethodPost)
	sub.HandleFunc("/{order_id:[0-9]+}", UpdateOrderItem).Methods(http.MethodPut)
	sub.HandleFunc("/{order_id:[0-9]+}/{menu_item_id:[0-9]+}", DeleteOrderItem).Methods(http.MethodDelete)
}
