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

func GetOrder(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "order_id")
	logrus.Debugf("fetching details for order id: %d", id)

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	order, err := dbhelper.GetOrderByID(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "Order detail not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.Order{order}, 1)
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
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

	order, err := dbhelper.CreateOrder(tx, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusCreated, []models.Order{order}, 1)
}

func UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "order_id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if _, err := dbhelper.GetOrderByID(tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Order detail not found for update")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}

	var req models.OrderRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	order, err := dbhelper.UpdateOrder(tx, id, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.Order{order}, 1)
}

// RegisterOrderRoutes mounts the order collection. Orders expose no list and no
// delete.
func RegisterOrderRoutes(router *mux.Router) {
	sub := router.PathPrefix("/order").Subrouter()
	sub.HandleFunc("/{order_id:[0-9]+}", GetOrder).Methods(http.MethodGet)
	sub.HandleFunc("/", CreateOrder).Methods(http.MethodPost)
	sub.HandleFunc("/{order_id:[0-9]+}", UpdateOrder).Methods(http.MethodPut)
}
