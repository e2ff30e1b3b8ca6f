package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/bistro/database"
	"github.com/ray-remotestate/bistro/database/dbhelper"
	"github.com/ray-remotestate/bistro/models"
	"github.com/ray-remotestate/bistro/utils"
)

// GetPayment looks up a transaction by primary key; the path variable is named
// order_id but carries the transaction's own id.
func GetPayment(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "order_id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	payment, err := dbhelper.GetPaymentByID(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "Payment transaction not found")
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
	utils.RespondData(w, http.StatusOK, []models.PaymentTransaction{payment}, 1)
}

func CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
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

	payment, err := dbhelper.CreatePayment(tx, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusCreated, []models.PaymentTransaction{payment}, 1)
}

func UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "order_id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if _, err := dbhelper.GetPaymentByID(tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Payment transaction not found for update")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}

	var req models.PaymentRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	payment, err := dbhelper.UpdatePayment(tx, id, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.PaymentTransaction{payment}, 1)
}

func RegisterPaymentRoutes(router *mux.Router) {
	sub := router.PathPrefix("/payment").Subrouter()
	sub.HandleFunc("/{order_id:[0-9]+}", GetPayment).Methods(http.MethodGet)
	sub.HandleFunc("/", CreatePayment).Methods(http.MethodPost)
	sub.HandleFunc("/{order_id:[0-9]+}", UpdatePayment).Methods(http.MethodPut)
}
