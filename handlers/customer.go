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

func ListCustomers(w http.ResponseWriter, r *http.Request) {
	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	customers, err := dbhelper.ListCustomers(tx)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if len(customers) == 0 {
		utils.RespondError(w, http.StatusNotFound, "Customers not found")
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, customers, len(customers))
}

func GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	logrus.Debugf("fetching details for customer id: %d", id)

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	customer, err := dbhelper.GetCustomerByID(tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "Customer not found")
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
	utils.RespondData(w, http.StatusOK, []models.Customer{customer}, 1)
}

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
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

	customer, err := dbhelper.CreateCustomer(tx, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusCreated, []models.Customer{customer}, 1)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if _, err := dbhelper.GetCustomerByID(tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Customer not found for update")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}

	var req models.CustomerRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	customer, err := dbhelper.UpdateCustomer(tx, id, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.Customer{customer}, 1)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	if err := dbhelper.DeleteCustomer(tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.RespondError(w, http.StatusNotFound, "Customer not found for delete")
			return
		}
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Customer deleted")
}

// RegisterCustomerRoutes mounts the customer collection on its URL prefix.
func RegisterCustomerRoutes(router *mux.Router) {
	sub := router.PathPrefix("/customer").Subrouter()
	sub.HandleFunc("/", ListCustomers).Methods(http.MethodGet)
	sub.HandleFunc("/{id:[0-9]+}", GetCustomer).Methods(http.MethodGet)
	sub.HandleFunc("/", CreateCustomer).Methods(http.MethodPost)
	sub.HandleFunc("/{id:[0-9]+}", UpdateCustomer).Methods(http.MethodPut)
	sub.HandleFunc("/{id:[0-9]+}", DeleteCustomer).Methods(http.MethodDelete)
}
