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

func ListMenuItems(w http.ResponseWriter, r *http.Request) {
	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	items, err := dbhelper.ListActiveMenuItems(tx)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if len(items) == 0 {
		utils.RespondError(w, http.StatusNotFound, "Menu items not found")
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, items, len(items))
}

func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	logrus.Debugf("fetching details for menu item: %s", name)

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	item, err := dbhelper.GetMenuItemByName(tx, name)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "Menu item detail not found")
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
	utils.RespondData(w, http.StatusOK, []models.MenuItem{item}, 1)
}

func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
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

	item, err := dbhelper.CreateMenuItem(tx, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusCreated, []models.MenuItem{item}, 1)
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	tx, err := database.Begin()
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	defer tx.Rollback()

	existing, err := dbhelper.GetMenuItemByName(tx, name)
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondError(w, http.StatusNotFound, "Menu item detail not found for update")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}

	var req models.MenuItemRequest
	if fieldErrs := utils.DecodeAndValidate(r, &req); fieldErrs != nil {
		utils.RespondError(w, http.StatusBadRequest, fieldErrs)
		return
	}

	item, err := dbhelper.UpdateMenuItem(tx, existing.ID, req)
	if err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	if err := tx.Commit(); err != nil {
		utils.RespondInternalError(w, r, err)
		return
	}
	utils.RespondData(w, http.StatusOK, []models.MenuItem{item}, 1)
}

// RegisterMenuItemRoutes mounts the menu item collection; single items are keyed
// by case-insensitive name, not id. Delete is not part of this surface.
func RegisterMenuItemRoutes(router *mux.Router) {
	sub := router.PathPrefix("/menu_item").Subrouter()
	sub.HandleFunc("/", ListMenuItems).Methods(http.MethodGet)
	sub.HandleFunc("/{name}", GetMenuItem).Methods(http.MethodGet)
	sub.HandleFunc("/", CreateMenuItem).Methods(http.MethodPost)
	sub.HandleFunc("/{name}", UpdateMenuItem).Methods(http.MethodPut)
}
