package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathInt reads a numeric path variable. Routes constrain these to digits, so a
// parse failure cannot happen once the router has matched.
func pathInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(mux.Vars(r)[key])
	return n
}
