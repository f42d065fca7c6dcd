package handler

import (
	"net/http"
	"strconv"

	"property-backoffice/pkg/response"

	"github.com/gorilla/mux"
)

// parseID reads the {id} path variable. On failure it writes a 400 naming
// the entity and returns false.
func parseID(w http.ResponseWriter, r *http.Request, entity string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+entity+" ID", nil)
		return 0, false
	}
	return uint(id), true
}
