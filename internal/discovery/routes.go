package discovery

import (
	"github.com/gorilla/mux"

	"github.com/amoradating/amora-backend/internal/common/utils"
)

func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1/discovery").Subrouter()
	api.Use(utils.RequestID)

	api.HandleFunc("/location", handler.UpdateLocation).Methods("PUT")
	api.HandleFunc("/preferences", handler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences", handler.UpdatePreferences).Methods("PUT")
	api.HandleFunc("/candidates", handler.FindCandidates).Methods("GET")
}
