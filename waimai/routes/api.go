package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"waimai/waimai/controllers"
	"waimai/waimai/restaurants"
	"waimai/waimai/utils/types"
)

// APIRoutes wires the assistant-service endpoints consumed by the chat
// client and the filter panel.
func APIRoutes(ctrl *controllers.RecommendController, locator *controllers.Locator) chi.Router {
	r := chi.NewRouter()

	r.Get("/restaurants", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.RestaurantListResponse{Data: ctrl.Restaurants()})
	})

	r.Get("/cuisines", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.CuisineListResponse{Data: ctrl.Cuisines()})
	})

	r.Post("/recommend", func(w http.ResponseWriter, r *http.Request) {
		var criteria restaurants.Criteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
			writeError(w, http.StatusBadRequest, "请求格式错误")
			return
		}
		writeJSON(w, http.StatusOK, ctrl.Recommend(r.Context(), criteria))
	})

	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "请求格式错误")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeError(w, http.StatusBadRequest, "message不能为空")
			return
		}
		location := locator.Locate(r)
		writeJSON(w, http.StatusOK, ctrl.Chat(r.Context(), req, location))
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, types.ErrorBody{Detail: detail})
}
