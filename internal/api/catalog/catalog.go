package catalog

import (
	"casino_demo/internal/converter"
	"casino_demo/internal/service"
	"casino_demo/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.CatalogService
}

type Handler struct {
	serv service.CatalogService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Games - список игр для лобби
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	games, err := h.serv.Games(r.Context())
	if err != nil {
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponses(games))
}
