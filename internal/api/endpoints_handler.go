package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
)

//go:embed endpoints.json
var endpointsDoc []byte

// Endpoints returns the embedded endpoint description document.
func Endpoints() json.RawMessage {
	return json.RawMessage(endpointsDoc)
}

// GetEndpoints handles GET /api requests
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"endpoints": Endpoints()})
}
