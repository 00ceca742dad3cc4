package server

import "net/http"

// Routes builds the API mux. The three gateway-backed routes check the
// method themselves so non-POST requests get a JSON 405 body instead of the
// mux's plain-text default.
func (d *Deps) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/analyze-emotion", d.HandleAnalyzeEmotion)
	mux.HandleFunc("/api/generate", d.HandleGeneratePrompts)
	mux.HandleFunc("/api/insight", d.HandleInsight)

	mux.HandleFunc("GET /api/entries", d.HandleListEntries)
	mux.HandleFunc("POST /api/entries", d.HandleCreateEntry)
	mux.HandleFunc("GET /api/stats", d.HandleStats)
	mux.HandleFunc("GET /api/companion", d.HandleCompanion)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, map[string]string{"status": "ok"})
	})

	return mux
}
