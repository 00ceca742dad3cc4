package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/innerprompt/innerprompt/journal"
)

// HandleListEntries returns the journal log, newest first, at most
// journal.HistoryLimit records.
func (d *Deps) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, d.Journal.Load())
}

// CreateEntryRequest is the JSON body for POST /api/entries. The server
// assigns the id and timestamp.
type CreateEntryRequest struct {
	Emotion string   `json:"emotion"`
	Prompts []string `json:"prompts"`
	Answer  string   `json:"answer"`
}

// HandleCreateEntry appends a journal entry. A failed write is logged and
// the entry is still returned: the UI must never break on unavailable
// storage, but the loss is no longer silent.
func (d *Deps) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Emotion == "" {
		jsonError(w, "Emotion is required", http.StatusBadRequest)
		return
	}

	entry := journal.NewEntry(req.Emotion, req.Prompts, req.Answer)
	if err := d.Journal.Append(entry); err != nil {
		log.Printf("warning: append journal entry: %v", err)
	}

	jsonOK(w, entry)
}
