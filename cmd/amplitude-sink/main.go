package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Tap30/amplitude-go/adapters"
)

func main() {
	port := flag.Int("port", 3000, "port to listen on")
	flag.Parse()

	http.HandleFunc("/2/httpapi", handleIngest)

	log.Printf("Amplitude sink running at http://localhost:%d", *port)
	log.Printf("Endpoint: http://localhost:%d/2/httpapi", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), nil))
}

// handleIngest accepts HTTP V2 API payloads and answers like the real service.
func handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"code": 400, "error": "Failed to read body"})
		return
	}

	var payload adapters.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		reply(w, http.StatusBadRequest, map[string]any{"code": 400, "error": "Invalid JSON"})
		return
	}
	if payload.APIKey == "" {
		reply(w, http.StatusBadRequest, map[string]any{"code": 400, "error": "Invalid or missing api_key"})
		return
	}

	log.Printf("Forwarded for %s, user agent %q", r.Header.Get("X-Forwarded-For"), r.UserAgent())
	prettyJSON, _ := json.MarshalIndent(payload.Events, "", "  ")
	log.Printf("Received events:\n%s", string(prettyJSON))

	reply(w, http.StatusOK, map[string]any{
		"code":               200,
		"events_ingested":    len(payload.Events),
		"payload_size_bytes": len(body),
	})
}

func reply(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
