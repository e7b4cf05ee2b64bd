package handlers

import (
	"encoding/json"
	"net/http"
)

// httpResponder adapts an http.ResponseWriter pair to the engine's response
// surface.
type httpResponder struct {
	w http.ResponseWriter
	r *http.Request
}

func (h *httpResponder) Redirect(url string) {
	http.Redirect(h.w, h.r, url, http.StatusFound)
}

func (h *httpResponder) SendHTML(status int, body string) {
	h.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.w.WriteHeader(status)
	_, _ = h.w.Write([]byte(body))
}

func (h *httpResponder) SendJSON(status int, v any) {
	h.w.Header().Set("Content-Type", "application/json")
	h.w.WriteHeader(status)
	_ = json.NewEncoder(h.w).Encode(v)
}
