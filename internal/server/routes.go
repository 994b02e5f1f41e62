package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/parsa1021/tripguide/internal/storage"
)

// registerAPIRoutes mounts the search, history, theme and data endpoints.
func (s *Server) registerAPIRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Get("/history", s.handleHistoryList)
		r.Post("/history", s.handleHistoryPush)
		r.Delete("/history", s.handleHistoryClear)
		r.Get("/theme", s.handleThemeGet)
		r.Put("/theme", s.handleThemePut)
		r.Get("/data", s.handleData)
	})
}

// searchRequest is the JSON body for /api/search.
type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	res := s.engine.Filter(req.Query)
	for _, cat := range res.ExpandCategories {
		s.accordion.Open(cat)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	entries := s.history.Suggest(r.Context(), partial)
	if entries == nil {
		entries = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleHistoryPush(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	pushed := s.history.Push(r.Context(), req.Query)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"recorded": pushed})
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}

// themeRequest is the JSON body for /api/theme.
type themeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) handleThemeGet(w http.ResponseWriter, r *http.Request) {
	theme := s.store.GetString(r.Context(), storage.KeyTheme, "light")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(themeRequest{Theme: theme})
}

func (s *Server) handleThemePut(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	theme := strings.ToLower(req.Theme)
	if theme != "light" && theme != "dark" {
		http.Error(w, `{"error":"theme must be light or dark"}`, http.StatusBadRequest)
		return
	}

	if err := s.store.PutString(r.Context(), storage.KeyTheme, theme); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(themeRequest{Theme: theme})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.data)
}
