package http

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"

	blogService "github.com/janixware/site-backend/internal/modules/blog/service"
	feedDomain "github.com/janixware/site-backend/internal/modules/feed/domain"
	feedService "github.com/janixware/site-backend/internal/modules/feed/service"
	inquiryDomain "github.com/janixware/site-backend/internal/modules/inquiry/domain"
	inquiryService "github.com/janixware/site-backend/internal/modules/inquiry/service"
	"github.com/janixware/site-backend/internal/shared/config"
	sharederrors "github.com/janixware/site-backend/internal/shared/errors"
)

// Server exposes the site's backend endpoints: the aggregated tech-news
// feed, the contact form, and the blog RSS.
type Server struct {
	cfg            *config.Config
	feedService    *feedService.Service
	inquiryService *inquiryService.Service
	blogService    *blogService.Service
	logger         *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, feedSvc *feedService.Service, inquirySvc *inquiryService.Service, blogSvc *blogService.Service) *Server {
	return &Server{
		cfg:            cfg,
		feedService:    feedSvc,
		inquiryService: inquirySvc,
		blogService:    blogSvc,
		logger:         slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/rss", s.handleAggregatedFeed)
	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("GET /blog/rss", s.handleBlogFeed)
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Site backend starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// feedResponse is the tech-news page contract.
type feedResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Items   []feedDomain.Item `json:"items"`
	Total   int               `json:"total"`
}

func (s *Server) handleAggregatedFeed(w http.ResponseWriter, r *http.Request) {
	result, err := s.feedService.Aggregate(r.Context())
	if err != nil {
		s.logger.Error("Feed aggregation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, feedResponse{
			Success: false,
			Error:   "Failed to fetch RSS feeds",
			Items:   []feedDomain.Item{},
			Total:   0,
		})
		return
	}

	writeJSON(w, http.StatusOK, feedResponse{
		Success: true,
		Items:   result.Items,
		Total:   result.Total,
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var inquiry inquiryDomain.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	result, err := s.inquiryService.Submit(r.Context(), &inquiry)
	if err != nil {
		if stderrors.Is(err, sharederrors.ErrMissingRequiredFields) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name, email, and message are required"})
			return
		}
		s.logger.Error("Contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to send message"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBlogFeed(w http.ResponseWriter, r *http.Request) {
	rss, err := s.blogService.GenerateRSS()
	if err != nil {
		s.logger.Error("Error generating blog feed", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
