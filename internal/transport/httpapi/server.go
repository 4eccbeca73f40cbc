package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"MediaMap/internal/domain"
	"MediaMap/internal/graph"
	"MediaMap/internal/metrics"
	"MediaMap/internal/ports"
	"MediaMap/internal/view"
)

// Server exposes a curated dataset as a read-only JSON API.
type Server struct {
	dataset ports.DatasetReader
	logger  *slog.Logger
}

// NewServer wraps a dataset reader.
func NewServer(dataset ports.DatasetReader, logger *slog.Logger) *Server {
	return &Server{dataset: dataset, logger: logger}
}

// Routes builds the chi router with metrics and recovery middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", s.listArticles)
		r.Get("/articles/{id}", s.getArticle)
		r.Get("/articles/{id}/graph", s.getGraph)
		r.Get("/rejected", s.listRejected)
	})

	return r
}

type articleResponse struct {
	ID               string           `json:"id"`
	Position         int              `json:"position"`
	Source           string           `json:"source"`
	Title            string           `json:"title"`
	URL              string           `json:"url"`
	Score            float64          `json:"score"`
	InsultPenalty    float64          `json:"insult_penalty"`
	Sentiment        domain.Sentiment `json:"sentiment"`
	TripleSentiment  domain.Sentiment `json:"triple_sentiment"`
	InsultRating     *float64         `json:"insult_rating"`
	Entities         []string         `json:"entities"`
	Concepts         []string         `json:"concepts"`
	DistinctConcepts []string         `json:"distinct_concepts"`
	Triples          []domain.Triple  `json:"triples"`
	Selected         bool             `json:"selected,omitempty"`
	Graph            *graph.Graph     `json:"graph,omitempty"`
}

type listResponse struct {
	Sort     domain.SortMode   `json:"sort"`
	Selected string            `json:"selected,omitempty"`
	Count    int               `json:"count"`
	Articles []articleResponse `json:"articles"`
}

type rejectionResponse struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "articles": s.dataset.Len()})
}

// listArticles handles GET /api/articles?sort=score|recent&selected=<id>.
func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseSortMode(r.URL.Query().Get("sort"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	state := view.State{Mode: mode}
	if selected := r.URL.Query().Get("selected"); selected != "" {
		state = state.ToggleSelected(selected)
	}

	ordered := s.dataset.Ordered(state.Mode)
	resp := listResponse{
		Sort:     state.Mode,
		Selected: state.Selected,
		Count:    len(ordered),
		Articles: make([]articleResponse, 0, len(ordered)),
	}
	for _, a := range ordered {
		item := toResponse(a)
		if state.IsSelected(a.ID) {
			g := graph.Project(a.Triples)
			item.Selected = true
			item.Graph = &g
		}
		resp.Articles = append(resp.Articles, item)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// getArticle handles GET /api/articles/{id}.
func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.dataset.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(a))
}

// getGraph handles GET /api/articles/{id}/graph.
func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.dataset.Graph(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

// listRejected handles GET /api/rejected.
func (s *Server) listRejected(w http.ResponseWriter, _ *http.Request) {
	rejected := s.dataset.Rejected()
	resp := make([]rejectionResponse, 0, len(rejected))
	for _, rj := range rejected {
		reason := ""
		if rj.Reason != nil {
			reason = rj.Reason.Error()
		}
		resp = append(resp, rejectionResponse{
			Position: rj.Position,
			ID:       rj.ID,
			Title:    rj.Title,
			Reason:   reason,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidSortMode):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		if s.logger != nil {
			s.logger.Error("request failed", "error", err)
		}
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toResponse(a domain.ProcessedArticle) articleResponse {
	return articleResponse{
		ID:               a.ID,
		Position:         a.Position,
		Source:           a.Source,
		Title:            a.Title,
		URL:              a.URL,
		Score:            a.Score,
		InsultPenalty:    a.InsultPenalty,
		Sentiment:        a.Sentiment,
		TripleSentiment:  a.TripleSentiment,
		InsultRating:     a.InsultRating,
		Entities:         nonNil(a.Entities),
		Concepts:         nonNil(a.Concepts),
		DistinctConcepts: a.DistinctConcepts(),
		Triples:          nonNilTriples(a.Triples),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilTriples(t []domain.Triple) []domain.Triple {
	if t == nil {
		return []domain.Triple{}
	}
	return t
}

// writeJSON encodes v in full before the status is written. Values that cannot
// be encoded are logged and answered with a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("encode response", "error", err)
		}
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "internal error"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil && s.logger != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
