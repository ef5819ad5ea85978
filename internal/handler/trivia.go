package handler

import (
	"context"
	"net/http"

	"github.com/forgo/trivia/api/internal/middleware"
	"github.com/forgo/trivia/api/internal/model"
	"github.com/forgo/trivia/api/internal/pagination"
)

// TriviaService defines the business operations the trivia handler uses
type TriviaService interface {
	List(ctx context.Context, params pagination.Params) (*model.TriviaPage, error)
	Search(ctx context.Context, text string, params pagination.Params) (*model.TriviaPage, error)
	Random(ctx context.Context) (*model.TriviaQuestion, error)
	Get(ctx context.Context, id string) (*model.TriviaQuestion, error)
	Create(ctx context.Context, payload model.TriviaPayload) (*model.TriviaQuestion, error)
	Update(ctx context.Context, id string, payload model.TriviaPayload) (*model.TriviaQuestion, error)
	Delete(ctx context.Context, id string) error
}

// TriviaHandler handles trivia question endpoints
type TriviaHandler struct {
	triviaService TriviaService
	pagination    pagination.Config
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(triviaService TriviaService, paginationCfg pagination.Config) *TriviaHandler {
	return &TriviaHandler{
		triviaService: triviaService,
		pagination:    paginationCfg,
	}
}

// RegisterRoutes registers the quiz routes. Mutating routes are wrapped in gate.
func (h *TriviaHandler) RegisterRoutes(mux *http.ServeMux, gate middleware.Middleware) {
	mux.HandleFunc("GET /quiz", h.List)
	mux.Handle("POST /quiz", gate(http.HandlerFunc(h.Create)))
	mux.HandleFunc("GET /quiz/search", h.Search)
	mux.HandleFunc("GET /quiz/random", h.Random)
	mux.HandleFunc("GET /quiz/{id}", h.Get)
	mux.Handle("PUT /quiz/{id}", gate(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /quiz/{id}", gate(http.HandlerFunc(h.Delete)))
}

// List handles GET /quiz - one page of all questions
func (h *TriviaHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseQueryParams(r, h.pagination)

	page, err := h.triviaService.List(r.Context(), params)
	h.writePage(w, params, page, err)
}

// Search handles GET /quiz/search?q= - one page of matching questions
func (h *TriviaHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseQueryParams(r, h.pagination)

	page, err := h.triviaService.Search(r.Context(), r.URL.Query().Get("q"), params)
	h.writePage(w, params, page, err)
}

func (h *TriviaHandler) writePage(w http.ResponseWriter, params pagination.Params, page *model.TriviaPage, err error) {
	if err != nil {
		apiErr := MapServiceError(err)
		pagination.RecordRequest(apiErr.Status, params.Page)
		WriteError(w, apiErr)
		return
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	WriteJSON(w, http.StatusOK, page)
}

// Random handles GET /quiz/random - one randomly drawn question
func (h *TriviaHandler) Random(w http.ResponseWriter, r *http.Request) {
	q, err := h.triviaService.Random(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, q)
}

// Get handles GET /quiz/{id}
func (h *TriviaHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.triviaService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, q)
}

// Create handles POST /quiz - the response carries the assigned id
func (h *TriviaHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := DecodePayload(w, r)
	if err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgInvalidJSON))
		return
	}

	q, err := h.triviaService.Create(r.Context(), payload)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, q)
}

// Update handles PUT /quiz/{id} - merges the fields present in the body
func (h *TriviaHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := DecodePayload(w, r)
	if err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgInvalidJSON))
		return
	}

	q, err := h.triviaService.Update(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, q)
}

// Delete handles DELETE /quiz/{id}
func (h *TriviaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.triviaService.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, model.MessageResponse{Message: model.MsgTriviaDeleted})
}

// NotFound answers any request no route matched
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewNotFoundError(model.MsgRouteNotFound))
}
