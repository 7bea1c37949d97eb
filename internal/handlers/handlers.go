package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spbu-ds-practicum-2025/accounts-service/internal/domain"
)

// Handler serves the accounts HTTP API.
type Handler struct {
	service *domain.AccountsService
	logger  *zap.Logger
}

// NewHandler creates a new Handler backed by the given service.
func NewHandler(service *domain.AccountsService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Router returns a chi router with all account routes mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Route("/v1/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/{accountID}", h.GetAccount)
		r.Post("/{accountID}/transfer", h.Transfer)
	})
	return r
}

// createAccountRequest is the body of POST /v1/accounts.
// Amounts are decimal strings (e.g. "100.00") to preserve exact precision.
type createAccountRequest struct {
	AccountID      string          `json:"account_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// transferRequest is the body of POST /v1/accounts/{accountID}/transfer.
type transferRequest struct {
	RecipientID string          `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
}

type transferResponse struct {
	Status string `json:"status"`
}

// errorResponse is the error envelope returned by every endpoint.
type errorResponse struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	ID          uuid.UUID `json:"id"`
}

// CreateAccount handles account creation requests.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}
	if req.AccountID == "" {
		h.sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "account_id is required")
		return
	}

	if err := h.service.CreateAccount(req.AccountID, req.InitialBalance); err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.logger.Info("account created",
		zap.String("account_id", req.AccountID),
		zap.String("initial_balance", req.InitialBalance.String()),
	)
	w.WriteHeader(http.StatusCreated)
}

// GetAccount returns the account's balance snapshot.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	snapshot, err := h.service.GetAccount(accountID)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, snapshot)
}

// Transfer moves funds from the account in the path to the recipient in the body.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}
	if req.RecipientID == "" {
		h.sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "recipient_id is required")
		return
	}

	if err := h.service.Transfer(r.Context(), accountID, req.RecipientID, req.Amount); err != nil {
		h.sendDomainError(w, err)
		return
	}

	h.logger.Info("transfer completed",
		zap.String("sender_id", accountID),
		zap.String("recipient_id", req.RecipientID),
		zap.String("amount", req.Amount.String()),
	)
	h.sendJSON(w, http.StatusOK, transferResponse{Status: "SUCCESS"})
}

// sendDomainError maps domain errors to HTTP status codes.
func (h *Handler) sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		h.sendError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrDuplicateAccount):
		h.sendError(w, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrSameAccount):
		h.sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		h.sendError(w, http.StatusBadRequest, "FAILED_PRECONDITION", err.Error())
	case errors.Is(err, domain.ErrTimeout):
		h.sendError(w, http.StatusRequestTimeout, "TIMEOUT", err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}

// sendError sends an error response in the expected format.
func (h *Handler) sendError(w http.ResponseWriter, statusCode int, code, description string) {
	h.sendJSON(w, statusCode, errorResponse{
		Code:        code,
		Description: description,
		ID:          uuid.New(),
	})
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
