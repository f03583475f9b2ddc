// internal/api/handler/bank.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"demobank/internal/service"
	"demobank/internal/util"
)

// BankHandler handles account listing and transfer requests.
type BankHandler struct {
	accounts  service.AccountService
	transfers service.TransferService
	logger    *slog.Logger
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(accounts service.AccountService, transfers service.TransferService, logger *slog.Logger) *BankHandler {
	return &BankHandler{
		accounts:  accounts,
		transfers: transfers,
		logger:    logger,
	}
}

// TransferRequest represents the request body for transfer. Amount accepts a
// JSON number or a numeric string; anything else fails JSON decoding and maps
// to invalid input.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}

// ListAccounts returns the caller's accounts.
// GET /api/accounts
func (h *BankHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	accounts, err := h.accounts.ListAccounts(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, accounts)
}

// Transfer executes a balance transfer on behalf of the caller.
// POST /api/transfer
func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	transfer, err := h.transfers.Execute(r.Context(), userID, req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"status":   "SUCCESS",
		"transfer": transfer,
	})
}

// ListTransfers returns the transfers touching any of the caller's accounts.
// GET /api/transfers
func (h *BankHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	transfers, err := h.transfers.History(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transfers)
}
