package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pocket-budget/budget"
	"pocket-budget/logger"
	"pocket-budget/models"
	"pocket-budget/store"
)

// Handler contains the handlers for the API
type Handler struct {
	Store     *store.Store
	Formatter *budget.Formatter
}

// NewHandler creates a new Handler
func NewHandler(s *store.Store, f *budget.Formatter) *Handler {
	if f == nil {
		f = budget.NewFormatter(budget.DefaultSymbol)
	}
	return &Handler{Store: s, Formatter: f}
}

// GetBudget returns the budget snapshot
// @Summary Get budget snapshot
// @Description Income total, expense total, starting and ending balance, with display strings
// @Tags budget
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} SnapshotResponse
// @Failure 401 {object} ErrorResponse
// @Router /budget [get]
func (h *Handler) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshotResponse(h.Store.GetState()))
}

// SetStartingBalance replaces the starting balance
// @Summary Set starting balance
// @Description Replace the starting balance; any plain decimal with at most 12 whole digits, including negative, is accepted
// @Tags budget
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param request body SetStartingBalanceRequest true "Starting balance"
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /budget/starting-balance [put]
func (h *Handler) SetStartingBalance(c *gin.Context) {
	var req SetStartingBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	amount, err := budget.ParseDecimal(req.Amount)
	if err != nil {
		reason, _ := budget.RejectionReason(err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Amount must be a plain decimal number with at most " + strconv.Itoa(budget.MaxIntegerDigits) + " whole digits",
			Reason: string(reason),
		})
		return
	}

	state, _, err := h.Store.Apply(store.SetStartingBalance{Amount: amount})
	if err != nil {
		h.dispatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.snapshotResponse(state))
}

// ListTransactions returns the transaction table
// @Summary List transactions
// @Description Transactions in insertion order unless a sort is requested
// @Tags transactions
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Param sort_by query string false "date or amount"
// @Param sort_order query string false "ASC or DESC"
// @Success 200 {object} TransactionListResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	state := h.Store.GetState()
	page := h.Store.Transactions(limit, offset, c.Query("sort_by"), c.Query("sort_order"))

	rows := make([]TransactionRow, len(page))
	for i, tx := range page {
		rows[i] = h.row(tx)
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Transactions: rows,
		Snapshot:     h.snapshotResponse(state),
		Pagination: Pagination{
			Limit:  limit,
			Offset: offset,
			Count:  len(rows),
			Total:  len(state.Transactions),
		},
	})
}

// CreateTransaction admits a new entry
// @Summary Add a transaction
// @Description Validate raw entry input and append it. Blank description and category get placeholders.
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param request body CreateTransactionRequest true "Entry"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	state, tx, err := h.Store.Apply(store.SubmitEntry{Draft: models.Draft{
		Type:        models.TransactionType(req.Type),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	}})
	if err != nil {
		h.dispatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{
		Transaction: h.row(*tx),
		Snapshot:    h.snapshotResponse(state),
	})
}

// GetForm returns the entry form draft
// @Summary Get entry form
// @Tags form
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} FormResponse
// @Failure 401 {object} ErrorResponse
// @Router /form [get]
func (h *Handler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{Draft: h.Store.GetState().Draft})
}

// UpdateForm edits entry form fields
// @Summary Edit entry form
// @Description Set any of type, description, category, amount on the draft
// @Tags form
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param request body UpdateFormRequest true "Fields to change"
// @Success 200 {object} FormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /form [patch]
func (h *Handler) UpdateForm(c *gin.Context) {
	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	action := store.UpdateDraft{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		action.Type = &t
	}

	state, _, err := h.Store.Apply(action)
	if err != nil {
		h.dispatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, FormResponse{Draft: state.Draft})
}

// SubmitForm admits the entry form draft
// @Summary Submit entry form
// @Description Admit the draft. On success the description, category and amount are cleared and the type is kept; on rejection the draft is unchanged.
// @Tags form
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 201 {object} TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /form/submit [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	state, tx, err := h.Store.Apply(store.SubmitDraft{})
	if err != nil {
		h.dispatchError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{
		Transaction: h.row(*tx),
		Snapshot:    h.snapshotResponse(state),
	})
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) dispatchError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())

	if reason, ok := budget.RejectionReason(err); ok {
		log.Warn().Err(err).Str("reason", string(reason)).Msg("entry rejected")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Reason: string(reason)})
		return
	}
	if errors.Is(err, store.ErrDuplicateID) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	log.Error().Err(err).Msg("dispatch failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update budget: " + err.Error()})
}

func (h *Handler) snapshotResponse(state store.State) SnapshotResponse {
	snap := budget.Summarize(state.StartingBalance, state.Transactions)
	return SnapshotResponse{
		IncomeTotal:      snap.IncomeTotal,
		ExpenseTotal:     snap.ExpenseTotal,
		StartingBalance:  snap.StartingBalance,
		EndingBalance:    snap.EndingBalance,
		TransactionCount: len(state.Transactions),
		Formatted: FormattedSnapshot{
			IncomeTotal:     h.Formatter.Format(snap.IncomeTotal),
			ExpenseTotal:    h.Formatter.Format(snap.ExpenseTotal),
			StartingBalance: h.Formatter.Format(snap.StartingBalance),
			EndingBalance:   h.Formatter.Format(snap.EndingBalance),
		},
	}
}

func (h *Handler) row(tx models.Transaction) TransactionRow {
	return TransactionRow{
		Transaction:   tx,
		DisplayAmount: h.Formatter.FormatSigned(tx.Type, tx.Amount),
	}
}
