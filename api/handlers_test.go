package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pocket-budget/budget"
	"pocket-budget/models"
	"pocket-budget/store"
)

const testToken = "test-token"

func setupTestEnvironment(t *testing.T, startingBalance string) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := 0
	s := store.New(store.Options{
		StartingBalance: decimal.RequireFromString(startingBalance),
		Now:             func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) },
		PeriodTag:       func() string { return "Oct 16-31, 2026" },
		NewID: func() string {
			n++
			return fmt.Sprintf("tx-%d", n)
		},
	})

	router := SetupRouter(NewHandler(s, budget.NewFormatter("$")), RouterOptions{
		APIToken: testToken,
		Logger:   zerolog.Nop(),
	})
	return router, s
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func TestGetBudgetEmpty(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	w := doRequest(router, "GET", "/api/v1/budget", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotResponse
	decodeJSON(t, w, &resp)
	assert.True(t, resp.IncomeTotal.IsZero())
	assert.True(t, resp.ExpenseTotal.IsZero())
	assert.Equal(t, 0, resp.TransactionCount)
	assert.Equal(t, "$0.00", resp.Formatted.EndingBalance)
}

func TestEndToEndScenario(t *testing.T) {
	router, _ := setupTestEnvironment(t, "500")

	entries := []CreateTransactionRequest{
		{Type: "income", Description: "Salary", Category: "Job", Amount: "3200"},
		{Type: "expense", Description: "Rent", Category: "Housing", Amount: "1200"},
		{Type: "expense", Description: "Groceries", Category: "Food", Amount: "150"},
	}
	for _, e := range entries {
		w := doRequest(router, "POST", "/api/v1/transactions", e)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doRequest(router, "GET", "/api/v1/budget", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotResponse
	decodeJSON(t, w, &resp)
	assert.True(t, decimal.NewFromInt(3200).Equal(resp.IncomeTotal))
	assert.True(t, decimal.NewFromInt(1350).Equal(resp.ExpenseTotal))
	assert.True(t, decimal.NewFromInt(4350).Equal(resp.EndingBalance))
	assert.Equal(t, 3, resp.TransactionCount)
	assert.Equal(t, FormattedSnapshot{
		IncomeTotal:     "$3,200.00",
		ExpenseTotal:    "$1,350.00",
		StartingBalance: "$500.00",
		EndingBalance:   "$4,350.00",
	}, resp.Formatted)
}

func TestCreateTransactionDefaults(t *testing.T) {
	router, s := setupTestEnvironment(t, "0")

	w := doRequest(router, "POST", "/api/v1/transactions", CreateTransactionRequest{Type: "expense", Amount: "42.50"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TransactionResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "tx-1", resp.Transaction.ID)
	assert.Equal(t, "Entry", resp.Transaction.Description)
	assert.Equal(t, "General Expense", resp.Transaction.Category)
	assert.Equal(t, "Oct 16-31, 2026", resp.Transaction.PeriodTag)
	assert.Equal(t, "-$42.50", resp.Transaction.DisplayAmount)
	assert.Equal(t, "-$42.50", resp.Snapshot.Formatted.EndingBalance)
	assert.Equal(t, 1, s.Len())
}

func TestCreateTransactionRejected(t *testing.T) {
	router, s := setupTestEnvironment(t, "0")

	cases := []struct {
		amount string
		reason string
	}{
		{"0", "non_positive_amount"},
		{"", "empty_amount"},
		{"-5", "non_positive_amount"},
		{"abc", "invalid_amount"},
		{"1e3", "invalid_amount"},
		{"1e300000000", "invalid_amount"},
		{strings.Repeat("9", 64), "amount_too_large"},
	}

	for _, tc := range cases {
		w := doRequest(router, "POST", "/api/v1/transactions", CreateTransactionRequest{Type: "income", Amount: tc.amount})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "amount %q", tc.amount)

		var resp ErrorResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, tc.reason, resp.Reason, "amount %q", tc.amount)
	}

	w := doRequest(router, "POST", "/api/v1/transactions", CreateTransactionRequest{Type: "gift", Amount: "5"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Equal(t, 0, s.Len())
}

func TestCreateTransactionMalformedJSON(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/transactions", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetStartingBalance(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	w := doRequest(router, "PUT", "/api/v1/budget/starting-balance", SetStartingBalanceRequest{Amount: "-25.5"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SnapshotResponse
	decodeJSON(t, w, &resp)
	assert.True(t, decimal.RequireFromString("-25.5").Equal(resp.EndingBalance))
	assert.Equal(t, "-$25.50", resp.Formatted.StartingBalance)

	w = doRequest(router, "PUT", "/api/v1/budget/starting-balance", SetStartingBalanceRequest{Amount: "plenty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, "PUT", "/api/v1/budget/starting-balance", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, amount := range []string{"1e300000000", "-1e400", strings.Repeat("1", 30)} {
		w = doRequest(router, "PUT", "/api/v1/budget/starting-balance", SetStartingBalanceRequest{Amount: amount})
		assert.Equal(t, http.StatusBadRequest, w.Code, "amount %q", amount)
	}

	w = doRequest(router, "GET", "/api/v1/budget", nil)
	decodeJSON(t, w, &resp)
	assert.Equal(t, "-$25.50", resp.Formatted.StartingBalance)
}

func TestCreateTransactionSnapshotMatchesAdmittedEntry(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	const workers = 8
	var wg sync.WaitGroup
	responses := make([]*httptest.ResponseRecorder, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i] = doRequest(router, "POST", "/api/v1/transactions", CreateTransactionRequest{Type: "income", Amount: "1"})
		}(i)
	}
	wg.Wait()

	for _, w := range responses {
		require.Equal(t, http.StatusCreated, w.Code)

		var resp TransactionResponse
		decodeJSON(t, w, &resp)
		// ids are tx-N in admission order, so the snapshot must hold exactly N entries
		assert.Equal(t, fmt.Sprintf("tx-%d", resp.Snapshot.TransactionCount), resp.Transaction.ID)
		assert.True(t, decimal.NewFromInt(int64(resp.Snapshot.TransactionCount)).Equal(resp.Snapshot.IncomeTotal))
	}
}

func TestListTransactions(t *testing.T) {
	router, s := setupTestEnvironment(t, "0")
	for _, amount := range []string{"30", "10", "20"} {
		_, err := s.Dispatch(store.SubmitEntry{Draft: models.Draft{Type: models.Income, Amount: amount}})
		require.NoError(t, err)
	}

	w := doRequest(router, "GET", "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TransactionListResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, "tx-1", resp.Transactions[0].ID)
	assert.Equal(t, "+$30.00", resp.Transactions[0].DisplayAmount)
	assert.Equal(t, Pagination{Limit: 50, Offset: 0, Count: 3, Total: 3}, resp.Pagination)
	assert.True(t, decimal.NewFromInt(60).Equal(resp.Snapshot.IncomeTotal))

	w = doRequest(router, "GET", "/api/v1/transactions?limit=2&offset=0&sort_by=amount&sort_order=ASC", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = TransactionListResponse{}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "tx-2", resp.Transactions[0].ID)
	assert.Equal(t, "tx-3", resp.Transactions[1].ID)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestFormFlow(t *testing.T) {
	router, s := setupTestEnvironment(t, "0")

	w := doRequest(router, "GET", "/api/v1/form", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var form FormResponse
	decodeJSON(t, w, &form)
	assert.Equal(t, models.Expense, form.Draft.Type)

	income := "income"
	desc := "Bonus"
	amount := "0"
	w = doRequest(router, "PATCH", "/api/v1/form", UpdateFormRequest{Type: &income, Description: &desc, Amount: &amount})
	require.Equal(t, http.StatusOK, w.Code)

	// Rejected submit keeps the draft as typed
	w = doRequest(router, "POST", "/api/v1/form/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, models.Draft{Type: models.Income, Description: "Bonus", Amount: "0"}, s.GetState().Draft)

	amount = "99.99"
	w = doRequest(router, "PATCH", "/api/v1/form", UpdateFormRequest{Amount: &amount})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "POST", "/api/v1/form/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created TransactionResponse
	decodeJSON(t, w, &created)
	assert.Equal(t, "Bonus", created.Transaction.Description)
	assert.Equal(t, "General Income", created.Transaction.Category)
	assert.Equal(t, "+$99.99", created.Transaction.DisplayAmount)

	w = doRequest(router, "GET", "/api/v1/form", nil)
	form = FormResponse{}
	decodeJSON(t, w, &form)
	assert.Equal(t, models.Draft{Type: models.Income}, form.Draft)
}

func TestStreamBudgetSendsInitialSnapshot(t *testing.T) {
	router, _ := setupTestEnvironment(t, "500")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(ctx, "GET", "/api/v1/budget/stream", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "event:snapshot")
	assert.Contains(t, w.Body.String(), `"ending_balance":"$500.00"`)
}

func TestAuthMiddleware(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/budget", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/budget", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterWithoutTokenFailsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := store.New(store.Options{})
	router := SetupRouter(NewHandler(s, nil), RouterOptions{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/transactions", bytes.NewBufferString(`{"type":"income","amount":"5"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, s.Len())
}

func TestRouterWithAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := store.New(store.Options{})
	router := SetupRouter(NewHandler(s, nil), RouterOptions{DisableAuth: true, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/budget", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthAndSwagger(t *testing.T) {
	router, _ := setupTestEnvironment(t, "0")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/swagger/doc.json", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pocket Budget API")
}
