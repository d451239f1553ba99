// internal/interfaces/http/routes/routes_test.go
package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store"
	"github.com/faraz365/storefront-backend/internal/store/bootstrap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seq := store.NewSequencer()
	st := bootstrap.NewVolatile(seq)
	hub := realtime.NewHub()

	r := gin.New()
	SetupRoutes(r.Group("/api"), st, seq, hub)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestLogin_SampleAdminAccount(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/login",
		`{"email":"admin@admin.com","password":"admin123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	u := body["user"].(map[string]interface{})
	assert.Equal(t, "Admin User", u["name"])
	assert.Equal(t, "admin", u["role"])
	// Passwords never serialize.
	_, leaked := u["password"]
	assert.False(t, leaked)
	assert.NotContains(t, w.Body.String(), "admin123")
}

func TestLogin_UnknownCredentials(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/login",
		`{"email":"admin@admin.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Account not found. Please sign up first.", body["message"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/signup",
		`{"name":"Jane","email":"jane@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/signup",
		`{"name":"Jane Again","email":"jane@example.com","password":"pw"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Account already exists", body["message"])
}

func TestProducts_ListAndGet(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)

	w, body := doJSON(t, r, http.MethodGet, "/api/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Classic White Shirt", body["name"])

	w, body = doJSON(t, r, http.MethodGet, "/api/products/999", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/api/products/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", body["message"])
}

func TestCategoryGet_IncludesProducts(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/categories/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	category := body["category"].(map[string]interface{})
	assert.Equal(t, "Shirts", category["name"])

	products := body["products"].([]interface{})
	require.Len(t, products, 1)
}

func TestCategoryDelete_ReferentialGuard(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodDelete, "/api/categories/1", "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, float64(1), body["product_count"])

	// Delete the only shirt, then the category goes.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(t, r, http.MethodDelete, "/api/categories/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Category deleted successfully", body["message"])
}

func TestOrderPlacement(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/orders",
		`{"user_id":2,"items":[{"product_id":1,"quantity":2}],"payment_method":"cod"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Order placed successfully", body["message"])
	// The volatile demo order holds id 1.
	assert.Equal(t, float64(2), body["id"])

	w, body = doJSON(t, r, http.MethodPost, "/api/orders",
		`{"user_id":2,"items":[{"product_id":404,"quantity":1}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product 404 not found", body["message"])
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/cart/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["items"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/cart/2", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(t, r, http.MethodPost, "/api/cart/2", `{"product_id":1,"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(5), items[0].(map[string]interface{})["quantity"])

	w, body = doJSON(t, r, http.MethodDelete, "/api/cart/2/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["items"])
}

func TestContactForm(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","subject":"Order query","message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message sent successfully", body["message"])
}

func TestAnalytics_ReportShape(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/analytics?range=6months", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, body, "monthlyRevenue")
	assert.Contains(t, body, "topProducts")
	assert.Contains(t, body, "ordersByStatus")

	stats := body["totalStats"].(map[string]interface{})
	// Live counts come from the selected store.
	assert.Equal(t, float64(3), stats["totalProducts"])
	assert.Equal(t, float64(2), stats["totalCustomers"])
}

func TestTransactions_ListEnriched(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var transactions []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
	require.Len(t, transactions, 2)

	// Newest first: the 2024-01-20 shipment leads.
	assert.Equal(t, "shipped", transactions[0]["status"])
	assert.Equal(t, "John Doe", transactions[0]["user_name"])
	assert.Equal(t, "Black Leather Shoes", transactions[0]["product_name"])
}
