package api_test

import (
	"net/http"
	"testing"
	"time"

	"tapgas/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_RequiresSession(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/order", map[string]any{
		"address":      "12 Ridge Rd",
		"cylinderType": "14.5kg",
		"payment":      "cash",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not logged in", body(t, w)["error"])
}

func TestCreateOrder_RequiredFields(t *testing.T) {
	ts := newTestServer(t)
	ck := ts.login(t, "a@x.com", domain.RoleCustomer)

	full := map[string]any{
		"address":      "12 Ridge Rd",
		"cylinderType": "14.5kg",
		"payment":      "cash",
	}
	for _, missing := range []string{"address", "cylinderType", "payment"} {
		t.Run("missing "+missing, func(t *testing.T) {
			payload := map[string]any{}
			for k, v := range full {
				if k != missing {
					payload[k] = v
				}
			}
			w := ts.do(t, http.MethodPost, "/order", payload, ck)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Missing required order details", body(t, w)["error"])
		})
	}
}

func TestCreateOrder_LocationIsBothOrNeither(t *testing.T) {
	ts := newTestServer(t)
	ck := ts.login(t, "a@x.com", domain.RoleCustomer)

	w := ts.do(t, http.MethodPost, "/order", map[string]any{
		"address":      "12 Ridge Rd",
		"cylinderType": "14.5kg",
		"payment":      "cash",
		"location":     map[string]any{"lat": 5.55},
	}, ck)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	ts := newTestServer(t)
	ck := ts.login(t, "a@x.com", domain.RoleCustomer)

	w := ts.do(t, http.MethodPost, "/order", map[string]any{
		"address":      "12 Ridge Rd",
		"cylinderType": "14.5kg",
		"payment":      "momo",
		"customerName": "Ama",
		"uniqueCode":   "GAS-42",
		"location":     map[string]any{"lat": 5.55, "lng": -0.2},
		"date":         time.Now().Format(time.RFC3339),
	}, ck)

	require.Equal(t, http.StatusOK, w.Code)
	resp := body(t, w)
	assert.Equal(t, true, resp["success"])
	order := resp["order"].(map[string]any)

	// Generated short tracking id, independent of the primary key
	assert.Len(t, order["order_id"], 8)
	// Owner comes from the session, never from the body
	assert.Equal(t, "a@x.com", order["email"])
	// Status defaults to pending
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "momo", order["payment_method"])

	var stored domain.Order
	require.NoError(t, ts.db.Where("order_id = ?", order["order_id"]).First(&stored).Error)
	require.NotNil(t, stored.LocationLat)
	assert.InDelta(t, 5.55, *stored.LocationLat, 0.0001)
}

func TestCheckOrder_RequiresBothParams(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/order/check", map[string]any{"email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and uniqueCode required", body(t, w)["error"])
}

func TestCheckOrder_NotFound(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/order/check", map[string]any{
		"email":      "a@x.com",
		"uniqueCode": "GAS-42",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", body(t, w)["error"])
}

func TestCheckOrder_ReturnsMostRecentMatch(t *testing.T) {
	ts := newTestServer(t)
	// Two orders share the same email and tracking code, a day apart
	ts.seedOrder(t, func(o *domain.Order) {
		o.OrderID = "11111111"
		o.Email = "a@x.com"
		o.UniqueCode = strptr("GAS-42")
		o.Date = timeptr(time.Now().Add(-24 * time.Hour))
	})
	ts.seedOrder(t, func(o *domain.Order) {
		o.OrderID = "22222222"
		o.Email = "a@x.com"
		o.UniqueCode = strptr("GAS-42")
		o.Date = timeptr(time.Now())
	})

	// Lookup is public: no cookie sent
	w := ts.do(t, http.MethodPost, "/order/check", map[string]any{
		"email":      "a@x.com",
		"uniqueCode": "GAS-42",
	})

	require.Equal(t, http.StatusOK, w.Code)
	order := body(t, w)["order"].(map[string]any)
	assert.Equal(t, "22222222", order["order_id"])
}

func TestProfile_RequiresSession(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/profile", map[string]any{
		"name":         "Ama",
		"phone_number": "0244000000",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_RequiresBothFields(t *testing.T) {
	ts := newTestServer(t)
	ck := ts.login(t, "a@x.com", domain.RoleCustomer)

	w := ts.do(t, http.MethodPost, "/profile", map[string]any{"name": "Ama"}, ck)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and phone number required", body(t, w)["error"])
}

func TestProfile_UpdatesSessionUser(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUser(t, "a@x.com", domain.RoleCustomer)
	ck := ts.login(t, "a@x.com", domain.RoleCustomer)

	w := ts.do(t, http.MethodPost, "/profile", map[string]any{
		"name":         "Ama",
		"phone_number": "0244000000",
	}, ck)

	require.Equal(t, http.StatusOK, w.Code)
	var stored domain.User
	require.NoError(t, ts.db.Where("email = ?", "a@x.com").First(&stored).Error)
	require.NotNil(t, stored.Name)
	assert.Equal(t, "Ama", *stored.Name)
	require.NotNil(t, stored.PhoneNumber)
	assert.Equal(t, "0244000000", *stored.PhoneNumber)
}
