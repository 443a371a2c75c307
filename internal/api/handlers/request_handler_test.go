package handlers_test

import (
	"testing"

	"share-a-bite-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_MissingFields(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")

	resp := env.do(t, "POST", "/api/foods/food-1/requests", map[string]interface{}{
		"location": "L",
	}, map[string]string{"x-user-email": "b@x.com"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Missing fields", decodeMap(t, resp)["error"])

	var count int64
	env.db.Model(&entities.FoodRequest{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateRequest_UnknownFood(t *testing.T) {
	env := setupTestApp(t)

	resp := env.do(t, "POST", "/api/foods/food-missing/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, map[string]string{"x-user-email": "b@x.com"})
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Food not found", decodeMap(t, resp)["error"])
}

func TestCreateRequest_FoodNotAvailable(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Donated", "2024-01-01T00:00:00Z")

	resp := env.do(t, "POST", "/api/foods/food-1/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, map[string]string{"x-user-email": "b@x.com"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Food not available", decodeMap(t, resp)["error"])

	var count int64
	env.db.Model(&entities.FoodRequest{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateRequest_AvailabilityIsCaseInsensitive(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "AVAILABLE", "2024-01-01T00:00:00Z")

	resp := env.do(t, "POST", "/api/foods/food-1/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, map[string]string{"x-user-email": "b@x.com"})
	assert.Equal(t, 201, resp.StatusCode)
}

func TestCreateRequest_Success(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")

	resp := env.do(t, "POST", "/api/foods/food-1/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, map[string]string{"x-user-email": "b@x.com"})
	require.Equal(t, 201, resp.StatusCode)

	result := decodeMap(t, resp)
	assert.Equal(t, true, result["success"])
	created := result["request"].(map[string]interface{})
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "food-1", created["foodId"])

	requester := created["requester"].(map[string]interface{})
	assert.Equal(t, "b@x.com", requester["email"])
}

func TestCreateRequest_AnonymousFallback(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")

	resp := env.do(t, "POST", "/api/foods/food-1/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, nil)
	require.Equal(t, 201, resp.StatusCode)

	requester := decodeMap(t, resp)["request"].(map[string]interface{})["requester"].(map[string]interface{})
	assert.Equal(t, "Anonymous", requester["name"])
	assert.Equal(t, "", requester["email"])
}

func TestListRequestsForFood_MissingIdentity(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")

	resp := env.do(t, "GET", "/api/foods/food-1/requests", nil, nil)
	assert.Equal(t, 403, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"], "missing user identity")
}

func TestListRequestsForFood_NonOwner(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")

	resp := env.do(t, "GET", "/api/foods/food-1/requests", nil, map[string]string{"x-user-email": "b@x.com"})
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "Not allowed", decodeMap(t, resp)["error"])
}

func TestListRequestsForFood_OwnerSeesNewestFirst(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-02T00:00:00Z")
	seedRequest(t, env.db, "req-2", "food-1", "c@x.com", "pending", "2024-01-03T00:00:00Z")
	seedRequest(t, env.db, "req-3", "food-other", "d@x.com", "pending", "2024-01-04T00:00:00Z")

	resp := env.do(t, "GET", "/api/foods/food-1/requests", nil, map[string]string{"x-user-email": "a@x.com"})
	require.Equal(t, 200, resp.StatusCode)

	requests := decodeList(t, resp)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-2", requests[0]["id"])
	assert.Equal(t, "req-1", requests[1]["id"])
}

func TestDecideRequest_InvalidStatus(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-02T00:00:00Z")

	resp := env.do(t, "PATCH", "/api/requests/req-1", map[string]interface{}{"status": "maybe"},
		map[string]string{"x-user-email": "a@x.com"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Invalid status", decodeMap(t, resp)["error"])
}

func TestDecideRequest_UnknownRequest(t *testing.T) {
	env := setupTestApp(t)

	resp := env.do(t, "PATCH", "/api/requests/req-missing", map[string]interface{}{"status": "accepted"},
		map[string]string{"x-user-email": "a@x.com"})
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Request not found", decodeMap(t, resp)["error"])
}

func TestDecideRequest_NonOwner(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-02T00:00:00Z")

	resp := env.do(t, "PATCH", "/api/requests/req-1", map[string]interface{}{"status": "accepted"},
		map[string]string{"x-user-email": "c@x.com"})
	assert.Equal(t, 403, resp.StatusCode)

	var item entities.FoodRequest
	require.NoError(t, env.db.First(&item, "id = ?", "req-1").Error)
	assert.Equal(t, "pending", item.Status)
}

func TestDecideRequest_AcceptFlipsFoodToDonated(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-02T00:00:00Z")

	resp := env.do(t, "PATCH", "/api/requests/req-1", map[string]interface{}{"status": "accepted"},
		map[string]string{"x-user-email": "a@x.com"})
	require.Equal(t, 200, resp.StatusCode)

	updated := decodeMap(t, resp)["request"].(map[string]interface{})
	assert.Equal(t, "accepted", updated["status"])
	assert.NotEmpty(t, updated["updatedAt"])

	var item entities.Food
	require.NoError(t, env.db.First(&item, "id = ?", "food-1").Error)
	assert.Equal(t, "Donated", item.Status)

	// requester got a best-effort notification
	assert.Equal(t, []string{"b@x.com"}, env.mailer.sent)
}

func TestDecideRequest_RejectLeavesFoodAlone(t *testing.T) {
	env := setupTestApp(t)
	seedFood(t, env.db, "food-1", "Bread", 1, "a@x.com", "Available", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-02T00:00:00Z")

	resp := env.do(t, "PATCH", "/api/requests/req-1", map[string]interface{}{"status": "rejected"},
		map[string]string{"x-user-email": "a@x.com"})
	require.Equal(t, 200, resp.StatusCode)

	var item entities.Food
	require.NoError(t, env.db.First(&item, "id = ?", "food-1").Error)
	assert.Equal(t, "Available", item.Status)
}

func TestMyRequests_RequiresIdentity(t *testing.T) {
	env := setupTestApp(t)

	resp := env.do(t, "GET", "/api/my/requests", nil, nil)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"], "Missing user identity")
}

func TestMyRequests_ReturnsOwnNewestFirst(t *testing.T) {
	env := setupTestApp(t)
	seedRequest(t, env.db, "req-1", "food-1", "b@x.com", "pending", "2024-01-01T00:00:00Z")
	seedRequest(t, env.db, "req-2", "food-2", "b@x.com", "accepted", "2024-01-02T00:00:00Z")
	seedRequest(t, env.db, "req-3", "food-3", "c@x.com", "pending", "2024-01-03T00:00:00Z")

	resp := env.do(t, "GET", "/api/my/requests", nil, map[string]string{"x-user-email": "b@x.com"})
	require.Equal(t, 200, resp.StatusCode)

	requests := decodeList(t, resp)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-2", requests[0]["id"])
	assert.Equal(t, "req-1", requests[1]["id"])
}

func TestDonationFlow_EndToEnd(t *testing.T) {
	env := setupTestApp(t)

	// donor lists bread
	resp := env.do(t, "POST", "/api/foods", map[string]interface{}{
		"name":         "Bread",
		"quantityText": "5 loaves",
	}, map[string]string{"x-user-email": "a@x.com"})
	require.Equal(t, 201, resp.StatusCode)
	created := decodeMap(t, resp)["food"].(map[string]interface{})
	foodID := created["id"].(string)
	assert.EqualValues(t, 5, created["quantityNumber"])
	assert.Equal(t, "Available", created["status"])
	assert.Equal(t, "a@x.com", created["donator"].(map[string]interface{})["email"])

	// requester claims it
	resp = env.do(t, "POST", "/api/foods/"+foodID+"/requests", map[string]interface{}{
		"location": "L", "reason": "R", "contact": "C",
	}, map[string]string{"x-user-email": "b@x.com"})
	require.Equal(t, 201, resp.StatusCode)
	claim := decodeMap(t, resp)["request"].(map[string]interface{})
	requestID := claim["id"].(string)
	assert.Equal(t, "pending", claim["status"])

	// a stranger cannot decide
	resp = env.do(t, "PATCH", "/api/requests/"+requestID, map[string]interface{}{"status": "accepted"},
		map[string]string{"x-user-email": "c@x.com"})
	assert.Equal(t, 403, resp.StatusCode)

	// the donor accepts
	resp = env.do(t, "PATCH", "/api/requests/"+requestID, map[string]interface{}{"status": "accepted"},
		map[string]string{"x-user-email": "a@x.com"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "accepted", decodeMap(t, resp)["request"].(map[string]interface{})["status"])

	// the listing is handed over
	resp = env.do(t, "GET", "/api/foods/"+foodID, nil, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Donated", decodeMap(t, resp)["status"])
}
