package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"barberhub-backend/controllers"
	"barberhub-backend/models"
	"barberhub-backend/routes"
	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full router against a throwaway local store.
func newTestServer(t *testing.T) (*gin.Engine, *store.LocalStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s, err := store.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	controllers.Init(s)
	return routes.SetupRouter(), s
}

func bearerToken(t *testing.T, shopID uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateToken(uuid.NewString(), shopID.String())
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// firstShop returns the first seeded shop so tests have a known session shop.
func firstShop(t *testing.T, s *store.LocalStore) models.Shop {
	t.Helper()
	shops, err := s.GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, shops)
	return shops[0]
}
