package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody() map[string]string {
	return map[string]string{
		"name":        "Owner One",
		"email":       "owner@example.com",
		"password":    "supersecret",
		"shopName":    "Fresh Fades",
		"shopAddress": "12 Barber Lane",
	}
}

func TestRegisterCreatesOwnerAndShop(t *testing.T) {
	r, s := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Shop struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Services []struct {
				Name string `json:"name"`
			} `json:"services"`
		} `json:"shop"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner@example.com", resp.User.Email)
	assert.Equal(t, "Fresh Fades", resp.Shop.Name)
	// Fresh shops start with the three standard services.
	assert.Len(t, resp.Shop.Services, 3)

	user, err := s.GetUserByEmail("owner@example.com")
	require.NoError(t, err)
	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "supersecret", user.Password)
	assert.Equal(t, user.ShopID.String(), resp.Shop.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)

	body := registerBody()
	body["password"] = "short"
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody()
	body["email"] = "not-an-email"
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	r, s := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "owner@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)
	require.NotEmpty(t, login.Token)

	user, err := s.GetUserByEmail("owner@example.com")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)

	w = doJSON(t, r, http.MethodGet, "/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")
	assert.Contains(t, w.Body.String(), "Fresh Fades")
}

func TestLoginWrongCredentials(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "owner@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
