// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

type envelope[T any] struct {
	Data   T              `json:"data"`
	Paging *models.Paging `json:"paging"`
	Errors any            `json:"errors"`
}

// newAPIClient starts the full stack over an in-memory SQLite database and
// returns a client bound to it.
func newAPIClient(t *testing.T) *resty.Client {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB: config.DB{DSN: ":memory:", Driver: config.DriverSQLite},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, config.App{
		TokenSignKey:     "api-test-key",
		TokenIssuer:      "go-contacts",
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

func call[T any](t *testing.T, req *resty.Request, method, url string) (int, envelope[T]) {
	t.Helper()

	resp, err := req.Execute(method, url)
	require.NoError(t, err)

	var env envelope[T]
	require.NoError(t, json.Unmarshal(resp.Body(), &env), resp.String())

	return resp.StatusCode(), env
}

func registerAndLogin(t *testing.T, client *resty.Client, username string) string {
	t.Helper()

	status, _ := call[models.UserResponse](t, client.R().
		SetBody(models.RegisterUserRequest{Username: username, Password: "rahasia", Name: username}),
		http.MethodPost, "/api/users")
	require.Equal(t, http.StatusOK, status)

	status, login := call[models.TokenResponse](t, client.R().
		SetBody(models.LoginUserRequest{Username: username, Password: "rahasia"}),
		http.MethodPost, "/api/users/login")
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, login.Data.Token)

	return login.Data.Token
}

func TestAPI_UserSession(t *testing.T) {
	client := newAPIClient(t)

	status, registered := call[models.UserResponse](t, client.R().
		SetBody(models.RegisterUserRequest{Username: "test", Password: "rahasia", Name: "Test"}),
		http.MethodPost, "/api/users")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.UserResponse{Username: "test", Name: "Test"}, registered.Data)

	status, dup := call[any](t, client.R().
		SetBody(models.RegisterUserRequest{Username: "test", Password: "rahasia", Name: "Test"}),
		http.MethodPost, "/api/users")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username already exists", dup.Errors)

	status, invalid := call[any](t, client.R().
		SetBody(map[string]string{"username": "", "password": ""}),
		http.MethodPost, "/api/users")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.IsType(t, []any{}, invalid.Errors)

	status, wrong := call[any](t, client.R().
		SetBody(models.LoginUserRequest{Username: "test", Password: "salah"}),
		http.MethodPost, "/api/users/login")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Username or password is wrong", wrong.Errors)

	status, login := call[models.TokenResponse](t, client.R().
		SetBody(models.LoginUserRequest{Username: "test", Password: "rahasia"}),
		http.MethodPost, "/api/users/login")
	require.Equal(t, http.StatusOK, status)
	token := login.Data.Token

	status, current := call[models.UserResponse](t, client.R().SetAuthToken(token), http.MethodGet, "/api/users/current")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Test", current.Data.Name)

	status, updated := call[models.UserResponse](t, client.R().
		SetHeader("Authorization", token).
		SetBody(map[string]string{"name": "Eko", "password": "baru"}),
		http.MethodPatch, "/api/users/current")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.UserResponse{Username: "test", Name: "Eko"}, updated.Data)

	status, out := call[string](t, client.R().SetAuthToken(token), http.MethodDelete, "/api/users/logout")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", out.Data)

	status, denied := call[any](t, client.R().SetAuthToken(token), http.MethodGet, "/api/users/current")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", denied.Errors)

	status, _ = call[models.TokenResponse](t, client.R().
		SetBody(models.LoginUserRequest{Username: "test", Password: "baru"}),
		http.MethodPost, "/api/users/login")
	assert.Equal(t, http.StatusOK, status)
}

func TestAPI_ContactsAndAddresses(t *testing.T) {
	client := newAPIClient(t)
	token := registerAndLogin(t, client, "test")
	other := registerAndLogin(t, client, "other")

	status, created := call[models.Contact](t, client.R().SetAuthToken(token).
		SetBody(map[string]string{"first_name": "Eko", "last_name": "Khannedy", "email": "eko@example.com", "phone": ""}),
		http.MethodPost, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	require.Positive(t, created.Data.ID)
	assert.Equal(t, "Eko", created.Data.FirstName)
	assert.Nil(t, created.Data.Phone)
	contactURL := fmt.Sprintf("/api/contacts/%d", created.Data.ID)

	status, missing := call[any](t, client.R().SetAuthToken(other), http.MethodGet, contactURL)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Contact is not found", missing.Errors)

	status, updated := call[models.Contact](t, client.R().SetAuthToken(token).
		SetBody(map[string]string{"phone": "0899"}),
		http.MethodPut, contactURL)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, updated.Data.Phone)
	assert.Equal(t, "0899", *updated.Data.Phone)
	assert.Equal(t, "Eko", updated.Data.FirstName)

	status, address := call[models.Address](t, client.R().SetAuthToken(token).
		SetBody(map[string]string{"city": "Jakarta", "country": "Indonesia", "postal_code": "11111"}),
		http.MethodPost, contactURL+"/addresses")
	require.Equal(t, http.StatusOK, status)
	addressURL := fmt.Sprintf("%s/addresses/%d", contactURL, address.Data.ID)

	status, _ = call[any](t, client.R().SetAuthToken(other).
		SetBody(map[string]string{"country": "Indonesia", "postal_code": "11111"}),
		http.MethodPost, contactURL+"/addresses")
	assert.Equal(t, http.StatusNotFound, status)

	status, changed := call[models.Address](t, client.R().SetAuthToken(token).
		SetBody(map[string]string{"city": "Bandung"}),
		http.MethodPut, addressURL)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, changed.Data.City)
	assert.Equal(t, "Bandung", *changed.Data.City)
	assert.Equal(t, "Indonesia", changed.Data.Country)

	status, list := call[[]models.Address](t, client.R().SetAuthToken(token), http.MethodGet, contactURL+"/addresses")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, list.Data, 1)

	status, _ = call[string](t, client.R().SetAuthToken(token), http.MethodDelete, addressURL)
	assert.Equal(t, http.StatusOK, status)

	status, gone := call[any](t, client.R().SetAuthToken(token), http.MethodGet, addressURL)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Address is not found", gone.Errors)

	status, _ = call[models.Address](t, client.R().SetAuthToken(token).
		SetBody(map[string]string{"country": "Indonesia", "postal_code": "22222"}),
		http.MethodPost, contactURL+"/addresses")
	require.Equal(t, http.StatusOK, status)

	status, removed := call[string](t, client.R().SetAuthToken(token), http.MethodDelete, contactURL)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", removed.Data)

	status, _ = call[any](t, client.R().SetAuthToken(token), http.MethodGet, contactURL+"/addresses")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_SearchPaging(t *testing.T) {
	client := newAPIClient(t)
	token := registerAndLogin(t, client, "test")

	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("Contact%d", i)
		if i%5 == 0 {
			name = fmt.Sprintf("Eko%d", i)
		}
		status, _ := call[models.Contact](t, client.R().SetAuthToken(token).
			SetBody(map[string]string{"first_name": name}),
			http.MethodPost, "/api/contacts")
		require.Equal(t, http.StatusOK, status)
	}

	status, page := call[[]models.Contact](t, client.R().SetAuthToken(token), http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, &models.Paging{Page: 1, TotalPage: 2, TotalItem: 15}, page.Paging)

	status, page = call[[]models.Contact](t, client.R().SetAuthToken(token).
		SetQueryParams(map[string]string{"page": "2"}),
		http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, page.Data, 5)

	status, page = call[[]models.Contact](t, client.R().SetAuthToken(token).
		SetQueryParams(map[string]string{"name": "eKO", "size": "2"}),
		http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, &models.Paging{Page: 1, TotalPage: 2, TotalItem: 3}, page.Paging)

	status, page = call[[]models.Contact](t, client.R().SetAuthToken(token).
		SetQueryParams(map[string]string{"page": "9"}),
		http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)

	status, page = call[[]models.Contact](t, client.R().SetAuthToken(token).
		SetQueryParams(map[string]string{"page": strconv.Itoa(math.MaxInt)}),
		http.MethodGet, "/api/contacts")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, page.Data)
	assert.Equal(t, &models.Paging{Page: math.MaxInt, TotalPage: 2, TotalItem: 15}, page.Paging)

	status, bad := call[any](t, client.R().SetAuthToken(token).
		SetQueryParams(map[string]string{"size": "101"}),
		http.MethodGet, "/api/contacts")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, bad.Errors)

	for _, query := range []map[string]string{{"page": "0"}, {"size": "0"}} {
		status, bad = call[any](t, client.R().SetAuthToken(token).SetQueryParams(query),
			http.MethodGet, "/api/contacts")
		assert.Equal(t, http.StatusBadRequest, status, query)
		assert.NotEmpty(t, bad.Errors)
	}
}

func TestAPI_PingAndUnknownMethod(t *testing.T) {
	client := newAPIClient(t)

	status, pong := call[string](t, client.R(), http.MethodGet, "/api/ping")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", pong.Data)

	status, _ = call[any](t, client.R(), http.MethodPut, "/api/users")
	assert.Equal(t, http.StatusNotFound, status)
}
