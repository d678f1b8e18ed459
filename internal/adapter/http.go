// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

const defaultTimeout = 15 * time.Second

// Config holds the connection settings of the HTTP adapter.
type Config struct {
	// HTTPAddress is the server address, with or without a scheme
	// ("localhost:8080" or "https://contacts.example.com").
	HTTPAddress string

	// RequestTimeout bounds every request. Zero selects 15 seconds.
	RequestTimeout time.Duration
}

type httpAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the REST implementation of [ContactBookAdapter].
// It returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPAdapter(cfg Config, logger *logger.Logger) (ContactBookAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("http adapter created")
	return &httpAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdapter) Register(ctx context.Context, request models.RegisterUserRequest) (models.UserResponse, error) {
	user, _, err := execute[models.UserResponse](h.request(ctx).SetBody(request), http.MethodPost, "/api/users", "register")
	return user, err
}

func (h *httpAdapter) Login(ctx context.Context, request models.LoginUserRequest) (string, error) {
	token, _, err := execute[models.TokenResponse](h.request(ctx).SetBody(request), http.MethodPost, "/api/users/login", "login")
	if err != nil {
		return "", err
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpAdapter) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	user, _, err := execute[models.UserResponse](h.request(ctx), http.MethodGet, "/api/users/current", "get current user")
	return user, err
}

func (h *httpAdapter) UpdateCurrentUser(ctx context.Context, request models.UpdateUserRequest) (models.UserResponse, error) {
	user, _, err := execute[models.UserResponse](h.request(ctx).SetBody(request), http.MethodPatch, "/api/users/current", "update current user")
	return user, err
}

func (h *httpAdapter) Logout(ctx context.Context) error {
	if _, _, err := execute[string](h.request(ctx), http.MethodDelete, "/api/users/logout", "logout"); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAdapter) CreateContact(ctx context.Context, request models.CreateContactRequest) (models.Contact, error) {
	contact, _, err := execute[models.Contact](h.request(ctx).SetBody(request), http.MethodPost, "/api/contacts", "create contact")
	return contact, err
}

func (h *httpAdapter) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	req := h.request(ctx).SetPathParam("contactId", strconv.FormatInt(contactID, 10))
	contact, _, err := execute[models.Contact](req, http.MethodGet, "/api/contacts/{contactId}", "get contact")
	return contact, err
}

func (h *httpAdapter) UpdateContact(ctx context.Context, request models.UpdateContactRequest) (models.Contact, error) {
	req := h.request(ctx).
		SetPathParam("contactId", strconv.FormatInt(request.ID, 10)).
		SetBody(request)
	contact, _, err := execute[models.Contact](req, http.MethodPut, "/api/contacts/{contactId}", "update contact")
	return contact, err
}

func (h *httpAdapter) RemoveContact(ctx context.Context, contactID int64) error {
	req := h.request(ctx).SetPathParam("contactId", strconv.FormatInt(contactID, 10))
	_, _, err := execute[string](req, http.MethodDelete, "/api/contacts/{contactId}", "remove contact")
	return err
}

// SearchContacts sends only the filters and paging values that are set. A nil
// Page or Size leaves the server default in place.
func (h *httpAdapter) SearchContacts(ctx context.Context, request models.SearchContactRequest) ([]models.Contact, models.Paging, error) {
	req := h.request(ctx)
	if request.Name != nil {
		req.SetQueryParam("name", *request.Name)
	}
	if request.Email != nil {
		req.SetQueryParam("email", *request.Email)
	}
	if request.Phone != nil {
		req.SetQueryParam("phone", *request.Phone)
	}
	if request.Page != nil {
		req.SetQueryParam("page", strconv.Itoa(*request.Page))
	}
	if request.Size != nil {
		req.SetQueryParam("size", strconv.Itoa(*request.Size))
	}

	contacts, paging, err := execute[[]models.Contact](req, http.MethodGet, "/api/contacts", "search contacts")
	if err != nil {
		return nil, models.Paging{}, err
	}
	if paging == nil {
		return nil, models.Paging{}, fmt.Errorf("%w: search response without paging", ErrUnexpectedResponse)
	}

	return contacts, *paging, nil
}

func (h *httpAdapter) CreateAddress(ctx context.Context, contactID int64, request models.CreateAddressRequest) (models.Address, error) {
	req := h.request(ctx).
		SetPathParam("contactId", strconv.FormatInt(contactID, 10)).
		SetBody(request)
	address, _, err := execute[models.Address](req, http.MethodPost, "/api/contacts/{contactId}/addresses", "create address")
	return withContactID(address, contactID), err
}

func (h *httpAdapter) GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error) {
	req := h.addressRequest(ctx, contactID, addressID)
	address, _, err := execute[models.Address](req, http.MethodGet, "/api/contacts/{contactId}/addresses/{addressId}", "get address")
	return withContactID(address, contactID), err
}

func (h *httpAdapter) UpdateAddress(ctx context.Context, contactID int64, request models.UpdateAddressRequest) (models.Address, error) {
	req := h.addressRequest(ctx, contactID, request.ID).SetBody(request)
	address, _, err := execute[models.Address](req, http.MethodPut, "/api/contacts/{contactId}/addresses/{addressId}", "update address")
	return withContactID(address, contactID), err
}

func (h *httpAdapter) RemoveAddress(ctx context.Context, contactID, addressID int64) error {
	req := h.addressRequest(ctx, contactID, addressID)
	_, _, err := execute[string](req, http.MethodDelete, "/api/contacts/{contactId}/addresses/{addressId}", "remove address")
	return err
}

func (h *httpAdapter) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	req := h.request(ctx).SetPathParam("contactId", strconv.FormatInt(contactID, 10))
	addresses, _, err := execute[[]models.Address](req, http.MethodGet, "/api/contacts/{contactId}/addresses", "list addresses")
	if err != nil {
		return nil, err
	}

	for i := range addresses {
		addresses[i].ContactID = contactID
	}
	return addresses, nil
}

func (h *httpAdapter) Ping(ctx context.Context) error {
	_, _, err := execute[string](h.request(ctx), http.MethodGet, "/api/ping", "ping")
	return err
}

// request starts a request carrying the session token, if one is stored.
func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpAdapter) addressRequest(ctx context.Context, contactID, addressID int64) *resty.Request {
	return h.request(ctx).SetPathParams(map[string]string{
		"contactId": strconv.FormatInt(contactID, 10),
		"addressId": strconv.FormatInt(addressID, 10),
	})
}

// dataEnvelope is the success body of every API response.
type dataEnvelope[T any] struct {
	Data   T              `json:"data"`
	Paging *models.Paging `json:"paging,omitempty"`
}

// execute sends req and decodes the data envelope of a successful response.
func execute[T any](req *resty.Request, method, path, operation string) (T, *models.Paging, error) {
	var envelope dataEnvelope[T]

	resp, err := req.SetResult(&envelope).Execute(method, path)
	if err != nil {
		return envelope.Data, nil, fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return envelope.Data, nil, fmt.Errorf("%s: %w", operation, err)
	}

	return envelope.Data, envelope.Paging, nil
}

// withContactID restores the owning contact id, which the API never returns.
func withContactID(address models.Address, contactID int64) models.Address {
	if address.ID != 0 {
		address.ContactID = contactID
	}
	return address
}
