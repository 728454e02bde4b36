package handlers

import (
	"context"

	"artshare/internal/models"
	"artshare/internal/service"
	"artshare/internal/token"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginErr     error
	parseClaims  *token.Claims
	parseErr     error

	lastRegister [3]string // username, email, password
	lastLogin    [2]string // email, password
	lastParsed   string
}

func (m *mockAuth) Register(_ context.Context, username, email, password string) (*models.User, error) {
	m.lastRegister = [3]string{username, email, password}
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (string, error) {
	m.lastLogin = [2]string{email, password}
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(accessToken string) (*token.Claims, error) {
	m.lastParsed = accessToken
	return m.parseClaims, m.parseErr
}

type mockAccounts struct {
	listResp  []models.User
	listErr   error
	getResp   *models.User
	getErr    error
	updResp   *models.User
	updErr    error
	deleteErr error

	lastGetID    string
	lastUpdate   models.User
	lastDeleteID string
}

func (m *mockAccounts) List(_ context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockAccounts) Get(_ context.Context, id string) (*models.User, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockAccounts) Update(_ context.Context, u models.User) (*models.User, error) {
	m.lastUpdate = u
	return m.updResp, m.updErr
}

func (m *mockAccounts) Delete(_ context.Context, id string) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockActivity struct {
	resp       []models.ActivityEvent
	err        error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(_ context.Context, typ, email, detail string) error {
	m.resp = append(m.resp, models.ActivityEvent{Type: typ, Email: email, Detail: detail})
	return m.err
}

func (m *mockActivity) List(_ context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
