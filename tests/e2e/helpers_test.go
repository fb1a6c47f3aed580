//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/werdnakof/ask-parents-25-questions/internal/adapter/postgres/testhelper"
	"github.com/werdnakof/ask-parents-25-questions/internal/app"
	"github.com/werdnakof/ask-parents-25-questions/internal/catalog"
	"github.com/werdnakof/ask-parents-25-questions/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-32-chars-long!!",
			JWTIssuer:       "test-issuer",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
			PasswordCost:    4,
		},
		Questions: config.QuestionsConfig{
			FreeMaxQuestions:    25,
			PremiumMaxQuestions: 100,
			FreeCatalogCount:    25,
			CustomTextMaxLength: 500,
			AnswerMaxLength:     10000,
			DefaultLocale:       "en",
		},
		Storage: config.StorageConfig{MaxPhotoBytes: 5 << 20},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,Accept-Language",
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 600, AuthBurst: 100},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	reg, err := catalog.LoadEmbedded(25, "en")
	require.NoError(t, err)

	srv := app.NewServer(testConfig(), logger, pool, reg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})

	return &testServer{
		URL: ts.URL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Pool: pool,
	}
}

// request sends a JSON request and returns the response. body may be nil.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// requestJSON sends a request, asserts the status and decodes the body into out.
func (ts *testServer) requestJSON(t *testing.T, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	resp := ts.request(t, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
}

type authBody struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID              string `json:"id"`
		Email           string `json:"email"`
		DisplayName     string `json:"displayName"`
		PreferredLocale string `json:"preferredLocale"`
		IsPremium       bool   `json:"isPremium"`
	} `json:"user"`
}

// register signs up a fresh user and returns the auth response.
func (ts *testServer) register(t *testing.T) authBody {
	t.Helper()

	var out authBody
	ts.requestJSON(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":       "e2e-" + uuid.NewString()[:8] + "@example.com",
		"password":    "securepassword123",
		"displayName": "E2E User",
	}, http.StatusCreated, &out)
	return out
}

type profileBody struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Relationship  string `json:"relationship"`
	QuestionCount int    `json:"questionCount"`
	AnsweredCount int    `json:"answeredCount"`
}

func (ts *testServer) createProfile(t *testing.T, token, name, rel string) profileBody {
	t.Helper()

	var out profileBody
	ts.requestJSON(t, http.MethodPost, "/v1/profiles", token, map[string]string{
		"name":         name,
		"relationship": rel,
	}, http.StatusCreated, &out)
	return out
}

// makePremium flips the user's tier directly in the database.
func (ts *testServer) makePremium(t *testing.T, userID string) {
	t.Helper()

	_, err := ts.Pool.Exec(context.Background(), `UPDATE users SET is_premium = true WHERE id = $1`, userID)
	require.NoError(t, err)
}
