package http

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

	"github.com/stretchr/testify/require"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
	"github.com/orbislinks/faq-chat/internal/infra/config"
	"github.com/orbislinks/faq-chat/internal/infra/faqstore"
)

func TestRouter_ChatSuccess(t *testing.T) {
	svc := &stubFAQ{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "Are hazardous items prohibited?", req.Prompt)
			return faq.Response{Answer: "the prohibited list"}, nil
		},
	}

	rec := performRequest(http.MethodPost, "/api/chat", `{"prompt":"Are hazardous items prohibited?"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"answer":"the prohibited list"}`, rec.Body.String())
}

func TestRouter_ChatPromptRequired(t *testing.T) {
	svc := &stubFAQ{}
	server := newRouterUnderTest(t, svc)

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":123}`} {
		rec := performRequest(http.MethodPost, "/api/chat", body, server)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		require.JSONEq(t, `{"error":"Prompt is required"}`, rec.Body.String(), "body %s", body)
	}
	require.Zero(t, svc.answerCalls, "service must not run for invalid prompts")
}

func TestRouter_ChatWhitespacePromptPassesValidation(t *testing.T) {
	svc := &stubFAQ{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "   ", req.Prompt)
			return faq.Response{Answer: faq.DefaultFallbackAnswer}, nil
		},
	}

	rec := performRequest(http.MethodPost, "/api/chat", `{"prompt":"   "}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ChatHistoryAccepted(t *testing.T) {
	svc := &stubFAQ{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Len(t, req.History, 2)
			return faq.Response{Answer: "ok"}, nil
		},
	}

	body := `{"prompt":"insurance","history":[{"role":"assistant","content":"hi"},{"role":"user","content":"earlier"}]}`
	rec := performRequest(http.MethodPost, "/api/chat", body, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ChatServiceFailure(t *testing.T) {
	svc := &stubFAQ{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			return faq.Response{}, context.DeadlineExceeded
		},
	}

	rec := performRequest(http.MethodPost, "/api/chat", `{"prompt":"anything"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "faq_failed", body["error"]["code"])
}

func TestRouter_Trending(t *testing.T) {
	svc := &stubFAQ{
		trendingFn: func(ctx context.Context) ([]faq.TrendingPrompt, error) {
			return []faq.TrendingPrompt{{Prompt: "insurance", Count: 2}}, nil
		},
	}

	rec := performRequest(http.MethodGet, "/api/chat/trending", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"recommendations":[{"prompt":"insurance","count":2}]}`, rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	rec := performRequest(http.MethodGet, "/healthz", "", newRouterUnderTest(t, &stubFAQ{}))
	require.Equal(t, http.StatusOK, rec.Code)
}

// End-to-end through the real service and catalog: the wire contract the
// widget depends on.
func TestRouter_ChatWithRealService(t *testing.T) {
	catalog, err := faq.NewCatalog(faq.DefaultEntries())
	require.NoError(t, err)
	svc := faq.NewService(faq.Config{}, catalog, faqstore.NewMemoryStore(), newTestLogger())
	server := newRouterUnderTest(t, svc)

	rec := performRequest(http.MethodPost, "/api/chat", `{"prompt":"What items are prohibited from being sent?"}`, server)
	require.Equal(t, http.StatusOK, rec.Code)
	var got faq.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, faq.DefaultEntries()[2].Answer, got.Answer)

	rec = performRequest(http.MethodPost, "/api/chat", `{"prompt":"asdf qwer zxcv"}`, server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, faq.DefaultFallbackAnswer, got.Answer)
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc faq.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubFAQ struct {
	answerFn    func(ctx context.Context, req faq.Request) (faq.Response, error)
	trendingFn  func(ctx context.Context) ([]faq.TrendingPrompt, error)
	answerCalls int
}

func (s *stubFAQ) Answer(ctx context.Context, req faq.Request) (faq.Response, error) {
	s.answerCalls++
	if s.answerFn != nil {
		return s.answerFn(ctx, req)
	}
	return faq.Response{}, nil
}

func (s *stubFAQ) Trending(ctx context.Context) ([]faq.TrendingPrompt, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx)
	}
	return nil, nil
}
