package ui

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aiaiai-hi/Report-App/internal/config"
	"github.com/aiaiai-hi/Report-App/internal/state"
	"github.com/aiaiai-hi/Report-App/internal/storage"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.GinMode = "test"
	cfg.Admin.User = "admin"
	cfg.Admin.Password = "secret"
	cfg.Data.Dir = t.TempDir()
	cfg.Data.MaxUploadBytes = 1 << 20

	store, err := storage.New(cfg.Data.Dir)
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	app, err := state.Load(store)
	if err != nil {
		t.Fatalf("state.Load: %v", err)
	}
	server, err := NewServer(cfg, app, state.NewSessions(time.Hour))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server
}

func TestDashboardWithoutRegistry(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Реестр еще не загружен") {
		t.Error("empty-registry hint missing")
	}
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/reports", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect for anonymous visitor", w.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	server := testServer(t)

	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin/reports" {
		t.Fatalf("login response: %d -> %q", w.Code, w.Header().Get("Location"))
	}

	var sessionCookieValue *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			sessionCookieValue = c
		}
	}
	if sessionCookieValue == nil {
		t.Fatal("no session cookie set")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/reports", nil)
	req.AddCookie(sessionCookieValue)
	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin page after login: %d", w.Code)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	server := testServer(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Header().Get("Location") != "/" {
		t.Fatalf("bad credentials must bounce to /, got %q", w.Header().Get("Location"))
	}
}

func TestAttributesGenerateDownload(t *testing.T) {
	server := testServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("number", "616")
	mw.WriteField("category", "Ручной")
	part, err := mw.CreateFormFile("file", "data.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("Наименование,Сумма\nРомашка,100\nЛютик,250\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/attributes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	page := w.Body.String()
	if !strings.Contains(page, "сформировано атрибутов 2") {
		t.Errorf("result summary missing: %s", page)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie on generation response")
	}

	req = httptest.NewRequest(http.MethodGet, "/attributes/download", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "616_атрибуты.xlsx") {
		t.Errorf("disposition = %q", disposition)
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook payload")
	}
}

func TestAttributesDownloadWithoutGeneration(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attributes/download", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect when nothing was generated", w.Code)
	}
}

func TestGeneratedWorkbooksFollowSessionLifetime(t *testing.T) {
	server := testServer(t)

	stale := server.sessions.Start()
	server.stashGenerated(stale.ID, generatedWorkbook{Filename: "старый.xlsx", Payload: []byte{1}})
	server.sessions.Drop(stale.ID)

	live := server.sessions.Start()
	server.stashGenerated(live.ID, generatedWorkbook{Filename: "новый.xlsx", Payload: []byte{2}})

	server.genMu.Lock()
	_, staleKept := server.generated[stale.ID]
	_, liveKept := server.generated[live.ID]
	server.genMu.Unlock()
	if staleKept {
		t.Error("workbook of a dropped session must be pruned")
	}
	if !liveKept {
		t.Fatal("workbook of the live session lost")
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: live.ID})
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d", w.Code)
	}

	server.genMu.Lock()
	remaining := len(server.generated)
	server.genMu.Unlock()
	if remaining != 0 {
		t.Errorf("workbooks left after logout: %d", remaining)
	}
}

func TestAttributesGenerateValidation(t *testing.T) {
	server := testServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("number", "")
	mw.WriteField("category", "Ручной")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/attributes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "укажите номер отчета") {
		t.Error("validation message missing")
	}
}
