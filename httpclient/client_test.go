package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/murkdev/gameclient/logger"
)

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	c, err := New(cfg, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestClient_Do_SetsAllRequestHeaders(t *testing.T) {
	var gotAgent, gotContentType, gotAccepts, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		gotAccepts = r.Header.Get("Accepts")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, InitialCredential: "asdfasdf"})

	o := c.Do(context.Background(), NewGetRequest("user/profile"))
	if !o.Succeeded {
		t.Fatal("expected transport success")
	}
	if gotAgent != "X-GameClient-Agent" {
		t.Errorf("unexpected User-Agent: %q", gotAgent)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected Content-Type: %q", gotContentType)
	}
	if gotAccepts != "application/json" {
		t.Errorf("unexpected Accepts: %q", gotAccepts)
	}
	if gotAuth != "asdfasdf" {
		t.Errorf("Authorization should carry the placeholder, got %q", gotAuth)
	}
}

func TestClient_Do_AuthorizationSnapshotAtBuildTime(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, InitialCredential: "placeholder"})
	c.Credentials().Set("abcd-1234")

	c.Do(context.Background(), NewGetRequest("user/profile"))
	if gotAuth != "abcd-1234" {
		t.Errorf("Authorization should reflect the current credential, got %q", gotAuth)
	}
}

func TestClient_Do_CustomAuthHeader(t *testing.T) {
	var gotSession string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("X-Session")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, AuthHeader: "X-Session", InitialCredential: "tok"})
	c.Do(context.Background(), NewGetRequest("ping"))
	if gotSession != "tok" {
		t.Errorf("configured auth header not used, got %q", gotSession)
	}
}

func TestClient_Do_PostBody(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})
	c.Do(context.Background(), NewPostRequest("user/login", `{"email":"a@b.com","password":"pw"}`))

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotBody != `{"email":"a@b.com","password":"pw"}` {
		t.Errorf("body not delivered verbatim: %s", gotBody)
	}
}

func TestClient_Do_RouteJoining(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(200)
	}))
	defer srv.Close()

	// Trailing slash on the base and leading slash on the route collapse.
	c := newTestClient(t, Config{BaseURL: srv.URL + "/api/"})
	c.Do(context.Background(), NewGetRequest("/user/login"))
	if gotPath != "/api/user/login" {
		t.Errorf("unexpected path: %s", gotPath)
	}
}

func TestClient_Do_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, Config{BaseURL: url, Timeout: time.Second})
	o := c.Do(context.Background(), NewGetRequest("user/profile"))
	if o.Succeeded {
		t.Fatal("expected transport failure against closed server")
	}
	if Classify(o) != StatusTransportFailed {
		t.Errorf("expected transport_failed, got %v", Classify(o))
	}
}

func TestClient_Do_UnsupportedMethod(t *testing.T) {
	c := newTestClient(t, Config{BaseURL: "http://murk.dev/api/"})
	o := c.Do(context.Background(), Request{Method: Method(99), Route: "x"})
	if o.Succeeded {
		t.Fatal("out-of-range method must not dispatch")
	}
}

func TestClient_Send_CompletesExactlyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	var calls atomic.Int32
	done := make(chan Outcome, 1)
	c.Send(context.Background(), NewGetRequest("user/profile"), func(o Outcome) {
		calls.Add(1)
		done <- o
	})

	select {
	case o := <-done:
		if !o.Valid() {
			t.Errorf("expected valid outcome, got %+v", o)
		}
		if string(o.Body) != `{"ok":true}` {
			t.Errorf("unexpected body: %s", o.Body)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("completion never invoked")
	}

	// Give a stray duplicate invocation a moment to show up.
	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("completion invoked %d times, want exactly 1", n)
	}
}

func TestClient_Send_ReturnsImmediately(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(200)
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, Config{BaseURL: srv.URL})

	start := time.Now()
	c.Send(context.Background(), NewGetRequest("slow"), func(Outcome) {})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Send blocked for %v", elapsed)
	}
}

func TestClient_ResponseIsValid(t *testing.T) {
	c := newTestClient(t, Config{BaseURL: "http://murk.dev/api/"})

	if c.ResponseIsValid(Outcome{Succeeded: false}) {
		t.Error("transport failure must be invalid")
	}
	if c.ResponseIsValid(Outcome{Succeeded: true, StatusCode: 500}) {
		t.Error("500 must be invalid")
	}
	if !c.ResponseIsValid(Outcome{Succeeded: true, StatusCode: 204}) {
		t.Error("204 must be valid")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing base_url")
	}
}
