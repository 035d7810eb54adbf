package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendStressAlertMissingCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewTelegramClient(srv.URL, "", "", srv.Client())
	if client.SendStressAlert("Ahmad", "7A") {
		t.Error("kredensial kosong harus return false")
	}
	if called {
		t.Error("tanpa kredensial tidak boleh ada request keluar")
	}
}

func TestSendStressAlertHitsBotEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewTelegramClient(srv.URL, "abc123", "777", srv.Client())
	if !client.SendStressAlert("Ahmad", "7A") {
		t.Fatal("respon 200 harus return true")
	}
	if gotPath != "/botabc123/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestSendStressAlertServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewTelegramClient(srv.URL, "abc123", "777", srv.Client())
	if client.SendStressAlert("Ahmad", "7A") {
		t.Error("respon non-2xx harus return false")
	}
}
