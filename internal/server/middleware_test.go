package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCode  int
		wantLevel logrus.Level
	}{
		{
			name:      "write without header",
			handler:   func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hello")) },
			wantCode:  http.StatusOK,
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "client error",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			wantCode:  http.StatusNotFound,
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "server error",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			wantCode:  http.StatusBadGateway,
			wantLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, hook := test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			rec := httptest.NewRecorder()
			requestLogger(logger)(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("no log entry")
			}
			if entry.Level != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry.Level, tt.wantLevel)
			}
			if entry.Data["status"] != tt.wantCode {
				t.Errorf("status field = %v, want %d", entry.Data["status"], tt.wantCode)
			}
			if entry.Data["path"] != "/x" {
				t.Errorf("path field = %v", entry.Data["path"])
			}
		})
	}
}

func TestPreviewCache(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		c := newPreviewCache(0)
		c.set("a", "<p>a</p>")
		if _, ok := c.get("a"); ok {
			t.Error("disabled cache returned a hit")
		}
		if c.len() != 0 {
			t.Errorf("len() = %d", c.len())
		}
	})

	t.Run("hit and miss", func(t *testing.T) {
		t.Parallel()

		c := newPreviewCache(time.Minute)
		c.set("a", "<p>a</p>")
		if got, ok := c.get("a"); !ok || got != "<p>a</p>" {
			t.Errorf("get(a) = %q, %v", got, ok)
		}
		if _, ok := c.get("b"); ok {
			t.Error("unexpected hit for b")
		}
	})

	t.Run("key is a sha256 digest", func(t *testing.T) {
		t.Parallel()

		if got := previewKey(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
			t.Errorf("previewKey(\"\") = %q", got)
		}
	})
}
