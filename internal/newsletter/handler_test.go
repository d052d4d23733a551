// AngelaMos | 2026
// handler_test.go

package newsletter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	emails []string
	err    error
}

func (f *fakeSource) ListEmails(ctx context.Context) ([]string, error) {
	return f.emails, f.err
}

type fakeSender struct {
	subject    string
	html       string
	text       string
	recipients []string
	err        error
	calls      int
}

func (f *fakeSender) Send(
	ctx context.Context,
	subject, html, text string,
	recipients []string,
) error {
	f.calls++
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	if f.err != nil {
		return f.err
	}
	f.subject = subject
	f.html = html
	f.text = text
	f.recipients = recipients
	return nil
}

func passThrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(sender Sender, source SubscriberSource) *chi.Mux {
	handler := NewHandler(sender, source, nil)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, passThrough, passThrough)
	})
	return router
}

func TestMarshalEmailsCSV_ExactBytes(t *testing.T) {
	body, err := marshalEmailsCSV([]string{"a@x.com", "b,c@y.com"})
	require.NoError(t, err)

	assert.Equal(t, "Email\na@x.com\n\"b,c@y.com\"\n", string(body))
}

func TestMarshalEmailsCSV_QuotesEmbeddedQuotes(t *testing.T) {
	body, err := marshalEmailsCSV([]string{`weird"quote@x.com`})
	require.NoError(t, err)

	assert.Equal(t, "Email\n\"weird\"\"quote@x.com\"\n", string(body))
}

func TestExport_EmptyListIs404(t *testing.T) {
	router := newTestRouter(&fakeSender{}, &fakeSource{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/api/newsletter/export", nil,
	))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport_CSVAttachment(t *testing.T) {
	router := newTestRouter(&fakeSender{}, &fakeSource{
		emails: []string{"a@x.com", "b@y.com"},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodGet, "/api/newsletter/export", nil,
	))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	wantName := "newsletter-emails-" +
		time.Now().UTC().Format("2006-01-02") + ".csv"
	assert.Contains(
		t,
		w.Header().Get("Content-Disposition"),
		wantName,
	)
	assert.Equal(t, "Email\na@x.com\nb@y.com\n", w.Body.String())
}

func TestSend_Success(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender, &fakeSource{
		emails: []string{"a@x.com", "b@y.com"},
	})

	body := `{
		"subject": "Harvest update",
		"html": "<p>New crop in.</p>",
		"text": "New crop in."
	}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/api/newsletter/send", strings.NewReader(body),
	))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2 subscribers")
	assert.Equal(t, "Harvest update", sender.subject)
	assert.Equal(t, "<p>New crop in.</p>", sender.html)
	assert.Equal(t, "New crop in.", sender.text)
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, sender.recipients)
}

func TestSend_TextOnlyIsAccepted(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender, &fakeSource{
		emails: []string{"a@x.com"},
	})

	body := `{"subject":"Harvest update","text":"plain words only"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/api/newsletter/send", strings.NewReader(body),
	))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sender.html)
	assert.Equal(t, "plain words only", sender.text)
}

func TestSend_NoSubscribersIs400(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender, &fakeSource{})

	body := `{"subject":"Harvest update","html":"<p>hi</p>"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/api/newsletter/send", strings.NewReader(body),
	))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no subscribers")
}

func TestSend_MissingFieldsAre400(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender, &fakeSource{
		emails: []string{"a@x.com"},
	})

	for _, body := range []string{
		`{"html":"<p>hi</p>"}`,
		`{"text":"plain"}`,
		`{"subject":"Harvest update"}`,
		`{}`,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(
			http.MethodPost, "/api/newsletter/send", strings.NewReader(body),
		))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	assert.Zero(t, sender.calls, "nothing is sent on validation failure")
}
