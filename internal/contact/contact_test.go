package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mrlokans/portfolio/internal/cms"
	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<form id="contact-form">
  <input type="text" name="name" value="">
  <input type="email" name="email" value="">
  <input type="text" name="subject" value="">
  <textarea name="message"></textarea>
  <button type="submit" class="submit-btn">Invia Messaggio</button>
</form>
</body></html>`

type fixture struct {
	doc  *dom.Document
	loop *eventloop.Manual
	form *Form
}

func newFixture(t *testing.T, client Submitter) *fixture {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	loop := eventloop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	notifier := widgets.NewNotifier(doc, loop, 0, 0)

	form := Init(context.Background(), doc, loop, client, notifier)
	require.NotNil(t, form)
	return &fixture{doc: doc, loop: loop, form: form}
}

func (f *fixture) fill(name, email, subject, message string) {
	form := f.doc.ByID("contact-form")
	dom.SetValue(dom.Field(form, "name"), name)
	dom.SetValue(dom.Field(form, "email"), email)
	dom.SetValue(dom.Field(form, "subject"), subject)
	dom.SetValue(dom.Field(form, "message"), message)
}

func (f *fixture) field(name string) string {
	return dom.FieldValue(f.doc.ByID("contact-form"), name)
}

func TestSubmit_Success(t *testing.T) {
	var received struct {
		Data map[string]any `json:"data"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, cms.PathContactMessages, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	f := newFixture(t, cms.NewClient(server.URL, 5*time.Second))
	f.fill("Mario", "mario@example.com", "", "Vorrei un preventivo")

	assert.False(t, f.doc.Submit(f.doc.ByID("contact-form")), "native submission is prevented")

	button := f.doc.Query(".submit-btn")
	assert.Equal(t, TextSending, dom.TextContent(button))
	assert.True(t, dom.Disabled(button))
	assert.True(t, f.form.Pending())

	f.loop.Flush()

	assert.Equal(t, "Mario", received.Data["name"])
	assert.Equal(t, entities.DefaultContactSubject, received.Data["subject"])
	assert.Equal(t, false, received.Data["read"])
	assert.Equal(t, false, received.Data["replied"])

	note := f.doc.Query(".notification")
	require.NotNil(t, note)
	assert.True(t, dom.HasClass(note, "notification-success"))
	assert.Contains(t, dom.TextContent(note), TextSuccess)

	assert.Empty(t, f.field("name"))
	assert.Empty(t, f.field("email"))
	assert.Empty(t, f.field("message"))

	assert.Equal(t, "Invia Messaggio", dom.TextContent(button))
	assert.False(t, dom.Disabled(button))
	assert.False(t, f.form.Pending())
}

func TestSubmit_FailureKeepsForm(t *testing.T) {
	tests := []struct {
		name   string
		client func(t *testing.T) Submitter
	}{
		{
			name: "non-2xx",
			client: func(t *testing.T) Submitter {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadRequest)
				}))
				t.Cleanup(server.Close)
				return cms.NewClient(server.URL, 5*time.Second)
			},
		},
		{
			name: "network failure",
			client: func(t *testing.T) Submitter {
				server := httptest.NewServer(http.NotFoundHandler())
				url := server.URL
				server.Close()
				return cms.NewClient(url, 5*time.Second)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.client(t))
			f.fill("Mario", "mario@example.com", "Droni", "Ciao")

			f.doc.Submit(f.doc.ByID("contact-form"))
			f.loop.Flush()

			note := f.doc.Query(".notification")
			require.NotNil(t, note)
			assert.True(t, dom.HasClass(note, "notification-error"))
			assert.Contains(t, dom.TextContent(note), TextFailure)

			assert.Equal(t, "Mario", f.field("name"))
			assert.Equal(t, "Droni", f.field("subject"))
			assert.Equal(t, "Ciao", f.field("message"))

			button := f.doc.Query(".submit-btn")
			assert.Equal(t, "Invia Messaggio", dom.TextContent(button))
			assert.False(t, dom.Disabled(button))
		})
	}
}

type countingSubmitter struct {
	calls int
	last  entities.ContactForm
}

func (s *countingSubmitter) SubmitContact(_ context.Context, form entities.ContactForm) error {
	s.calls++
	s.last = form
	return nil
}

func TestSubmit_IgnoredWhilePending(t *testing.T) {
	client := &countingSubmitter{}
	f := newFixture(t, client)
	form := f.doc.ByID("contact-form")

	f.doc.Submit(form)
	f.doc.Submit(form)
	f.loop.Flush()

	assert.Equal(t, 1, client.calls)
}

func TestSubmit_SelectSubject(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
<form id="contact-form">
  <input type="text" name="name" value="">
  <input type="email" name="email" value="">
  <select name="subject">
    <option value="">Scegli un argomento</option>
    <option value="Matrimonio">Riprese per matrimoni</option>
    <option>Ispezioni</option>
  </select>
  <textarea name="message"></textarea>
  <button type="submit" class="submit-btn">Invia Messaggio</button>
</form>
</body></html>`)
	require.NoError(t, err)
	loop := eventloop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	client := &countingSubmitter{}
	require.NotNil(t, Init(context.Background(), doc, loop, client, widgets.NewNotifier(doc, loop, 0, 0)))

	form := doc.ByID("contact-form")
	dom.SetValue(dom.Field(form, "name"), "Giulia")
	dom.SetValue(dom.Field(form, "email"), "giulia@example.com")
	dom.SetValue(dom.Field(form, "subject"), "Matrimonio")
	dom.SetValue(dom.Field(form, "message"), "Sabato prossimo")

	doc.Submit(form)
	loop.Flush()

	require.Equal(t, 1, client.calls)
	assert.Equal(t, "Matrimonio", client.last.Subject)
	assert.Equal(t, "", dom.FieldValue(form, "subject"), "reset selects the initial option")
}

func TestInit_WithoutForm(t *testing.T) {
	doc, err := dom.ParseString(`<html><body></body></html>`)
	require.NoError(t, err)
	loop := eventloop.NewManual(time.Now())

	assert.Nil(t, Init(context.Background(), doc, loop, &countingSubmitter{}, widgets.NewNotifier(doc, loop, 0, 0)))
}
