// Package contact submits the page's contact form to the content API.
package contact

import (
	"context"
	"log"

	"github.com/mrlokans/portfolio/internal/dom"
	"github.com/mrlokans/portfolio/internal/entities"
	"github.com/mrlokans/portfolio/internal/eventloop"
	"github.com/mrlokans/portfolio/internal/widgets"
	"golang.org/x/net/html"
)

const (
	TextSending = "Invio in corso..."
	TextSuccess = "Messaggio inviato con successo!"
	TextFailure = "Errore nell'invio. Riprova più tardi."
)

// Submitter delivers a contact form. *cms.Client implements it.
type Submitter interface {
	SubmitContact(ctx context.Context, form entities.ContactForm) error
}

// Form is the #contact-form controller.
type Form struct {
	ctx      context.Context
	doc      *dom.Document
	sched    eventloop.Scheduler
	client   Submitter
	notifier *widgets.Notifier

	form     *html.Node
	defaults map[*html.Node]string
	pending  bool
}

// Init binds the contact form. It returns nil when the page has none.
func Init(ctx context.Context, doc *dom.Document, sched eventloop.Scheduler, client Submitter, notifier *widgets.Notifier) *Form {
	form := doc.ByID("contact-form")
	if form == nil {
		return nil
	}

	f := &Form{
		ctx:      ctx,
		doc:      doc,
		sched:    sched,
		client:   client,
		notifier: notifier,
		form:     form,
		defaults: make(map[*html.Node]string),
	}
	for _, field := range dom.QueryAll(form, "input[name], textarea[name], select[name]") {
		f.defaults[field] = dom.Value(field)
	}
	doc.On(form, dom.EventSubmit, f.onSubmit)
	return f
}

// Pending reports whether a submission awaits the API.
func (f *Form) Pending() bool {
	return f.pending
}

func (f *Form) onSubmit(e *dom.Event) {
	e.PreventDefault()
	if f.pending {
		return
	}

	submission := entities.NewContactForm(
		dom.FieldValue(f.form, "name"),
		dom.FieldValue(f.form, "email"),
		dom.FieldValue(f.form, "subject"),
		dom.FieldValue(f.form, "message"),
	)

	button := dom.Query(f.form, ".submit-btn")
	var originalText string
	if button != nil {
		originalText = dom.TextContent(button)
		dom.SetText(button, TextSending)
		dom.SetDisabled(button, true)
	}
	f.pending = true

	f.sched.Go(func() {
		err := f.client.SubmitContact(f.ctx, submission)
		f.sched.Do(func() {
			f.pending = false
			if err != nil {
				log.Printf("Contact form: submission failed: %v", err)
				f.notifier.Show(TextFailure, widgets.NotifyError)
			} else {
				f.notifier.Show(TextSuccess, widgets.NotifySuccess)
				f.reset()
			}
			if button != nil {
				dom.SetText(button, originalText)
				dom.SetDisabled(button, false)
			}
		})
	})
}

// reset restores every control to the value it had when the page loaded.
func (f *Form) reset() {
	for field, value := range f.defaults {
		dom.SetValue(field, value)
	}
}
