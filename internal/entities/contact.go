package entities

import "time"

// DefaultContactSubject is used when the visitor leaves the subject empty.
const DefaultContactSubject = "Messaggio dal sito"

// ContactForm is the payload the page submits from the contact form.
type ContactForm struct {
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text" json:"message"`
	Read    bool   `json:"read"`
	Replied bool   `json:"replied"`
}

// NewContactForm builds a fresh, unread submission.
func NewContactForm(name, email, subject, message string) ContactForm {
	if subject == "" {
		subject = DefaultContactSubject
	}
	return ContactForm{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
}

// ContactMessage is a stored submission as the content API returns it.
type ContactMessage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DocumentID  string `gorm:"uniqueIndex;size:36" json:"documentId"`
	ContactForm `gorm:"embedded"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
