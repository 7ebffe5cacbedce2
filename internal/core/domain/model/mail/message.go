package mail

import (
	"errors"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"
)

// ErrMessageIsNotConstructed is returned when validating a zero-value Message.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is an immutable outbound mail: validated from/to addresses with
// display names, a subject, and text plus HTML bodies.
type Message struct { //nolint:recvcheck //using for validation
	from     kernel.Email
	fromName string
	to       kernel.Email
	toName   string
	subject  string
	textBody string
	htmlBody string

	guard guard.ConstructorGuard
}

// NewMessage creates a Message. Both addresses must be constructed Emails
// and the subject must be non-empty; bodies may be empty.
func NewMessage(from kernel.Email, fromName string, to kernel.Email, toName, subject, textBody, htmlBody string) (Message, error) {
	message := Message{
		fromName: fromName,
		toName:   toName,
		textBody: textBody,
		htmlBody: htmlBody,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		message.setFrom(from),
		message.setTo(to),
		message.setSubject(subject),
	); err != nil {
		return Message{}, err
	}

	return message, nil
}

// Validate ensures the Message was created through NewMessage.
func (m Message) Validate() error {
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

// From returns the sender address.
func (m Message) From() kernel.Email {
	return m.from
}

// FromName returns the sender display name; may be empty.
func (m Message) FromName() string {
	return m.fromName
}

// To returns the recipient address.
func (m Message) To() kernel.Email {
	return m.to
}

// ToName returns the recipient display name; may be empty.
func (m Message) ToName() string {
	return m.toName
}

// Subject returns the message subject.
func (m Message) Subject() string {
	return m.subject
}

// TextBody returns the plain-text body.
func (m Message) TextBody() string {
	return m.textBody
}

// HTMLBody returns the HTML body.
func (m Message) HTMLBody() string {
	return m.htmlBody
}

func (m *Message) setFrom(from kernel.Email) error {
	if err := from.Validate(); err != nil {
		return err
	}
	m.from = from
	return nil
}

func (m *Message) setTo(to kernel.Email) error {
	if err := to.Validate(); err != nil {
		return err
	}
	m.to = to
	return nil
}

func (m *Message) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	m.subject = subject
	return nil
}
