// Package smtp implements the mail transport port over SMTP with PLAIN
// authentication. Messages go out as multipart/alternative with both the
// text and the HTML rendering of the report.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"salesreport/internal/core/domain/model/mail"
	"salesreport/internal/core/ports"
	"salesreport/internal/pkg/errs"
)

const multipartBoundary = "salesreport-alt"

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (c Config) validate() error {
	return errors.Join(
		requireSetting("host", c.Host),
		requireSetting("port", c.Port),
		requireSetting("username", c.Username),
		requireSetting("password", c.Password),
	)
}

func requireSetting(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("smtp " + name)
	}
	return nil
}

// Transport implements ports.MailTransport over net/smtp.
type Transport struct {
	config Config
	send   sendFunc
}

// sendFunc matches smtp.SendMail; replaced in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

var _ ports.MailTransport = (*Transport)(nil)

// NewTransport creates an SMTP transport from the given settings.
// All settings are required.
func NewTransport(config Config) (*Transport, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Transport{
		config: config,
		send:   smtp.SendMail,
	}, nil
}

// SendMessage delivers the message over SMTP and reports the outcome.
// A delivery refused by the server maps to a non-accepted status together
// with the underlying error; callers decide whether that aborts their run.
func (t *Transport) SendMessage(ctx context.Context, message mail.Message) (mail.Status, error) {
	if err := message.Validate(); err != nil {
		return mail.StatusUnknown, err
	}
	if err := ctx.Err(); err != nil {
		return mail.StatusTransportFault, err
	}

	addr := fmt.Sprintf("%s:%s", t.config.Host, t.config.Port)
	auth := smtp.PlainAuth("", t.config.Username, t.config.Password, t.config.Host)

	raw := encodeMessage(message)
	if err := t.send(addr, auth, message.From().String(), []string{message.To().String()}, raw); err != nil {
		return classifySendFailure(err), fmt.Errorf("smtp send failed: %w", err)
	}

	return mail.StatusAccepted, nil
}

// classifySendFailure separates failures to reach the server from answers
// the server gave. A network-level error means the message never arrived
// anywhere; everything else is the server refusing it.
func classifySendFailure(err error) mail.Status {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return mail.StatusTransportFault
	}
	return mail.StatusRejected
}

// encodeMessage renders the message as multipart/alternative, text part
// first so HTML-capable clients prefer the richer rendering.
func encodeMessage(message mail.Message) []byte {
	var b strings.Builder

	writeHeader(&b, "From", formatAddress(message.FromName(), message.From().String()))
	writeHeader(&b, "To", formatAddress(message.ToName(), message.To().String()))
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", message.Subject()))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", `multipart/alternative; boundary="`+multipartBoundary+`"`)
	b.WriteString("\r\n")

	writePart(&b, "text/plain", message.TextBody())
	writePart(&b, "text/html", message.HTMLBody())
	b.WriteString("--" + multipartBoundary + "--\r\n")

	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}

func writePart(b *strings.Builder, contentType, body string) {
	b.WriteString("--" + multipartBoundary + "\r\n")
	b.WriteString("Content-Type: " + contentType + "; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
}

func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), address)
}
