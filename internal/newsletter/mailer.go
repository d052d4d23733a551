// AngelaMos | 2026
// mailer.go

package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/agrovia-exports/go-backend/internal/config"
)

// Precondition errors, checked before any connection is opened.
var (
	ErrNoRecipients = errors.New("no recipients")
	ErrNoSubject    = errors.New("subject is required")
	ErrNoContent    = errors.New("html or text content is required")
)

// Sender delivers one message to a set of recipients. At least one of
// html and text must be non-empty.
type Sender interface {
	Send(ctx context.Context, subject, html, text string, recipients []string) error
}

// Mailer sends newsletter messages over SMTP. Recipients go on BCC so
// subscribers never see each other's addresses; To carries the sender.
type Mailer struct {
	client *mail.Client
	from   string
}

func NewMailer(cfg config.SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.From,
	}, nil
}

func (m *Mailer) Send(
	ctx context.Context,
	subject, html, text string,
	recipients []string,
) error {
	msg, err := m.compose(subject, html, text, recipients)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send newsletter: %w", err)
	}

	return nil
}

// compose validates the message inputs and builds the outgoing message.
// It never touches the network. An html body takes the main part with
// text as the plain-text alternative; text alone goes out as plain.
func (m *Mailer) compose(
	subject, html, text string,
	recipients []string,
) (*mail.Msg, error) {
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}
	if subject == "" {
		return nil, ErrNoSubject
	}
	if html == "" && text == "" {
		return nil, ErrNoContent
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(m.from); err != nil {
		return nil, fmt.Errorf("set to address: %w", err)
	}
	if err := msg.Bcc(recipients...); err != nil {
		return nil, fmt.Errorf("set bcc recipients: %w", err)
	}

	msg.Subject(subject)

	switch {
	case html != "" && text != "":
		msg.SetBodyString(mail.TypeTextHTML, html)
		msg.AddAlternativeString(mail.TypeTextPlain, text)
	case html != "":
		msg.SetBodyString(mail.TypeTextHTML, html)
	default:
		msg.SetBodyString(mail.TypeTextPlain, text)
	}

	return msg, nil
}
