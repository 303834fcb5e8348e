package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/hemant-mistri/portfolio/internal/config"
	"github.com/hemant-mistri/portfolio/internal/logger"
)

// Envelope is one outbound message.
type Envelope struct {
	MessageID   string
	FromName    string
	FromAddress string
	ReplyTo     string
	To          string
	Subject     string
	Text        string
	HTML        string
}

// Receipt acknowledges a message accepted by the provider. go-mail does not
// expose the final DATA reply, so only the Message-ID is reported.
type Receipt struct {
	MessageID string
}

// Sender is the outbound mail capability used by the contact relay.
type Sender interface {
	Send(ctx context.Context, env Envelope) (Receipt, error)
	Verify(ctx context.Context) error
}

// SendError carries the diagnostics the SMTP provider returned, if any.
type SendError struct {
	Code     string
	Response string
	Err      error
}

func (e *SendError) Error() string {
	return e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// SMTPSender opens a fresh connection per call, so concurrent requests never
// share a go-mail client.
type SMTPSender struct {
	cfg  config.MailConfig
	opts []mail.Option
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	s := &SMTPSender{cfg: cfg, opts: opts}
	if _, err := s.newClient(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	client, err := mail.NewClient(s.cfg.Host, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return client, nil
}

// Verify dials and authenticates once, then hangs up.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return wrapSendError(err)
	}
	if err := client.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing smtp verification connection")
	}
	return nil
}

// Send delivers env in a single attempt.
func (s *SMTPSender) Send(ctx context.Context, env Envelope) (Receipt, error) {
	msg, err := buildMessage(env)
	if err != nil {
		return Receipt{}, err
	}

	client, err := s.newClient()
	if err != nil {
		return Receipt{}, err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return Receipt{}, wrapSendError(err)
	}

	logger.Debug().Str("message_id", env.MessageID).Str("host", s.cfg.Host).Msg("smtp message accepted")
	return Receipt{MessageID: "<" + env.MessageID + ">"}, nil
}

func buildMessage(env Envelope) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(env.FromName, env.FromAddress); err != nil {
		return nil, &SendError{Code: "EENVELOPE", Err: fmt.Errorf("invalid sender address: %w", err)}
	}
	if err := m.To(env.To); err != nil {
		return nil, &SendError{Code: "EENVELOPE", Err: fmt.Errorf("invalid recipient address: %w", err)}
	}
	if env.ReplyTo != "" {
		if err := m.ReplyTo(env.ReplyTo); err != nil {
			return nil, &SendError{Code: "EENVELOPE", Err: fmt.Errorf("invalid reply-to address: %w", err)}
		}
	}
	m.SetMessageIDWithValue(env.MessageID)
	m.SetDate()
	m.Subject(env.Subject)
	m.SetBodyString(mail.TypeTextPlain, env.Text)
	if env.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, env.HTML)
	}
	return m, nil
}

// smtpReplyError is satisfied by *mail.SendError, which go-mail returns for
// MAIL FROM, RCPT and DATA failures and which does not unwrap.
type smtpReplyError interface {
	error
	ErrorCode() int
	EnhancedStatusCode() string
}

var _ smtpReplyError = (*mail.SendError)(nil)

// wrapSendError lifts the SMTP reply code out of the transport error.
func wrapSendError(err error) error {
	se := &SendError{Err: err}

	var replyErr smtpReplyError
	if errors.As(err, &replyErr) {
		if code := replyErr.ErrorCode(); code != 0 {
			se.Code = strconv.Itoa(code)
		}
		se.Response = strings.TrimSpace(replyErr.EnhancedStatusCode() + " " + replyErr.Error())
		return se
	}

	// Dial and auth failures surface the raw reply.
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		se.Code = strconv.Itoa(tpErr.Code)
		se.Response = tpErr.Msg
	}
	return se
}
