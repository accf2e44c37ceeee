package invoicepdf

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
)

// Artifact permissions for local delivery.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Destination says where an exported artifact should go. The set is
// closed: SaveTarget and EmailTarget.
type Destination interface {
	destination()
}

// SaveTarget delivers to a directory on the local filesystem. An empty Dir
// means the current directory.
type SaveTarget struct {
	Dir string
}

func (SaveTarget) destination() {}

// EmailTarget delivers as an attachment to Recipient. Subject and Body are
// optional; defaults derive from the artifact name.
type EmailTarget struct {
	Recipient string
	Subject   string
	Body      string
}

func (EmailTarget) destination() {}

// Deliverer hands a finished artifact to its destination. Implementations
// must not retain artifact after returning.
type Deliverer interface {
	Deliver(ctx context.Context, artifact []byte, fileName string, dest Destination) error
}

// MailMessage is one outbound email with a single attachment.
type MailMessage struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// MailSender is the outbound email collaborator. The library composes
// messages; transport (SMTP, an API, a queue) is the caller's concern.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}

// StandardDeliverer routes destinations to their transport: save targets
// to the local filesystem, email targets to the configured sender.
type StandardDeliverer struct {
	mail MailSender
}

var _ Deliverer = (*StandardDeliverer)(nil)

// NewStandardDeliverer returns a deliverer that writes save targets to
// disk and sends email targets through sender. A nil sender disables email
// delivery; email targets then fail with ErrNoMailSender.
func NewStandardDeliverer(sender MailSender) *StandardDeliverer {
	return &StandardDeliverer{mail: sender}
}

// Deliver writes or sends the artifact according to the destination type.
func (d *StandardDeliverer) Deliver(ctx context.Context, artifact []byte, fileName string, dest Destination) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch t := dest.(type) {
	case SaveTarget:
		return d.save(artifact, fileName, t)
	case EmailTarget:
		return d.send(ctx, artifact, fileName, t)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedDestination, dest)
	}
}

func (d *StandardDeliverer) save(artifact []byte, fileName string, t SaveTarget) error {
	dir := t.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, artifact, filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (d *StandardDeliverer) send(ctx context.Context, artifact []byte, fileName string, t EmailTarget) error {
	if d.mail == nil {
		return ErrNoMailSender
	}
	if _, err := mail.ParseAddress(t.Recipient); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, t.Recipient)
	}

	subject := t.Subject
	if subject == "" {
		subject = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	body := t.Body
	if body == "" {
		body = "Please find your invoice attached."
	}

	msg := MailMessage{
		To:             t.Recipient,
		Subject:        subject,
		Body:           body,
		AttachmentName: fileName,
		Attachment:     artifact,
	}
	if err := d.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending to %s: %w", t.Recipient, err)
	}
	return nil
}
