// Package mail sends the studio's transactional email over plain SMTP.
// With no SMTP host configured the mailer logs and drops, which keeps
// local development from needing a mail server.
package mail

import (
	"fmt"
	"net/smtp"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/logging"
)

type Mailer struct {
	host        string
	port        string
	from        string
	password    string
	frontendURL string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		from:        cfg.SMTPFrom,
		password:    cfg.SMTPPass,
		frontendURL: cfg.FrontendURL,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		logging.L().Info().Str("to", to).Str("subject", subject).Msg("smtp not configured, dropping email")
		return nil
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// SendInvite emails a new client their account setup link.
func (m *Mailer) SendInvite(to, name, inviteToken string) error {
	link := fmt.Sprintf("%s/setup-account?token=%s", m.frontendURL, inviteToken)
	body := fmt.Sprintf(
		"Hi %s,\n\nAn account has been created for you at MAD Photos. "+
			"Set your password here:\n\n%s\n\nSee you soon!",
		name, link)
	return m.send(to, "Your MAD Photos account", body)
}

// SendGalleryLink emails the share link once a project is delivered.
func (m *Mailer) SendGalleryLink(to, name, projectTitle, shareToken string) error {
	link := fmt.Sprintf("%s/gallery/%s", m.frontendURL, shareToken)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour photos from \"%s\" are ready! View your gallery here:\n\n%s\n\nEnjoy!",
		name, projectTitle, link)
	return m.send(to, fmt.Sprintf("Your photos from %s are ready", projectTitle), body)
}

// SendInvoice emails the payment link for a freshly sent invoice.
func (m *Mailer) SendInvoice(to, name, invoiceToken string, totalCents int64) error {
	link := fmt.Sprintf("%s/invoices/%s", m.frontendURL, invoiceToken)
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have a new invoice from MAD Photos for $%.2f. "+
			"View and pay it here:\n\n%s\n\nThank you!",
		name, float64(totalCents)/100, link)
	return m.send(to, "New invoice from MAD Photos", body)
}
