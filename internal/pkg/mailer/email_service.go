package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCleanupSummary(toEmail string, removed, remaining, staleReferences, groups int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, email, password)

	return &emailService{
		dialer:      d,
		senderEmail: email,
		senderName:  senderName,
	}
}

func (s *emailService) SendCleanupSummary(toEmail string, removed, remaining, staleReferences, groups int) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "FAQ Duplicate Cleanup Summary")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Duplicate Cleanup Finished</h2>
			<p>The scheduled cleanup run has completed:</p>
			<ul>
				<li><b>%d</b> duplicate FAQs removed across <b>%d</b> groups</li>
				<li><b>%d</b> FAQs remaining in the knowledge base</li>
				<li><b>%d</b> stale index references cleaned</li>
			</ul>
			<p>Full details are available on the review dashboard.</p>
		</div>
	`, removed, groups, remaining, staleReferences)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cleanup summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Cleanup summary sent to %s\n", toEmail)
	return nil
}
