package utils

import (
	"fmt"
	"invest/config"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers an HTML mail through the configured SMTP relay
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: InvestSystem <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1a237e; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1a237e; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #0d47a1; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>INVESTSYSTEM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 InvestSystem. All rights reserved.<br>
				Investments involve risk. Please read all documents carefully.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendActivationEmail mails the account activation link to a new client
func SendActivationEmail(email, name, token string) error {
	link := fmt.Sprintf("%s/auth/activate?token=%s", config.AppConfig.SiteURL, token)
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Welcome to InvestSystem. Click the button below to activate your account:</p>
		<a class="btn" href="%s">Activate account</a>
		<p>If you did not register, you can ignore this email.</p>`, name, link)
	return SendEmail([]string{email}, "Activate your InvestSystem account", getEmailTemplate("Account activation", body))
}

// SendWithdrawalEmail notifies the client about a reviewed withdrawal
func SendWithdrawalEmail(email, name, code, status string, amount float64) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your withdrawal request <b>%s</b> of %.2f was marked <b>%s</b>.</p>
		<p>Check your dashboard for details.</p>`, name, code, amount, status)
	return SendEmail([]string{email}, "Withdrawal request "+status, getEmailTemplate("Withdrawal update", body))
}
