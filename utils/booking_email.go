package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
)

func smtpConfig() (host, port, user, pass, fromName string, ok bool) {
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	user = os.Getenv("SMTP_USERNAME")
	pass = os.Getenv("SMTP_PASSWORD")
	fromName = EnvOrDefault("SMTP_FROM_NAME", "Hotel Reservations")
	ok = host != "" && port != "" && user != "" && pass != ""
	return
}

func safeLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func sendMultipart(to, subject, plainBody, htmlBody string) error {
	host, port, user, pass, fromName, ok := smtpConfig()

	// DEV fallback: mock send via log when SMTP is not configured.
	if !ok {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", to, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, user)
	auth := smtp.PlainAuth("", user, pass, host)
	addr := fmt.Sprintf("%s:%s", host, port)
	boundary := "----=_HOTEL_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", safeLine(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, user, []string{to}, []byte(sb.String())); err != nil {
		log.Printf("failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}

// SendBookingConfirmationEmail sends the guest-facing confirmation with the
// booking reference(s), stay dates and total. expiresAt, when set, is the
// hold expiry communicated to the guest.
func SendBookingConfirmationEmail(
	to, guestName string,
	references []string,
	roomName, checkIn, checkOut string,
	nights int,
	total float64,
	expiresAt *time.Time,
) error {
	guestName = safeLine(guestName)
	roomName = safeLine(roomName)
	refs := strings.Join(references, ", ")

	holdNote := ""
	if expiresAt != nil {
		holdNote = fmt.Sprintf("Your booking is held until %s. Please confirm before then.\n",
			expiresAt.Format("2006-01-02 15:04 MST"))
	}

	subject := fmt.Sprintf("Booking received - %s", references[0])

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for your booking. Here are the details:\n\n"+
			"Reference(s): %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Total: %.2f\n\n"+
			"%s"+
			"If you have any questions, feel free to contact us.\n",
		guestName, refs, roomName, checkIn, checkOut, nights, total, holdNote,
	)

	htmlHold := ""
	if expiresAt != nil {
		htmlHold = fmt.Sprintf("<p><strong>Held until:</strong> %s</p>",
			htmlEscape(expiresAt.Format("2006-01-02 15:04 MST")))
	}

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking received</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:140px; display:inline-block; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking received</h2>
    <p>Dear %s,</p>
    <p>Thank you for your booking. Below are the details:</p>
    <p><span class="label">Reference(s):</span> %s</p>
    <p><span class="label">Room:</span> %s</p>
    <p><span class="label">Check-In:</span> %s</p>
    <p><span class="label">Check-Out:</span> %s</p>
    <p><span class="label">Nights:</span> %d</p>
    <p><span class="label">Total:</span> %.2f</p>
    %s
    <p>If you have any questions, feel free to contact us.</p>
  </div>
</div>
</body>
</html>`,
		htmlEscape(guestName), htmlEscape(refs), htmlEscape(roomName),
		htmlEscape(checkIn), htmlEscape(checkOut), nights, total, htmlHold,
	)

	return sendMultipart(to, subject, plainBody, htmlBody)
}

// SendStaffEmail delivers a plain notification (contact form, conference
// inquiry) to the hotel inbox.
func SendStaffEmail(to, subject, body string) error {
	htmlBody := fmt.Sprintf("<pre>%s</pre>", htmlEscape(body))
	return sendMultipart(to, subject, body, htmlBody)
}
