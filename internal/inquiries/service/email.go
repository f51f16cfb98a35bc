package service

import (
	"bytes"
	"html/template"

	"github.com/apexforge/studio-backend/internal/inquiries/domain"
)

const emailDateLayout = "January 02, 2006 at 15:04 UTC"

var inquiryEmail = template.Must(template.New("inquiry").Parse(`<html>
  <body style="font-family: 'Inter', sans-serif; background: #fff; color: #000; padding: 40px;">
    <h1 style="font-family: 'Playfair Display', serif; font-size: 32px; margin-bottom: 20px;">New Inquiry</h1>
    <div style="border-left: 2px solid #000; padding-left: 20px; margin: 30px 0;">
      <p><strong>Name:</strong> {{.Name}}</p>
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
    </div>
    <div style="margin-top: 30px; padding: 20px; background: #f5f5f5;">
      <p style="font-size: 14px; line-height: 1.6;"><strong>Message:</strong></p>
      <p style="font-size: 14px; line-height: 1.6;">{{.Message}}</p>
    </div>
  </body>
</html>
`))

func emailSubject(inq *domain.ContactInquiry) string {
	return "New Contact Inquiry from " + inq.Name
}

func renderEmail(inq *domain.ContactInquiry) (string, error) {
	var buf bytes.Buffer
	err := inquiryEmail.Execute(&buf, struct {
		Name, Email, Date, Message string
	}{
		Name:    inq.Name,
		Email:   inq.Email,
		Date:    inq.CreatedAt.UTC().Format(emailDateLayout),
		Message: inq.Message,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
