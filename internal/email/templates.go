package email

import (
	"bytes"
	"html/template"
)

var inquiryNotificationTmpl = template.Must(template.New("inquiry").Parse(`
<h2>New Contact Inquiry</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Project type:</strong> {{.ProjectType}}</p>
{{if .DesiredDate}}<p><strong>Desired date:</strong> {{.DesiredDate}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

// InquiryNotificationData carries the fields rendered into the owner
// notification mail.
type InquiryNotificationData struct {
	FullName    string
	Email       string
	ProjectType string
	DesiredDate string
	Message     string
}

func RenderInquiryNotification(data InquiryNotificationData) (string, error) {
	var buf bytes.Buffer
	if err := inquiryNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
