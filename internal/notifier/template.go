package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"radya-hi5/internal/entities"
)

// KudosMail carries everything needed to render a kudos email.
type KudosMail struct {
	To            string
	RecipientName string
	SenderName    string
	Value         entities.ValueTag
	Message       string
	AppURL        string
	CreatedAt     time.Time
}

const kudosSubject = "🎉 You received a Hi5 from %s!"

var kudosTemplate = template.Must(template.New("kudos").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>You received a Hi5! 🎉</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8fafc;">
  <div style="background: white; border-radius: 16px; padding: 32px;">
    <div style="text-align: center;">
      <div style="font-size: 48px; margin-bottom: 16px;">🎉</div>
      <h1>You received a Hi5!</h1>
      {{if .RecipientName}}<p>Hi {{.RecipientName}}, keep up the amazing work!</p>{{else}}<p>Keep up the amazing work!</p>{{end}}
    </div>
    <div style="border-radius: 12px; padding: 24px; background: {{.Color}}; color: white;">
      <div style="font-weight: 600; font-size: 18px;">From: {{.Sender}}</div>
      <div>✨ {{.Value.Name}}</div>
      <p style="opacity: 0.9;">{{.Value.Description}}</p>
      <div>"{{.Message}}"</div>
    </div>
    <div style="text-align: center;">
      <a href="{{.AppURL}}" style="color: #ffffff; text-decoration: none;">View All Hi5s</a>
    </div>
    <div style="text-align: center; color: #64748b;">
      <p>Received on {{.Date}}</p>
      <p>Keep spreading positivity! 💜</p>
    </div>
  </div>
</body>
</html>
`))

type kudosView struct {
	KudosMail
	Sender string
	Color  template.CSS
	Date   string
}

// RenderKudos builds the email for one recipient. User text is HTML-escaped.
func RenderKudos(m KudosMail) (Message, error) {
	sender := m.SenderName
	if sender == "" {
		sender = "someone"
	}
	view := kudosView{
		KudosMail: m,
		Sender:    sender,
		Color:     template.CSS(safeColor(m.Value.Color)),
		Date:      createdOn(m.CreatedAt).Format("Monday, January 2, 2006"),
	}

	var buf bytes.Buffer
	if err := kudosTemplate.Execute(&buf, view); err != nil {
		return Message{}, fmt.Errorf("render kudos email: %w", err)
	}
	return Message{
		To:      m.To,
		Subject: fmt.Sprintf(kudosSubject, sender),
		HTML:    buf.String(),
	}, nil
}

func createdOn(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// safeColor accepts only #rgb and #rrggbb values from the catalog.
func safeColor(c string) string {
	const fallback = "#6366f1"
	if len(c) != 4 && len(c) != 7 || c[0] != '#' {
		return fallback
	}
	for _, r := range c[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return fallback
		}
	}
	return c
}
