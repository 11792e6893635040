package notify

import (
	"fmt"
	"strings"
	"text/template"

	"loadboard/internal/core/domain/model/notification"
)

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

var templateSources = map[notification.Kind][2]string{
	notification.RegistrationReceived: {
		"Registration received",
		"Hello {{.name}}, we received your registration. An administrator will review your account shortly.",
	},
	notification.AccountApproved: {
		"Your account was approved",
		"Hello {{.name}}, your account has been approved. You can now sign in and use the load board.",
	},
	notification.AccountRejected: {
		"Your account was not approved",
		"Hello {{.name}}, your account application was not approved.",
	},
	notification.AccountRestored: {
		"Your account was restored",
		`Hello {{.name}}, your account has been restored.` +
			`{{if eq .status "approved"}} You can sign in again.{{else}} It is waiting for review again.{{end}}`,
	},
	notification.ListingApproved: {
		"Listing approved: {{.route}}",
		"Your listing {{.route}} ({{.listing_id}}) has been approved and is now visible to carriers.",
	},
	notification.ListingRejected: {
		"Listing rejected: {{.route}}",
		"Your listing {{.route}} ({{.listing_id}}) was rejected.{{with .reason}} Reason: {{.}}{{end}}",
	},
}

// Renderer turns notifications into subject and body text.
type Renderer struct {
	templates map[notification.Kind]messageTemplate
}

// NewRenderer parses the template of every notification kind.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[notification.Kind]messageTemplate, len(templateSources))}
	for kind, src := range templateSources {
		subject, err := template.New(string(kind) + ".subject").Option("missingkey=zero").Parse(src[0])
		if err != nil {
			return nil, fmt.Errorf("parse %s subject: %w", kind, err)
		}
		body, err := template.New(string(kind) + ".body").Option("missingkey=zero").Parse(src[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s body: %w", kind, err)
		}
		r.templates[kind] = messageTemplate{subject: subject, body: body}
	}
	return r, nil
}

// Render returns the subject and body for n.
func (r *Renderer) Render(n notification.Notification) (string, string, error) {
	tmpl, ok := r.templates[n.Kind]
	if !ok {
		return "", "", fmt.Errorf("no template for notification kind %q", n.Kind)
	}

	subject, err := execute(tmpl.subject, n.Context)
	if err != nil {
		return "", "", err
	}
	body, err := execute(tmpl.body, n.Context)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func execute(tmpl *template.Template, data map[string]string) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
