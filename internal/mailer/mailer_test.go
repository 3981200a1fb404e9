package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
)

// The issuance notification template is embedded at build time; make
// sure it parses and renders with the data the controller injects.
func TestCertificateIssuedTemplate(t *testing.T) {
	tmpl, err := template.ParseFS(FS, "templates/"+CERTIFICATE_ISSUED_TEMPLATE)
	if err != nil {
		t.Fatalf("failed to parse template: %v", err)
	}

	vars := struct {
		RecipientName       string
		TemplateDisplayName string
		IssuerName          string
		OrganizationName    string
		VerificationURL     string
		SignatureToken      string
	}{
		RecipientName:       "Sok Dara",
		TemplateDisplayName: "Certificate of Completion",
		IssuerName:          "Rev. Chan Vuthy",
		OrganizationName:    "General Secretariat",
		VerificationURL:     "http://localhost:8080/api/v1/certificates/verify?id=c1",
		SignatureToken:      "abc123",
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", vars); err != nil {
		t.Fatalf("failed to execute subject template: %v", err)
	}
	if !strings.Contains(subject.String(), vars.OrganizationName) {
		t.Errorf("subject %q does not mention the organization", subject.String())
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", vars); err != nil {
		t.Fatalf("failed to execute body template: %v", err)
	}
	for _, want := range []string{vars.RecipientName, vars.VerificationURL, vars.SignatureToken} {
		if !strings.Contains(body.String(), want) {
			t.Errorf("body does not contain %q", want)
		}
	}

	// Standard-tier certificates have no token and the classified block
	// must disappear.
	vars.SignatureToken = ""
	body.Reset()
	if err := tmpl.ExecuteTemplate(body, "body", vars); err != nil {
		t.Fatalf("failed to execute body template without token: %v", err)
	}
	if strings.Contains(body.String(), "classified") {
		t.Error("body mentions the signature token block for a standard certificate")
	}
}
