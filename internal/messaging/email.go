package messaging

import (
	"net/url"
	"strings"
)

// MailtoURL builds a mailto link the client hands to the user's mail
// app. Spaces are percent-encoded since mail clients do not decode '+'.
func MailtoURL(to, subject, cc, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(to)
	b.WriteString("?subject=")
	b.WriteString(escape(subject))
	if cc != "" {
		b.WriteString("&cc=")
		b.WriteString(escape(cc))
	}
	b.WriteString("&body=")
	b.WriteString(escape(body))
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
