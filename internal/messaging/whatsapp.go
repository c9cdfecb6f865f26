// Package messaging builds the outbound WhatsApp and email links the
// client opens in the user's own apps. Nothing is sent server-side.
package messaging

import (
	"fmt"
	"net/url"
	"strings"
)

type TemplateCategory string

const (
	CategoryGreeting TemplateCategory = "Greeting"
	CategoryFollowUp TemplateCategory = "Follow-up"
	CategoryQuote    TemplateCategory = "Quote"
	CategoryThankYou TemplateCategory = "Thank You"
	CategoryFestival TemplateCategory = "Festival"
	CategoryPayment  TemplateCategory = "Payment"
)

// Template is a canned WhatsApp message with {name}, {company},
// {your_name} and {value} placeholders.
type Template struct {
	ID       string           `json:"id"`
	Category TemplateCategory `json:"category"`
	Title    string           `json:"title"`
	Content  string           `json:"content"`
}

// Templates is the built-in template catalogue.
var Templates = []Template{
	{
		ID:       "greet-1",
		Category: CategoryGreeting,
		Title:    "New Lead Introduction",
		Content:  "Namaste {name}, this is {your_name} from {company}. We received your inquiry regarding our services. How can I help you today?",
	},
	{
		ID:       "fup-1",
		Category: CategoryFollowUp,
		Title:    "Post-Call Follow-up",
		Content:  "Hi {name}, it was great speaking with you earlier! As discussed, I've noted down your requirements for {company}. Looking forward to our next steps.",
	},
	{
		ID:       "fup-2",
		Category: CategoryFollowUp,
		Title:    "Gentle Reminder",
		Content:  "Hi {name}, just checking if you had a chance to look at the proposal we sent for {company}? Let me know if you have any questions.",
	},
	{
		ID:       "quote-1",
		Category: CategoryQuote,
		Title:    "Quote Ready",
		Content:  "Hi {name}, your customized quote for ₹{value} is ready! Please let me know a good time to walk you through the details.",
	},
	{
		ID:       "festival-diwali",
		Category: CategoryFestival,
		Title:    "Diwali Wishes",
		Content:  "Wishing you and your family at {company} a very Happy and Prosperous Diwali! 🪔 May this year bring abundance and joy to your business.",
	},
	{
		ID:       "festival-holi",
		Category: CategoryFestival,
		Title:    "Holi Wishes",
		Content:  "Happy Holi to you and the team at {company}! 🎨 May your year be as vibrant and colorful as this festival.",
	},
	{
		ID:       "payment-1",
		Category: CategoryPayment,
		Title:    "Payment Request",
		Content:  "Hi {name}, requesting payment of ₹{value} for the recent services provided to {company}. Please let us know once processed. Thank you!",
	},
	{
		ID:       "hours-1",
		Category: CategoryGreeting,
		Title:    "Business Hours",
		Content:  "Hello! We are currently away. Our team is available 10 AM - 7 PM IST, Monday to Friday. We will get back to you shortly!",
	},
}

// TemplateByID looks up a built-in template.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// SubstituteParams carries the values filled into a template.
type SubstituteParams struct {
	Name     string
	Company  string
	YourName string
	Value    string
}

// Substitute fills every placeholder in content. A missing value is
// rendered as "0" to match how quotes read without an amount.
func Substitute(content string, p SubstituteParams) string {
	value := p.Value
	if value == "" {
		value = "0"
	}
	r := strings.NewReplacer(
		"{name}", p.Name,
		"{company}", p.Company,
		"{your_name}", p.YourName,
		"{value}", value,
	)
	return r.Replace(content)
}

// WhatsAppURL builds the wa.me link for a phone and message. Ten-digit
// numbers are treated as Indian and prefixed with 91.
func WhatsAppURL(phone, message string) string {
	digits := digitsOnly(phone)
	if len(digits) == 10 {
		digits = "91" + digits
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

// FormatIndianPhone normalizes a number to "+91 XXXXX XXXXX" display
// form; anything that is not a recognizable Indian number is returned
// unchanged.
func FormatIndianPhone(phone string) string {
	digits := digitsOnly(phone)
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("+91 %s %s", digits[:5], digits[5:])
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return fmt.Sprintf("+91 %s %s", digits[2:7], digits[7:])
	default:
		return phone
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
