package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("greet-1")
	require.True(t, ok)
	assert.Equal(t, CategoryGreeting, tpl.Category)

	_, ok = TemplateByID("nope")
	assert.False(t, ok)
}

func TestSubstitute(t *testing.T) {
	tpl, ok := TemplateByID("greet-1")
	require.True(t, ok)

	got := Substitute(tpl.Content, SubstituteParams{
		Name:     "Arjun",
		Company:  "Tech India",
		YourName: "Rajesh",
	})
	assert.Equal(t, "Namaste Arjun, this is Rajesh from Tech India. We received your inquiry regarding our services. How can I help you today?", got)
}

func TestSubstituteMissingValueRendersZero(t *testing.T) {
	got := Substitute("Pay ₹{value} now", SubstituteParams{})
	assert.Equal(t, "Pay ₹0 now", got)

	got = Substitute("Pay ₹{value} now", SubstituteParams{Value: "45,000"})
	assert.Equal(t, "Pay ₹45,000 now", got)
}

func TestWhatsAppURL(t *testing.T) {
	// ten digits get the Indian country code
	assert.Equal(t,
		"https://wa.me/919876543210?text=Hello+there",
		WhatsAppURL("98765 43210", "Hello there"))

	// already prefixed numbers pass through
	assert.Equal(t,
		"https://wa.me/919876543210?text=Hi",
		WhatsAppURL("+91 98765 43210", "Hi"))
}

func TestFormatIndianPhone(t *testing.T) {
	assert.Equal(t, "+91 98765 43210", FormatIndianPhone("9876543210"))
	assert.Equal(t, "+91 98765 43210", FormatIndianPhone("919876543210"))
	assert.Equal(t, "+91 98765 43210", FormatIndianPhone("+91 98765-43210"))
	assert.Equal(t, "12345", FormatIndianPhone("12345"))
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("a@b.com", "Quote ready", "", "Hi there,\nsee attached")
	// spaces must be %20, not '+', or mail clients show pluses
	assert.Equal(t, "mailto:a@b.com?subject=Quote%20ready&body=Hi%20there%2C%0Asee%20attached", got)
}

func TestMailtoURLWithCC(t *testing.T) {
	got := MailtoURL("a@b.com", "S", "c@d.com", "")
	assert.Equal(t, "mailto:a@b.com?subject=S&cc=c%40d.com&body=", got)
}
