package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	assert.False(t, NewMailer(MailConfig{}).Enabled())
	assert.False(t, NewMailer(MailConfig{SMTPHost: "smtp.example.com"}).Enabled())
	assert.True(t, NewMailer(MailConfig{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  "587",
		SMTPEmail: "no-reply@example.com",
	}).Enabled())
}

func TestWelcomeMailBody(t *testing.T) {
	body := WelcomeMailBody(`<script>alert("x")</script>`, "https://recipesite.mn")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, `href="https://recipesite.mn"`)
}
