package user_test

import (
	"RecipeSite/domain"
	"RecipeSite/pkg/jwt"
	"RecipeSite/pkg/memstore"
	"RecipeSite/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	enabled bool
	sent    chan sentMail
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) SendMail(to, subject, body string) error {
	m.sent <- sentMail{to: to, subject: subject, body: body}
	return nil
}

func newService(t *testing.T, mailer *fakeMailer) (user.UserService, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return user.NewUserService(memstore.New(), jwtService, mailer, "http://localhost:3000"), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service, jwtService := newService(t, &fakeMailer{})

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Username: "Болд",
		Email:    "  Bold@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotZero(t, registered.UserID)
	assert.Equal(t, "bold@example.com", registered.Email)
	assert.Equal(t, "Болд", registered.Username)

	userID, role, err := jwtService.GetUserIDByToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, userID)
	assert.Equal(t, domain.RoleUser, role)

	loggedIn, err := service.Login(ctx, domain.LoginRequest{Email: "BOLD@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, &fakeMailer{})

	req := domain.RegisterRequest{Username: "a", Email: "dup@example.com", Password: "secret1"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	req.Email = "DUP@example.com"
	_, err = service.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, &fakeMailer{})

	_, err := service.Register(ctx, domain.RegisterRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterSendsWelcomeMail(t *testing.T) {
	mailer := &fakeMailer{enabled: true, sent: make(chan sentMail, 1)}
	service, _ := newService(t, mailer)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "<b>Сараа</b>",
		Email:    "saraa@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	select {
	case mail := <-mailer.sent:
		assert.Equal(t, "saraa@example.com", mail.to)
		assert.Contains(t, mail.body, "&lt;b&gt;Сараа&lt;/b&gt;")
		assert.NotContains(t, mail.body, "<b>Сараа</b>")
	case <-time.After(2 * time.Second):
		t.Fatal("welcome mail was not sent")
	}
}

func TestRegisterWithoutMailer(t *testing.T) {
	mailer := &fakeMailer{enabled: false}
	service, _ := newService(t, mailer)

	_, err := service.Register(context.Background(), domain.RegisterRequest{Username: "a", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
}
