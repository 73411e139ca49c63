package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/config"
)

func newTestService(env string) (*Service, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{
		Env:         env,
		FrontendURL: "https://app.biteback.test",
		SMTP:        config.SMTPConfig{From: "no-reply@biteback.test"},
	}
	return NewService(cfg, logger), buf
}

func TestSendOTP_LogsCodeOutsideProduction(t *testing.T) {
	s, buf := newTestService("development")

	require.NoError(t, s.SendOTP(context.Background(), "+201234567890", "123456"))
	assert.Contains(t, buf.String(), "123456")
}

func TestSendOTP_HidesCodeInProduction(t *testing.T) {
	s, buf := newTestService("production")

	require.NoError(t, s.SendOTP(context.Background(), "+201234567890", "123456"))
	assert.NotContains(t, buf.String(), "123456")
	assert.Contains(t, buf.String(), "****7890")
}

func TestSendPasswordReset_WithoutSMTP(t *testing.T) {
	s, buf := newTestService("development")

	require.NoError(t, s.SendPasswordReset(context.Background(), "ana@example.com", "tok-1"))
	assert.Contains(t, buf.String(), "reset-password?token=tok-1")
}

func TestResetMessage(t *testing.T) {
	s, _ := newTestService("development")

	var out bytes.Buffer
	_, err := s.resetMessage("ana@example.com", s.resetLink("tok 1")).WriteTo(&out)
	require.NoError(t, err)

	body := out.String()
	assert.Contains(t, body, "To: ana@example.com")
	assert.Contains(t, body, "Subject: Reset your Bite Back password")
	assert.Contains(t, body, "no-reply@biteback.test")
}
