package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackarena/backend/pkg/queue"
)

func TestRenderKnownTypes(t *testing.T) {
	subject, body, err := Render(queue.EmailPayload{
		EmailType:     queue.EmailTypeWelcome,
		RecipientName: "Ana",
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "Welcome")
	assert.Contains(t, body, "Ana")

	subject, body, err = Render(queue.EmailPayload{
		EmailType:     queue.EmailTypeTeamCreated,
		RecipientName: "Ana",
		TeamLabel:     "los-hackers",
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "team")
	assert.Contains(t, body, "los-hackers")
}

func TestRenderUnknownType(t *testing.T) {
	_, _, err := Render(queue.EmailPayload{EmailType: "launch_party"})
	assert.Error(t, err)
}

type captureSender struct {
	to, subject string
}

func (s *captureSender) Send(_ context.Context, to, subject, _ string) error {
	s.to = to
	s.subject = subject
	return nil
}

func TestProcessDelivers(t *testing.T) {
	sender := &captureSender{}
	p := NewEmailProcessor(nil, sender, nil)

	err := p.Process(context.Background(), &queue.Job{
		ID: "job-1",
		Payload: queue.EmailPayload{
			EmailType:      queue.EmailTypeEventRegister,
			RecipientEmail: "ana@test.dev",
			RecipientName:  "Ana",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@test.dev", sender.to)
	assert.NotEmpty(t, sender.subject)
}

func TestProcessRejectsMissingRecipient(t *testing.T) {
	p := NewEmailProcessor(nil, &captureSender{}, nil)
	err := p.Process(context.Background(), &queue.Job{ID: "job-2"})
	assert.Error(t, err)
}
