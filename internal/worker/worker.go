// Package worker processes queued notification emails.
package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hackarena/backend/pkg/queue"
)

// Sender delivers a rendered email. Local runs and tests use LogSender; a
// real provider client satisfies the same interface.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender logs emails instead of delivering them.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.Logger.Info("email delivered (log sender)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)))
	return nil
}

// EmailProcessor renders and delivers email jobs: dequeue, render the
// template for the job type, send, retry on error.
type EmailProcessor struct {
	queue  *queue.Queue
	sender Sender
	logger *zap.Logger
}

// NewEmailProcessor creates an email job processor.
func NewEmailProcessor(q *queue.Queue, sender Sender, logger *zap.Logger) *EmailProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailProcessor{queue: q, sender: sender, logger: logger}
}

// Render returns the subject and body for an email payload.
func Render(p queue.EmailPayload) (subject, body string, err error) {
	switch p.EmailType {
	case queue.EmailTypeWelcome:
		subject = "Welcome to HackArena"
		body = fmt.Sprintf("Hi %s,\n\nYour account is ready. Complete your event registration to secure your spot.\n\nThe HackArena team", p.RecipientName)
	case queue.EmailTypeEventRegister:
		subject = "You're registered for HackArena"
		body = fmt.Sprintf("Hi %s,\n\nYour event registration is complete. See you at the venue!\n\nThe HackArena team", p.RecipientName)
	case queue.EmailTypeTeamCreated:
		subject = "Your team is registered"
		body = fmt.Sprintf("Hi %s,\n\nYour team %q is registered. Share the team page with your teammates so they can join.\n\nThe HackArena team", p.RecipientName, p.TeamLabel)
	default:
		return "", "", fmt.Errorf("unknown email type: %s", p.EmailType)
	}
	return subject, body, nil
}

// Process executes one email job.
func (p *EmailProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Payload.RecipientEmail == "" {
		return fmt.Errorf("job %s has no recipient", job.ID)
	}
	subject, body, err := Render(job.Payload)
	if err != nil {
		return err
	}
	if err := p.sender.Send(ctx, job.Payload.RecipientEmail, subject, body); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	p.logger.Info("email sent",
		zap.String("job_id", job.ID),
		zap.String("email_type", string(job.Payload.EmailType)),
		zap.String("to", job.Payload.RecipientEmail))
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *EmailProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("email worker stopping")
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				p.logger.Info("email worker stopping")
				return
			}
			p.logger.Warn("dequeue error", zap.Error(err))
			time.Sleep(queue.RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			time.Sleep(queue.RetryBackoff)
			continue
		}
	}
}
