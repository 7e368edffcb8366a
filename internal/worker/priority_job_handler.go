package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viettl/skipli/internal/queue"
)

func (wp *WorkerPool) HandleJob(_ context.Context, job queue.Job) error {
	switch job.Type {
	case queue.JobSendAccessCode:
		var p queue.SendAccessCodePayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", job.Type, err)
		}
		return wp.mail.SendAccessCode(p.Email, p.Code)
	case queue.JobSendInvitation:
		var p queue.SendInvitationPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", job.Type, err)
		}
		return wp.mail.SendInvitation(p.Email, p.Name, p.SetupLink)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}
