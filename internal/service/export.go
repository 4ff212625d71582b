package service

import (
	"context"
	"encoding/json"
)

// ExportPublisher sends export jobs to the message queue.
type ExportPublisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// ExportRequest is the message consumed by the export worker.
type ExportRequest struct {
	PlaylistID  string `json:"playlistId"`
	TargetEmail string `json:"targetEmail"`
}

// ExportService queues playlist exports for asynchronous delivery by email.
// Export is an owner-only operation.
type ExportService struct {
	access    *AccessService
	publisher ExportPublisher
	queueName string
}

// NewExportService creates an export service publishing to queueName.
func NewExportService(access *AccessService, publisher ExportPublisher, queueName string) *ExportService {
	return &ExportService{access: access, publisher: publisher, queueName: queueName}
}

// ExportPlaylist verifies ownership and enqueues the export job.
func (s *ExportService) ExportPlaylist(ctx context.Context, playlistID, userID, targetEmail string) error {
	if _, err := s.access.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	body, err := json.Marshal(ExportRequest{PlaylistID: playlistID, TargetEmail: targetEmail})
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, s.queueName, body)
}
