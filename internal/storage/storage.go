package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FileStorage keeps opaque documents under object names.
type FileStorage interface {
	UploadFile(ctx context.Context, objectName string, data []byte, contentType string) error
}

// ReceiptObjectName returns a fresh object name for a schedule receipt of the given order.
func ReceiptObjectName(orderCode string) string {
	code := strings.Trim(strings.ReplaceAll(strings.TrimSpace(orderCode), "/", "-"), "-")
	if code == "" {
		code = "unknown"
	}
	return fmt.Sprintf("schedules/%s/%s.json", code, uuid.New().String())
}
