package storage_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"staffing/internal/storage"
)

var _ storage.FileStorage = (*storage.S3Storage)(nil)

func TestReceiptObjectName(t *testing.T) {
	pattern := regexp.MustCompile(`^schedules/ORD-001/[0-9a-f-]{36}\.json$`)

	first := storage.ReceiptObjectName("ORD-001")
	second := storage.ReceiptObjectName(" ORD-001 ")
	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)

	assert.Regexp(t, `^schedules/a-b/`, storage.ReceiptObjectName("a/b"))
	assert.Regexp(t, `^schedules/unknown/`, storage.ReceiptObjectName(""))
}
