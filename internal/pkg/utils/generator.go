package utils

import (
	"fmt"
	"proacolhe-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

// GenerateID builds record identifiers such as "patient-<uuid>".
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateSnapshotObjectName(now time.Time) string {
	return fmt.Sprintf(constvars.SnapshotObjectFormat, now.UTC().Format("20060102T150405Z"))
}
