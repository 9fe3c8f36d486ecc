package utils

import (
	"fmt"
	"orca-service/internal/pkg/constvars"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var fileNameUnsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateFileName builds a download-safe name such as
// clinic-patients_acme-clinic_20240102_150405.xlsx.
func GenerateFileName(prefix, subject, fileExtension string, now time.Time) string {
	subject = strings.Trim(fileNameUnsafeChars.ReplaceAllString(strings.ToLower(subject), "-"), "-")
	if subject == "" {
		return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), fileExtension)
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, subject, now.Format("20060102_150405"), fileExtension)
}
