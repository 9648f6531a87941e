package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"placement-engine/internal/domain/matching"

	"github.com/google/uuid"
)

type bundleCacheKeyInput struct {
	StudentID string          `json:"student_id"`
	Version   string          `json:"version"`
	Matcher   string          `json:"matcher"`
	Config    matching.Config `json:"config"`
}

// BundleCacheKey identifies a bundle by student, dataset version and the
// effective engine configuration, so changing any of them misses.
// A configuration that cannot be encoded yields an error and no key.
func BundleCacheKey(prefix string, studentID uuid.UUID, version time.Time, matcher string, cfg matching.Config) (string, error) {
	in := bundleCacheKeyInput{
		StudentID: studentID.String(),
		Version:   version.UTC().Format(time.RFC3339Nano),
		Matcher:   strings.ToLower(strings.TrimSpace(matcher)),
		Config:    cfg,
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode bundle cache key: %w", err)
	}
	sum := sha256.Sum256(b)

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "placement"
	}
	return prefix + ":bundle:" + studentID.String() + ":" + hex.EncodeToString(sum[:16]), nil
}
