package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextVoucher(t *testing.T) {
	existing := []string{"ADM-2025-001", "ADM-2025-003"}
	assert.Equal(t, "ADM-2025-004", NextVoucher(existing, "ADM", "2025"))
}

func TestNextVoucherEmptyHistory(t *testing.T) {
	assert.Equal(t, "SES-2026-001", NextVoucher(nil, "SES", "2026"))
}

func TestNextVoucherIgnoresOtherScopes(t *testing.T) {
	existing := []string{
		"ADM-2024-009", // earlier year
		"SES-2025-050", // other category
		"ADM-2025-002",
		"ADM-2025-T1234", // timestamp fallback, outside the sequence
		"garbage",
	}
	assert.Equal(t, "ADM-2025-003", NextVoucher(existing, "ADM", "2025"))
}

func TestFormatVoucherPadding(t *testing.T) {
	assert.Equal(t, "ADM-2025-007", FormatVoucher("ADM", "2025", 7))
	assert.Equal(t, "ADM-2025-042", FormatVoucher("ADM", "2025", 42))
	assert.Equal(t, "ADM-2025-1000", FormatVoucher("ADM", "2025", 1000))
}

func TestFallbackVoucher(t *testing.T) {
	now := time.UnixMilli(1726000087654)
	assert.Equal(t, "ADM-2025-T7654", FallbackVoucher("ADM", "2025", now))
}
