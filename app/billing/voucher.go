package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// NextVoucher derives the next sequential voucher number for a
// (prefix, year) scope from the voucher numbers already issued.
// Numbers that do not match the scope are ignored; with no prior
// vouchers the sequence starts at 1.
//
// This is a derivation over a snapshot, not an allocation: two callers
// reading the same history compute the same number. The collection
// path allocates from the database counter instead and uses this only
// to seed it from history.
func NextVoucher(existing []string, prefix, year string) string {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-` + regexp.QuoteMeta(year) + `-(\d+)$`)

	max := 0
	for _, v := range existing {
		m := pattern.FindStringSubmatch(v)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return FormatVoucher(prefix, year, max+1)
}

// FormatVoucher renders PREFIX-YEAR-NNN with the sequence zero-padded
// to three digits. Sequences past 999 print at natural width.
func FormatVoucher(prefix, year string, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, year, seq)
}

// FallbackVoucher builds a timestamp-derived voucher id for when the
// counter or history read fails. The T marker keeps fallback ids out
// of the sequential namespace: they never collide with counter
// allocations and NextVoucher skips them.
func FallbackVoucher(prefix, year string, now time.Time) string {
	return fmt.Sprintf("%s-%s-T%04d", prefix, year, now.UnixMilli()%10000)
}
