package billing

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const numberPrefix = "INV"

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateInvoiceNumber produces a display-unique invoice number of the form
// INV-<millis base36>-<3 random base36 chars>, e.g. INV-LX3K9A2F-Q7B.
// The timestamp component makes collisions between saves practically
// impossible for a single-business deployment; the random suffix covers
// same-millisecond saves.
func GenerateInvoiceNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", numberPrefix, ts, randomBase36(3))
}

func randomBase36(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(out)
}
