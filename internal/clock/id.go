package clock

import "fmt"

// minSeqWidth is the minimum zero-padding width for the NNN portion of an
// entry id; sequences beyond 999 grow the width naturally via fmt's %0*d.
const minSeqWidth = 3

// NextEntryID formats the next sequential entry id for date given the
// highest sequence number already seen for that date (0 if none). The
// caller is responsible for computing prevMax from both the index and any
// in-flight daily-file content under the per-date lock.
func NextEntryID(date string, prevMax int) string {
	seq := prevMax + 1
	return fmt.Sprintf("%s-%0*d", date, minSeqWidth, seq)
}
