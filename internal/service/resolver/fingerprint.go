package resolver

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/zeebo/blake3"

	"rosterbid/internal/domain"
)

// Fingerprint returns a content hash of a snapshot, independent of the
// iteration order of its collections. Resolution is a pure function of the
// snapshot, so an identical fingerprint implies an identical result; that
// makes the hash a safe memoization key with no explicit invalidation — any
// write changes the snapshot content and with it the key.
func Fingerprint(s *domain.Snapshot) [32]byte {
	var buf bytes.Buffer

	writeI64(&buf, s.Scope.CompanyID)
	writeI64(&buf, s.Scope.SiteID)
	writeBool(&buf, s.AutoAssign)

	drivers := append([]domain.Driver(nil), s.Drivers...)
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].ID < drivers[j].ID })
	writeI64(&buf, int64(len(drivers)))
	for _, d := range drivers {
		writeI64(&buf, d.ID)
		writeStr(&buf, d.EmployeeID)
		writeI64(&buf, int64(d.SeniorityNumber))
		writeBool(&buf, d.VCStatus)
		writeBool(&buf, d.AirportCertified)
		writeBool(&buf, d.Eligible)
	}

	jobs := append([]domain.Job(nil), s.Jobs...)
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	writeI64(&buf, int64(len(jobs)))
	for _, j := range jobs {
		writeI64(&buf, j.ID)
		writeBool(&buf, j.Airport)
	}

	// Submissions keep the store's (submittedAt, id) order: the id component
	// pins the last-seen-wins tie-break into the fingerprint.
	subs := append([]domain.PreferenceSubmission(nil), s.Submissions...)
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
		}
		return subs[i].ID < subs[j].ID
	})
	writeI64(&buf, int64(len(subs)))
	for _, sub := range subs {
		writeI64(&buf, sub.ID)
		writeI64(&buf, sub.DriverID)
		writeI64(&buf, sub.SubmittedAt.UnixNano())
		writeI64(&buf, int64(len(sub.JobIDs)))
		for _, jobID := range sub.JobIDs {
			writeI64(&buf, jobID)
		}
	}

	manual := append([]domain.ManualAssignment(nil), s.Manual...)
	sort.Slice(manual, func(i, j int) bool { return manual[i].JobID < manual[j].JobID })
	writeI64(&buf, int64(len(manual)))
	for _, m := range manual {
		writeI64(&buf, m.JobID)
		writeI64(&buf, m.DriverID)
	}

	return blake3.Sum256(buf.Bytes())
}

func writeI64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeStr(buf *bytes.Buffer, s string) {
	writeI64(buf, int64(len(s)))
	buf.WriteString(s)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
		return
	}
	buf.WriteByte(0)
}
