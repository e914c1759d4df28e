package timesheet

import (
	"time"

	"github.com/ojtportal/ojt-backend-go/internal/domain/schedule"
	"github.com/ojtportal/ojt-backend-go/internal/domain/timesheet"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/timeparse"
)

// lateGrace is the strict lateness allowance: exactly one minute late is
// still on time, one millisecond past it is late.
const lateGrace = time.Minute

// annotateLateness flags a late arrival on the session. The official in
// comes from the out-event's frozen snapshot when one exists, else from the
// live window, mirroring the duration precedence.
func annotateLateness(sess *timesheet.Session, window schedule.Window, date time.Time, loc *time.Location) {
	officialIn := window.Start
	if sess.Out != nil && sess.Out.OfficialInSnapshot != nil {
		officialIn = timeparse.Parse(*sess.Out.OfficialInSnapshot, snapshotContext(sess.Shift)).At(date, loc)
	}

	punchIn := sess.In.Timestamp
	if !punchIn.After(officialIn.Add(lateGrace)) {
		return
	}

	sess.IsLate = true
	sess.LateMinutes = int(punchIn.Sub(officialIn) / time.Minute)
}
