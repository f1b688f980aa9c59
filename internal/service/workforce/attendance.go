package workforce

import (
	"fmt"
	"math"
	"time"

	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/pkg/holiday"
	"github.com/synapse-hq/synapse-backend-go/internal/pkg/rng"
)

// Classification thresholds over the seeded draw in [0,1). Tunable constants,
// not contracts: any split that keeps the four-state outcome space is valid.
const (
	presentThreshold = 0.94
	onLeaveThreshold = 0.98
	halfDayThreshold = 0.995

	halfDayHours = 4.0
)

// daySeed spreads an entity seed across calendar days so adjacent days sample
// uncorrelated draws.
func daySeed(seed int64, d time.Time) int64 {
	return seed + int64(d.Day())*int64(d.Month()+1) + int64(d.Year())
}

// punchTimes derives a punch-in in 08:00–09:29 and a work duration of 8–9
// hours from seed, all seeded per field. Punch-out is punch-in plus the
// duration, so out minus in always matches the reported total hours.
func punchTimes(seed int64) (punchIn, punchOut string, totalHours float64) {
	startHour := 8 + rng.IntN(seed, 2)
	startMinute := rng.IntN(seed+1, 30)

	duration := 8 + rng.Float(seed+2)
	endMinutes := startMinute + int((duration-math.Floor(duration))*60)
	endHour := startHour + int(duration) + endMinutes/60
	endMinute := endMinutes % 60

	punchIn = fmt.Sprintf("%02d:%02d", startHour, startMinute)
	punchOut = fmt.Sprintf("%02d:%02d", endHour, endMinute)
	totalHours = math.Round(duration*100) / 100
	return punchIn, punchOut, totalHours
}

// GenerateAttendance produces one record per business day in [start,end]
// inclusive, newest first. Weekends emit nothing; holiday dates override the
// sampled status. Fixed seed and range reproduce identical output.
func GenerateAttendance(seed int64, start, end time.Time) []domain.AttendanceRecord {
	var history []domain.AttendanceRecord

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for i := int64(0); !day.After(last); i, day = i+1, day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		if _, ok := holiday.Name(day); ok {
			history = append(history, domain.AttendanceRecord{
				Date:   day,
				Status: domain.AttendanceStatusHoliday,
			})
			continue
		}

		rec := domain.AttendanceRecord{Date: day}
		switch r := rng.Float(daySeed(seed, day)); {
		case r < presentThreshold:
			rec.Status = domain.AttendanceStatusPresent
			in, out, hours := punchTimes(seed + i*3)
			rec.PunchIn, rec.PunchOut, rec.TotalHours = &in, &out, &hours
		case r < onLeaveThreshold:
			rec.Status = domain.AttendanceStatusOnLeave
		case r < halfDayThreshold:
			rec.Status = domain.AttendanceStatusHalfDay
			in, out, _ := punchTimes(seed + i*3)
			hours := halfDayHours
			rec.PunchIn, rec.PunchOut, rec.TotalHours = &in, &out, &hours
		default:
			rec.Status = domain.AttendanceStatusAbsent
		}
		history = append(history, rec)
	}

	// Newest first.
	for l, r := 0, len(history)-1; l < r; l, r = l+1, r-1 {
		history[l], history[r] = history[r], history[l]
	}
	return history
}
