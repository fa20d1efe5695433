package schedule_test

import (
	"testing"
	"time"

	"github.com/okian/departed/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

// referenceSecret mirrors the constant embedded in the frontend bundle.
const referenceSecret = "DailyDeparted2024SecretSalt!@#$"

func TestDaySeed(t *testing.T) {
	Convey("Given calendar dates", t, func() {
		Convey("Then the seed is the date read as YYYYMMDD", func() {
			So(schedule.DaySeed(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)), ShouldEqual, uint32(20240305))
			So(schedule.DaySeed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), ShouldEqual, uint32(20240101))
			So(schedule.DaySeed(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)), ShouldEqual, uint32(20241231))
		})

		Convey("Then the time of day does not matter", func() {
			morning := time.Date(2024, 3, 5, 6, 12, 0, 0, time.UTC)
			night := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)
			So(schedule.DaySeed(morning), ShouldEqual, schedule.DaySeed(night))
		})
	})
}

func TestDayNumber(t *testing.T) {
	Convey("Given a fixed epoch", t, func() {
		epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		Convey("Then the epoch itself is day 1", func() {
			So(schedule.DayNumber(epoch, epoch), ShouldEqual, 1)
		})

		Convey("Then the following day is day 2", func() {
			So(schedule.DayNumber(epoch.AddDate(0, 0, 1), epoch), ShouldEqual, 2)
		})

		Convey("Then a year in, numbering stays consecutive", func() {
			So(schedule.DayNumber(epoch.AddDate(0, 0, 364), epoch), ShouldEqual, 365)
		})

		Convey("Then intra-day times round down to the same day", func() {
			late := time.Date(2024, 1, 2, 23, 30, 0, 0, time.UTC)
			So(schedule.DayNumber(late, epoch), ShouldEqual, 2)
		})
	})
}

func TestFilenameStem(t *testing.T) {
	Convey("Given the reference secret", t, func() {
		Convey("Then known dates map to known stems", func() {
			// Shared vectors with the frontend implementation.
			So(schedule.FilenameStem(referenceSecret, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), ShouldEqual, "b32fac2cfbb0c827")
			So(schedule.FilenameStem(referenceSecret, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)), ShouldEqual, "4bc0b513f266998b")
			So(schedule.FilenameStem(referenceSecret, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)), ShouldEqual, "042aa12f11d89bd2")
		})

		Convey("Then the stem is 16 lowercase hex characters", func() {
			stem := schedule.FilenameStem(referenceSecret, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC))
			So(stem, ShouldHaveLength, 16)
			for _, c := range stem {
				So(c >= '0' && c <= '9' || c >= 'a' && c <= 'f', ShouldBeTrue)
			}
		})

		Convey("Then changing the secret changes the stem", func() {
			date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
			So(schedule.FilenameStem("another-secret", date), ShouldEqual, "b1316cfe80f7c367")
			So(schedule.FilenameStem("another-secret", date), ShouldNotEqual, schedule.FilenameStem(referenceSecret, date))
		})
	})
}

func TestDay(t *testing.T) {
	Convey("Given an arbitrary timestamp", t, func() {
		ts := time.Date(2024, 3, 5, 18, 45, 12, 999, time.FixedZone("X", 3*3600))

		Convey("Then Day truncates to midnight UTC", func() {
			got := schedule.Day(ts)
			So(got.Hour(), ShouldEqual, 0)
			So(got.Minute(), ShouldEqual, 0)
			So(got.Location(), ShouldEqual, time.UTC)
		})
	})
}
