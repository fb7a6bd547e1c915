package output

import "time"

// nowFunc stamps report filenames (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the clock used for report filenames and returns a restore func.
func SetNowFunc(f func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = f
	return func() { nowFunc = prev }
}
