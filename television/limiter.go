// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"time"
)

// the rate at which the timers are decremented and at which frames are drawn.
const FramesPerSecond = 60

type limiter struct {
	// whether to wait for fps limited each frame
	limit bool

	// the requested number of frames per second
	requested float32

	// actual calculation
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	// channels
	sync    chan bool
	reqRate chan time.Duration
	quit    chan bool
}

func (lmtr *limiter) init() {
	lmtr.limit = true
	lmtr.actualRefTime = time.Now()
	lmtr.sync = make(chan bool)
	lmtr.reqRate = make(chan time.Duration)
	lmtr.quit = make(chan bool)

	go func() {
		// new ticker with an arbitrary value. it'll get changed soon enough
		tck := time.NewTicker(time.Second)
		defer tck.Stop()

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:

				// listen for reqRate signals too while signalling the sync
				// channel. if we don't do this here, it's possible for the
				// sync to deadlock
				case d := <-lmtr.reqRate:
					tck.Reset(d)

				case <-lmtr.quit:
					return
				}

			case d := <-lmtr.reqRate:
				tck.Reset(d)

			case <-lmtr.quit:
				return
			}
		}
	}()
}

// set target rate
func (lmtr *limiter) setRate(fps float32) {
	if fps <= 0 {
		return
	}

	lmtr.requested = fps
	lmtr.reqRate <- time.Duration(float64(time.Second) / float64(fps))

	lmtr.actualCtTarget = int(lmtr.requested) / 2
	if lmtr.actualCtTarget < 1 {
		lmtr.actualCtTarget = 1
	}
	lmtr.actualCt = 0
	lmtr.actualRefTime = time.Now()
}

// check fps rate and pause if necessary. called once per frame
func (lmtr *limiter) checkRate() {
	if lmtr.limit {
		<-lmtr.sync
	}
	lmtr.measureActual()
}

// called every frame to calculate the actual frame rate being achieved
func (lmtr *limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		lmtr.actual = float32(lmtr.actualCtTarget) / float32(t.Sub(lmtr.actualRefTime).Seconds())

		// actualCtTarget is the number of frames to count before taking the
		// actual measurement. we set this to the new actual value, which means
		// we'll be remeasuring every second or so. if actual is less than 1
		// however, we set actualCtTarget to 1, which means we'll be
		// re-measuring every frame.
		if lmtr.actual > 1 {
			lmtr.actualCtTarget = int(lmtr.actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		// note start time for next calculation
		lmtr.actualRefTime = t

		lmtr.actualCt = 0
	}
}

// stop the limiter goroutine. the limiter can not be used afterwards
func (lmtr *limiter) end() {
	close(lmtr.quit)
}
