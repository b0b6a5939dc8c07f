package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a finite sine-wave streamer with an exponential fade-out, the
// same envelope the effects were originally tuned with: amplitude decays
// by e^-5 over the tone's duration.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	amp   float64
	total int
	pos   int
}

func newTone(sr beep.SampleRate, freq float64, dur time.Duration, amp float64) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		amp:   amp,
		total: sr.N(dur),
	}
}

// Stream fills samples with the next chunk of the tone and reports
// whether any samples remain.
func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		at := float64(t.pos) / float64(t.sr)
		env := math.Exp(-5 * float64(t.pos) / float64(t.total))
		v := math.Sin(2*math.Pi*t.freq*at) * t.amp * env
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err always returns nil; tone generation cannot fail.
func (t *tone) Err() error {
	return nil
}
