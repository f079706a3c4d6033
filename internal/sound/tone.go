// Package sound synthesises the short tick played for each generation.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// SampleRate is the playback rate in Hz.
	SampleRate = 44100
	// BlipDuration is the length of one tick sound.
	BlipDuration = 40 * time.Millisecond

	minPitch = 220.0
	maxPitch = 880.0

	channels       = 2
	bytesPerSample = 2
)

// PitchFor maps the fraction of active cells to a frequency between 220 and
// 880 Hz on a logarithmic scale.
func PitchFor(population, total int) float64 {
	if total <= 0 || population <= 0 {
		return minPitch
	}
	density := float64(population) / float64(total)
	if density > 1 {
		density = 1
	}
	return minPitch * math.Pow(maxPitch/minPitch, density)
}

// Blip returns signed 16-bit little-endian stereo PCM for a sine tone with a
// linear fade out. volume is clamped to [0, 1].
func Blip(freq float64, d time.Duration, volume float64) []byte {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	frames := int(math.Round(d.Seconds() * SampleRate))
	if frames <= 0 {
		return nil
	}
	buf := make([]byte, frames*channels*bytesPerSample)
	for i := 0; i < frames; i++ {
		env := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * env * volume
		sample := uint16(int16(v * math.MaxInt16))
		base := i * channels * bytesPerSample
		binary.LittleEndian.PutUint16(buf[base:], sample)
		binary.LittleEndian.PutUint16(buf[base+bytesPerSample:], sample)
	}
	return buf
}
