package core

import "github.com/spaghettifunk/debugdraw/engine/containers"

const AVG_COUNT int = 30

// FrameSample is what the engine records for every rendered frame.
type FrameSample struct {
	ElapsedSeconds float64
	Primitives     uint64
}

type Metrics struct {
	samples            *containers.RingQueue[FrameSample]
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		samples: containers.NewRingQueue[FrameSample](AVG_COUNT),
	}
}

func (m *Metrics) Update(sample FrameSample) {
	m.samples.Push(sample)

	// Calculate Frames per second.
	m.accumulatedFrameMS += sample.ElapsedSeconds * 1000.0
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}

	// Count all Frames.
	m.frames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds over the last AVG_COUNT frames.
func (m *Metrics) FrameTime() float64 {
	if m.samples.IsEmpty() {
		return 0
	}
	var total float64
	m.samples.Each(func(s FrameSample) { total += s.ElapsedSeconds * 1000.0 })
	return total / float64(m.samples.Len())
}

// Primitives is the average primitive count over the recorded frames.
func (m *Metrics) Primitives() float64 {
	if m.samples.IsEmpty() {
		return 0
	}
	var total uint64
	m.samples.Each(func(s FrameSample) { total += s.Primitives })
	return float64(total) / float64(m.samples.Len())
}
