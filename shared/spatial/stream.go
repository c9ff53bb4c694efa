package spatial

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

const frameSize = 4 // 16-bit little endian, two channels

// PannedStream scales a 16-bit stereo PCM stream by per-channel gains.
// Gains may be changed from the game loop while the audio goroutine reads.
type PannedStream struct {
	src io.ReadSeeker

	// frame holds one scaled frame for reads shorter than a frame; rest is
	// its part not yet returned.
	frame [frameSize]byte
	rest  []byte

	mu    sync.Mutex
	gains Gains
}

// NewPannedStream wraps src with unity gains.
func NewPannedStream(src io.ReadSeeker) *PannedStream {
	return &PannedStream{src: src, gains: Gains{Left: 1, Right: 1}}
}

// SetGains replaces the channel gains used by subsequent reads.
func (s *PannedStream) SetGains(g Gains) {
	s.mu.Lock()
	s.gains = g
	s.mu.Unlock()
}

// Gains returns the current channel gains.
func (s *PannedStream) Gains() Gains {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gains
}

// Read returns scaled whole frames. A buffer shorter than a frame gets the
// frame in pieces over consecutive reads, so output stays frame aligned.
func (s *PannedStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(s.rest) > 0 {
		n := copy(p, s.rest)
		s.rest = s.rest[n:]
		return n, nil
	}

	if len(p) < frameSize {
		if _, err := io.ReadFull(s.src, s.frame[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return 0, err
		}
		s.scaleFrames(s.frame[:])
		n := copy(p, s.frame[:])
		s.rest = s.frame[n:]
		return n, nil
	}

	n, err := io.ReadFull(s.src, p[:len(p)/frameSize*frameSize])
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	n = n / frameSize * frameSize
	s.scaleFrames(p[:n])
	return n, err
}

func (s *PannedStream) Seek(offset int64, whence int) (int64, error) {
	s.rest = nil
	return s.src.Seek(offset, whence)
}

func (s *PannedStream) scaleFrames(b []byte) {
	g := s.Gains()
	for i := 0; i+frameSize <= len(b); i += frameSize {
		scale(b[i:i+2], g.Left)
		scale(b[i+2:i+4], g.Right)
	}
}

func scale(b []byte, gain float64) {
	v := float64(int16(binary.LittleEndian.Uint16(b))) * gain
	v = math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v)))
	binary.LittleEndian.PutUint16(b, uint16(int16(v)))
}
