package spatial

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ear = Listener{Position: mgl64.Vec3{0, 0, 7}, Right: mgl64.Vec3{1, 0, 0}}

func TestAttenuation(t *testing.T) {
	assert.Equal(t, 1.0, Attenuation(0, 10))
	assert.InDelta(t, 0.5, Attenuation(10, 10), 1e-12)
	assert.Equal(t, 1.0, Attenuation(1e6, math.Inf(1)))
	assert.Equal(t, 0.0, Attenuation(5, 0))
	assert.Greater(t, Attenuation(5, 10), Attenuation(50, 10))
}

func TestMix(t *testing.T) {
	tests := []struct {
		name  string
		pos   mgl64.Vec3
		check func(t *testing.T, g Gains)
	}{
		{
			name: "at the listener is centred",
			pos:  ear.Position,
			check: func(t *testing.T, g Gains) {
				assert.InDelta(t, g.Left, g.Right, 1e-12)
				assert.InDelta(t, 1.0, g.Left*g.Left+g.Right*g.Right, 1e-9)
			},
		},
		{
			name: "ahead is centred and attenuated",
			pos:  mgl64.Vec3{0, 10, 7},
			check: func(t *testing.T, g Gains) {
				assert.InDelta(t, g.Left, g.Right, 1e-9)
				assert.InDelta(t, 0.25, g.Left*g.Left+g.Right*g.Right, 1e-9)
			},
		},
		{
			name: "hard right",
			pos:  mgl64.Vec3{10, 0, 7},
			check: func(t *testing.T, g Gains) {
				assert.InDelta(t, 0.0, g.Left, 1e-9)
				assert.InDelta(t, 0.5, g.Right, 1e-9)
			},
		},
		{
			name: "left of listener favours left",
			pos:  mgl64.Vec3{-5, 5, 7},
			check: func(t *testing.T, g Gains) {
				assert.Greater(t, g.Left, g.Right)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Mix(ear, tt.pos, 1, 10))
		})
	}
}

func TestMixSymmetric(t *testing.T) {
	a := Mix(ear, mgl64.Vec3{7, 3, 7}, 0.8, 10)
	b := Mix(ear, mgl64.Vec3{-7, 3, 7}, 0.8, 10)
	assert.InDelta(t, a.Left, b.Right, 1e-12)
	assert.InDelta(t, a.Right, b.Left, 1e-12)
}

func TestMixInfiniteRadiusKeepsVolume(t *testing.T) {
	g := Mix(ear, mgl64.Vec3{0, 1000, 7}, 0.1, math.Inf(1))
	assert.InDelta(t, 0.01, g.Left*g.Left+g.Right*g.Right, 1e-12)
}

func pcm(frames ...[2]int16) []byte {
	var buf bytes.Buffer
	for _, f := range frames {
		_ = binary.Write(&buf, binary.LittleEndian, f)
	}
	return buf.Bytes()
}

func TestPannedStreamScalesChannels(t *testing.T) {
	src := bytes.NewReader(pcm([2]int16{1000, -1000}, [2]int16{32767, -32768}))
	s := NewPannedStream(src)
	s.SetGains(Gains{Left: 0.5, Right: 2})

	out, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, pcm([2]int16{500, -2000}, [2]int16{16384, -32768}), out)
}

func TestPannedStreamDropsPartialFrame(t *testing.T) {
	data := append(pcm([2]int16{10, 20}), 0x01, 0x02)
	s := NewPannedStream(bytes.NewReader(data))

	buf := make([]byte, 16)
	n, err := s.Read(buf)
	assert.Equal(t, 4, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPannedStreamShortReads(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "one byte", size: 1},
		{name: "three bytes", size: 3},
		{name: "five bytes", size: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPannedStream(bytes.NewReader(pcm([2]int16{1000, -1000}, [2]int16{200, 400})))
			s.SetGains(Gains{Left: 0.5, Right: 0.25})

			var out []byte
			buf := make([]byte, tt.size)
			for {
				n, err := s.Read(buf)
				out = append(out, buf[:n]...)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
			}
			assert.Equal(t, pcm([2]int16{500, -250}, [2]int16{100, 100}), out)
		})
	}
}

func TestPannedStreamSeek(t *testing.T) {
	s := NewPannedStream(bytes.NewReader(pcm([2]int16{1, 2}, [2]int16{3, 4})))
	pos, err := s.Seek(4, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	out, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, pcm([2]int16{3, 4}), out)
}
