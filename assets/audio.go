package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	pcmCache map[string][]byte // decoded 16-bit stereo PCM at the context sample rate
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		pcmCache: make(map[string][]byte),
		context:  ctx,
	}
}

// Context returns the audio context the loader decodes for.
func (l *AudioLoader) Context() *audio.Context {
	return l.context
}

// Preload decodes a sound and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) Preload(path string) error {
	_, err := l.PCM(path)
	return err
}

// PCM returns the decoded samples of path, decoding on first use.
func (l *AudioLoader) PCM(path string) ([]byte, error) {
	if pcm, ok := l.pcmCache[path]; ok {
		return pcm, nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}

	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.pcmCache[path] = decoded
	return decoded, nil
}

// Stream returns a seekable reader over the decoded sound. When loop is set the
// reader repeats forever.
func (l *AudioLoader) Stream(path string, loop bool) (io.ReadSeeker, error) {
	pcm, err := l.PCM(path)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(pcm)
	if loop {
		return audio.NewInfiniteLoop(r, int64(len(pcm))), nil
	}
	return r, nil
}
