package voice

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptPath(t *testing.T) {
	assert.Equal(t, "rec/clip.txt", TranscriptPath("rec/clip.ogg"))
	assert.Equal(t, "clip.txt", TranscriptPath("clip.txt"))
	assert.Equal(t, "clip.txt", TranscriptPath("clip"))
}

func TestTranscriptFileTranscriber(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "clip.ogg")
	require.NoError(t, os.WriteFile(audio, []byte("OggS"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.txt"), []byte("  Waktu solat asar gombak\n"), 0o600))

	got, err := NewTranscriptFileTranscriber().Transcribe(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "Waktu solat asar gombak", got)

	_, err = NewTranscriptFileTranscriber().Transcribe(context.Background(), filepath.Join(dir, "other.ogg"))
	assert.ErrorContains(t, err, "failed to read transcript")
}

func TestLatestAudio(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "a.ogg")
	recent := filepath.Join(dir, "b.ogg")
	require.NoError(t, os.WriteFile(old, nil, 0o600))
	require.NoError(t, os.WriteFile(recent, nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.wav"), nil, 0o600))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	got, err := LatestAudio(dir, ".ogg")
	require.NoError(t, err)
	assert.Equal(t, recent, got)

	_, err = LatestAudio(t.TempDir(), ".ogg")
	assert.ErrorIs(t, err, ErrNoAudio)
}

func TestWriterSpeaker(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriterSpeaker(&buf, "BOT: ").Speak(context.Background(), "Waalaikumsalam."))
	assert.Equal(t, "BOT: Waalaikumsalam.\n", buf.String())
}
