// Package voice holds the speech edges around the assistant. Recognition and
// synthesis run in external engines; these types only move text in and out.
package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoAudio is returned when a directory holds no audio file to transcribe.
var ErrNoAudio = errors.New("no audio files found")

// Transcriber turns one recorded utterance into raw text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Speaker voices a composed reply.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// TranscriptFileTranscriber reads the transcript an external recognizer wrote
// beside the audio file: clip.ogg is answered from clip.txt.
type TranscriptFileTranscriber struct{}

func NewTranscriptFileTranscriber() *TranscriptFileTranscriber {
	return &TranscriptFileTranscriber{}
}

func (TranscriptFileTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := TranscriptPath(audioPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %q: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// TranscriptPath returns the .txt sibling of audioPath. A path that already
// ends in .txt is returned unchanged.
func TranscriptPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + ".txt"
}

// LatestAudio returns the most recently modified file in dir with extension ext.
func LatestAudio(dir, ext string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return "", err
	}
	var (
		latest string
		newest int64
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if mt := info.ModTime().UnixNano(); latest == "" || mt > newest {
			latest, newest = m, mt
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoAudio, dir)
	}
	return latest, nil
}

// WriterSpeaker prints replies instead of synthesizing them.
type WriterSpeaker struct {
	w      io.Writer
	prefix string
}

func NewWriterSpeaker(w io.Writer, prefix string) *WriterSpeaker {
	return &WriterSpeaker{w: w, prefix: prefix}
}

func (s *WriterSpeaker) Speak(ctx context.Context, text string) error {
	_, err := fmt.Fprintf(s.w, "%s%s\n", s.prefix, text)
	return err
}

var (
	_ Transcriber = (*TranscriptFileTranscriber)(nil)
	_ Speaker     = (*WriterSpeaker)(nil)
)
