package entity

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	RecordingMarker = ".onpbx.ru"

	recordingPrefix     = "download_amocrm/"
	recordingSuffix     = "/rec.mp3"
	recordingPartsCount = 2
)

// Recording is an onlinePBX call recording referenced from a note.
type Recording struct {
	NoteID  int64
	Link    string
	Region  string // between download_amocrm/ and /rec.mp3
	Info    string // base64 part
	Key     string
	Decoded string
}

func IsRecordingLink(link string) bool {
	return strings.Contains(link, RecordingMarker)
}

// ParseRecordingLink extracts and decodes the token of an onlinePBX recording link.
//
// The link must contain the vendor marker, the download_amocrm/ and /rec.mp3
// delimiters in that order, and a token region of exactly two underscore separated
// parts. The first part is decoded with the standard base64 alphabet.
func ParseRecordingLink(link string) (Recording, error) {
	if !IsRecordingLink(link) {
		return Recording{}, ErrNotRecordingLink
	}

	_, rest, ok := strings.Cut(link, recordingPrefix)
	if !ok {
		return Recording{}, fmt.Errorf("%w: %q", ErrLinkDelimiterNotFound, recordingPrefix)
	}

	region, _, ok := strings.Cut(rest, recordingSuffix)
	if !ok {
		return Recording{}, fmt.Errorf("%w: %q", ErrLinkDelimiterNotFound, recordingSuffix)
	}

	parts := strings.Split(region, "_")
	if len(parts) != recordingPartsCount {
		return Recording{}, fmt.Errorf("%w: expected %d parts, got %d", ErrLinkUnexpectedFormat, recordingPartsCount, len(parts))
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return Recording{}, fmt.Errorf("%w: %w", ErrLinkDecode, err)
	}

	if !utf8.Valid(decoded) {
		return Recording{}, fmt.Errorf("%w: decoded info is not valid utf-8", ErrLinkDecode)
	}

	return Recording{
		Link:    link,
		Region:  region,
		Info:    parts[0],
		Key:     parts[1],
		Decoded: string(decoded),
	}, nil
}
