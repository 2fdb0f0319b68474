package mediainfo

import "strings"

// Stream identifies a stream category inside a media file.
// Values match MediaInfo_stream_C and are passed to the library unchanged.
type Stream uint8

const (
	StreamGeneral Stream = iota // Container-level information
	StreamVideo
	StreamAudio
	StreamText  // Subtitles and captions
	StreamOther // Timecodes, chapters stored as streams, etc.
	StreamImage
	StreamMenu // Chapter menus
	StreamMax
)

// Static name table - indexed by Stream.
var streamNames = [StreamMax]string{
	StreamGeneral: "General",
	StreamVideo:   "Video",
	StreamAudio:   "Audio",
	StreamText:    "Text",
	StreamOther:   "Other",
	StreamImage:   "Image",
	StreamMenu:    "Menu",
}

// String returns the MediaInfo name of the stream kind.
func (s Stream) String() string {
	if s >= StreamMax {
		return "unknown"
	}
	return streamNames[s]
}

// Valid reports whether s is a stream kind the library understands.
func (s Stream) Valid() bool { return s < StreamMax }

// ParseStream returns the Stream named name, ignoring case.
func ParseStream(name string) (Stream, bool) {
	for i, n := range streamNames {
		if strings.EqualFold(n, name) {
			return Stream(i), true
		}
	}
	return StreamMax, false
}

// infoKind mirrors MediaInfo_info_C. Only the kinds used by Get are listed.
type infoKind int32

const (
	infoName infoKind = 0
	infoText infoKind = 1
)

// countAll asks Count_Get for the number of streams rather than fields.
const countAll = ^uint64(0)
