package mediainfo

import "time"

// Info is the structured report of one media file.
type Info struct {
	General     General
	VideoTracks []Video
	AudioTracks []Audio
	TextTracks  []Text
	MenuTracks  []Menu
}

// General holds container-level information.
type General struct {
	UniqueID              string
	AudioCount            uint
	VideoCount            uint
	TextCount             uint
	MenuCount             uint
	FileExtension         string
	Format                string
	FormatVersion         string
	FileSize              uint
	Duration              float32 // seconds
	OverallBitRate        float32
	FrameRate             float32
	FrameCount            uint
	IsStreamable          bool
	EncodedDate           time.Time
	FileCreatedDate       time.Time
	FileModifiedDate      time.Time
	EncodedApplication    string
	EncodedLibrary        string
	EncodedLibraryVersion string
	Title                 string
	CompleteName          string
}

// Video describes one video track.
type Video struct {
	StreamOrder            uint
	ID                     uint
	UniqueID               string
	Format                 string
	FormatProfile          string
	FormatLevel            string
	FormatTier             string
	CodecID                string
	Duration               float32
	BitRate                float32
	Width                  uint
	Height                 uint
	SampledWidth           uint
	SampledHeight          uint
	PixelAspectRatio       float32
	DisplayAspectRatio     float32
	FrameRateMode          string
	FrameRate              float32
	FrameCount             uint
	ColorSpace             string
	ChromaSubsampling      string
	BitDepth               uint
	StreamSize             uint
	StreamSizeProportion   float32
	EncodedLibrary         string
	EncodedLibraryName     string
	EncodedLibraryVersion  string
	EncodedLibrarySettings string
	Default                bool
	Forced                 bool
	B3D                    bool // stereoscopic (multi-view) video
	Title                  string
}

// Audio describes one audio track.
type Audio struct {
	StreamOrder              uint
	ID                       uint
	UniqueID                 string
	Format                   string
	FormatCommercial         string
	FormatAdditionalFeatures string
	CodecID                  string
	Duration                 float32
	BitRate                  float32
	Channels                 uint
	ChannelPositions         string
	ChannelLayout            string
	SamplesPerFrame          uint
	SamplingRate             uint
	SamplingCount            uint
	FrameRate                float32
	FrameCount               uint
	CompressionMode          string
	StreamSize               uint
	StreamSizeProportion     float32
	Language                 string
	Default                  bool
	Forced                   bool
	Title                    string
}

// Text describes one subtitle track.
type Text struct {
	Order        uint
	StreamOrder  uint
	ID           uint
	UniqueID     string
	Format       string
	CodecID      string
	Duration     float32
	BitRate      float32
	FrameCount   uint
	ElementCount uint
	StreamSize   uint
	Language     string
	Default      bool
	Forced       bool
	Title        string
}

// Menu is a chapter list.
type Menu struct {
	Order    uint
	Entries  []Entry
	Duration float32
}

// Entry is one chapter of a Menu. Times are in seconds; the *Str fields use
// the HH:MM:SS.mmm form.
type Entry struct {
	StartTime    float32
	StartTimeStr string
	EndTime      float32
	EndTimeStr   string
	Title        string
	Language     string
}

// report mirrors the JSON document produced with the option Inform=JSON.
type report struct {
	Media struct {
		Ref    string  `json:"@ref"`
		Tracks []track `json:"track"`
	} `json:"media"`
}

// track holds every field the mapping reads. The library emits all values as
// strings.
type track struct {
	Type      string `json:"@type"`
	TypeOrder string `json:"@typeorder"`

	UniqueID              string
	VideoCount            string
	AudioCount            string
	TextCount             string
	MenuCount             string
	FileExtension         string
	Format                string
	FormatVersion         string `json:"Format_Version"`
	CodecID               string
	FileSize              string
	Duration              string
	OverallBitRate        string
	FrameRate             string
	FrameCount            string
	StreamSize            string
	IsStreamable          string
	Title                 string
	Movie                 string
	FileCreatedDate       string `json:"File_Created_Date"`
	EncodedDate           string `json:"Encoded_Date"`
	FileModifiedDate      string `json:"File_Modified_Date"`
	EncodedApplication    string `json:"Encoded_Application"`
	EncodedLibrary        any    `json:"Encoded_Library"` // string, or an object in some containers
	EncodedLibraryVersion string `json:"Encoded_Library_Version"`

	StreamOrder            string
	ID                     string
	FormatProfile          string `json:"Format_Profile"`
	FormatLevel            string `json:"Format_Level"`
	FormatTier             string `json:"Format_Tier"`
	FormatCommercial       string `json:"Format_Commercial_IfAny"`
	Width                  string
	Height                 string
	SampledWidth           string `json:"Sampled_Width"`
	SampledHeight          string `json:"Sampled_Height"`
	PixelAspectRatio       string
	DisplayAspectRatio     string
	FrameRateMode          string `json:"FrameRate_Mode"`
	MultiViewCount         string `json:"MultiView_Count"`
	ColorSpace             string
	ChromaSubsampling      string
	BitDepth               string
	EncodedLibraryName     string `json:"Encoded_Library_Name"`
	EncodedLibrarySettings string `json:"Encoded_Library_Settings"`
	Language               string
	Default                string
	Forced                 string

	FormatAdditionalFeatures string `json:"Format_AdditionalFeatures"`
	BitRate                  string
	Channels                 string
	ChannelPositions         string
	ChannelLayout            string
	SamplesPerFrame          string
	SamplingRate             string
	SamplingCount            string
	CompressionMode          string `json:"Compression_Mode"`
	StreamSizeProportion     string `json:"StreamSize_Proportion"`

	ElementCount string

	Extra map[string]string `json:"extra"`
}
