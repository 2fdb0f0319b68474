package mediainfo

import (
	"strings"

	"github.com/pion/webrtc/v4"
)

// VideoCodec identifies the video codec of a track.
type VideoCodec int

const (
	VideoCodecUnknown VideoCodec = iota
	VideoCodecVP8
	VideoCodecVP9
	VideoCodecH264
	VideoCodecH265
	VideoCodecAV1
)

// ParseVideoCodec maps a MediaInfo video Format ("AVC", "HEVC", "VP9", ...)
// to a VideoCodec.
func ParseVideoCodec(format string) VideoCodec {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "VP8":
		return VideoCodecVP8
	case "VP9":
		return VideoCodecVP9
	case "AVC", "H.264", "H264":
		return VideoCodecH264
	case "HEVC", "H.265", "H265":
		return VideoCodecH265
	case "AV1":
		return VideoCodecAV1
	default:
		return VideoCodecUnknown
	}
}

func (c VideoCodec) String() string {
	switch c {
	case VideoCodecVP8:
		return "VP8"
	case VideoCodecVP9:
		return "VP9"
	case VideoCodecH264:
		return "H264"
	case VideoCodecH265:
		return "H265"
	case VideoCodecAV1:
		return "AV1"
	default:
		return "Unknown"
	}
}

// MimeType returns the WebRTC MIME type for this codec.
func (c VideoCodec) MimeType() string {
	switch c {
	case VideoCodecVP8:
		return webrtc.MimeTypeVP8
	case VideoCodecVP9:
		return webrtc.MimeTypeVP9
	case VideoCodecH264:
		return webrtc.MimeTypeH264
	case VideoCodecH265:
		return webrtc.MimeTypeH265
	case VideoCodecAV1:
		return webrtc.MimeTypeAV1
	default:
		return ""
	}
}

// ClockRate returns the RTP clock rate for this codec.
func (c VideoCodec) ClockRate() uint32 {
	// All video codecs use 90kHz clock
	return 90000
}

// DefaultPayloadType returns a typical payload type for this codec.
// Note: Actual payload type is negotiated via SDP.
func (c VideoCodec) DefaultPayloadType() uint8 {
	switch c {
	case VideoCodecVP8:
		return 96
	case VideoCodecVP9:
		return 98
	case VideoCodecH264:
		return 102
	case VideoCodecH265:
		return 104
	case VideoCodecAV1:
		return 35
	default:
		return 96
	}
}

// SDPFmtpLine returns the fmtp parameters advertised for this codec.
func (c VideoCodec) SDPFmtpLine() string {
	switch c {
	case VideoCodecH264:
		return "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f"
	case VideoCodecVP9:
		return "profile-id=0"
	default:
		return ""
	}
}

// RTPCodecCapability describes the codec for a pion/webrtc track. ok is
// false for codecs WebRTC cannot carry.
func (c VideoCodec) RTPCodecCapability() (webrtc.RTPCodecCapability, bool) {
	mime := c.MimeType()
	if mime == "" {
		return webrtc.RTPCodecCapability{}, false
	}
	return webrtc.RTPCodecCapability{
		MimeType:    mime,
		ClockRate:   c.ClockRate(),
		SDPFmtpLine: c.SDPFmtpLine(),
	}, true
}

// AudioCodec identifies the audio codec of a track.
type AudioCodec int

const (
	AudioCodecUnknown AudioCodec = iota
	AudioCodecOpus
	AudioCodecG711A // A-law (PCMA)
	AudioCodecG711U // μ-law (PCMU)
	AudioCodecG722
	AudioCodecAAC
	AudioCodecMP3
	AudioCodecAC3
	AudioCodecEAC3
	AudioCodecFLAC
	AudioCodecVorbis
	AudioCodecPCM
)

// ParseAudioCodec maps a MediaInfo audio Format ("AAC", "Opus", "AC-3", ...)
// to an AudioCodec.
func ParseAudioCodec(format string) AudioCodec {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "OPUS":
		return AudioCodecOpus
	case "A-LAW", "ALAW", "G.711 A-LAW":
		return AudioCodecG711A
	case "U-LAW", "ULAW", "MU-LAW", "G.711 MU-LAW":
		return AudioCodecG711U
	case "G.722", "G722":
		return AudioCodecG722
	case "AAC":
		return AudioCodecAAC
	case "MPEG AUDIO", "MP3":
		return AudioCodecMP3
	case "AC-3", "AC3":
		return AudioCodecAC3
	case "E-AC-3", "EAC3":
		return AudioCodecEAC3
	case "FLAC":
		return AudioCodecFLAC
	case "VORBIS":
		return AudioCodecVorbis
	case "PCM":
		return AudioCodecPCM
	default:
		return AudioCodecUnknown
	}
}

func (c AudioCodec) String() string {
	switch c {
	case AudioCodecOpus:
		return "Opus"
	case AudioCodecG711A:
		return "PCMA"
	case AudioCodecG711U:
		return "PCMU"
	case AudioCodecG722:
		return "G722"
	case AudioCodecAAC:
		return "AAC"
	case AudioCodecMP3:
		return "MP3"
	case AudioCodecAC3:
		return "AC3"
	case AudioCodecEAC3:
		return "EAC3"
	case AudioCodecFLAC:
		return "FLAC"
	case AudioCodecVorbis:
		return "Vorbis"
	case AudioCodecPCM:
		return "PCM"
	default:
		return "Unknown"
	}
}

// MimeType returns the WebRTC MIME type for this codec, or "" when WebRTC
// cannot carry it.
func (c AudioCodec) MimeType() string {
	switch c {
	case AudioCodecOpus:
		return webrtc.MimeTypeOpus
	case AudioCodecG711A:
		return webrtc.MimeTypePCMA
	case AudioCodecG711U:
		return webrtc.MimeTypePCMU
	case AudioCodecG722:
		return webrtc.MimeTypeG722
	default:
		return ""
	}
}

// ClockRate returns the RTP clock rate for this codec.
func (c AudioCodec) ClockRate() uint32 {
	switch c {
	case AudioCodecG711A, AudioCodecG711U, AudioCodecG722:
		// G.722 keeps 8kHz for historical reasons (RFC 3551)
		return 8000
	default:
		return 48000
	}
}

// Channels returns the channel count signalled in SDP.
func (c AudioCodec) Channels() uint16 {
	if c == AudioCodecOpus {
		return 2
	}
	return 1
}

// DefaultPayloadType returns a typical payload type for this codec.
func (c AudioCodec) DefaultPayloadType() uint8 {
	switch c {
	case AudioCodecG711A:
		return 8 // Static payload type
	case AudioCodecG711U:
		return 0 // Static payload type
	case AudioCodecG722:
		return 9 // Static payload type
	default:
		return 111
	}
}

// RTPCodecCapability describes the codec for a pion/webrtc track. ok is
// false for codecs WebRTC cannot carry.
func (c AudioCodec) RTPCodecCapability() (webrtc.RTPCodecCapability, bool) {
	mime := c.MimeType()
	if mime == "" {
		return webrtc.RTPCodecCapability{}, false
	}
	capability := webrtc.RTPCodecCapability{
		MimeType:  mime,
		ClockRate: c.ClockRate(),
		Channels:  c.Channels(),
	}
	if c == AudioCodecOpus {
		capability.SDPFmtpLine = "minptime=10;useinbandfec=1"
	}
	return capability, true
}

// Codec returns the codec of the track.
func (v Video) Codec() VideoCodec { return ParseVideoCodec(v.Format) }

// Codec returns the codec of the track.
func (a Audio) Codec() AudioCodec { return ParseAudioCodec(a.Format) }

// RTPCodecs returns one codec entry per distinct WebRTC-capable codec found
// in the file, video first, in track order.
func (i Info) RTPCodecs() []webrtc.RTPCodecParameters {
	var params []webrtc.RTPCodecParameters
	seen := make(map[string]bool)

	add := func(capability webrtc.RTPCodecCapability, pt uint8) {
		if seen[capability.MimeType] {
			return
		}
		seen[capability.MimeType] = true
		params = append(params, webrtc.RTPCodecParameters{
			RTPCodecCapability: capability,
			PayloadType:        webrtc.PayloadType(pt),
		})
	}

	for _, v := range i.VideoTracks {
		c := v.Codec()
		if capability, ok := c.RTPCodecCapability(); ok {
			add(capability, c.DefaultPayloadType())
		}
	}
	for _, a := range i.AudioTracks {
		c := a.Codec()
		if capability, ok := c.RTPCodecCapability(); ok {
			add(capability, c.DefaultPayloadType())
		}
	}
	return params
}
