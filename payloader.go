package mediainfo

import (
	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
)

// DefaultMTU is the RTP payload budget used by NewPacketizer callers that
// have no better figure.
const DefaultMTU = 1200

// Payloader returns the pion RTP payloader for this codec, or nil when the
// codec has none.
func (c VideoCodec) Payloader() rtp.Payloader {
	switch c {
	case VideoCodecH264:
		return &codecs.H264Payloader{}
	case VideoCodecVP8:
		return &codecs.VP8Payloader{EnablePictureID: true}
	case VideoCodecVP9:
		return &codecs.VP9Payloader{}
	case VideoCodecH265:
		return &codecs.H265Payloader{}
	case VideoCodecAV1:
		return &codecs.AV1Payloader{}
	default:
		return nil
	}
}

// Payloader returns the pion RTP payloader for this codec, or nil when the
// codec has none.
func (c AudioCodec) Payloader() rtp.Payloader {
	switch c {
	case AudioCodecOpus:
		return &codecs.OpusPayloader{}
	case AudioCodecG711A, AudioCodecG711U:
		return &codecs.G711Payloader{}
	case AudioCodecG722:
		return &codecs.G722Payloader{}
	default:
		return nil
	}
}

// NewVideoPacketizer returns a packetizer that splits encoded frames of
// codec c into RTP packets. It returns nil when c has no payloader.
func NewVideoPacketizer(c VideoCodec, ssrc uint32, mtu uint16) rtp.Packetizer {
	p := c.Payloader()
	if p == nil {
		return nil
	}
	return rtp.NewPacketizer(mtu, c.DefaultPayloadType(), ssrc, p, rtp.NewRandomSequencer(), c.ClockRate())
}

// NewAudioPacketizer returns a packetizer for encoded audio frames of codec
// c. It returns nil when c has no payloader.
func NewAudioPacketizer(c AudioCodec, ssrc uint32, mtu uint16) rtp.Packetizer {
	p := c.Payloader()
	if p == nil {
		return nil
	}
	return rtp.NewPacketizer(mtu, c.DefaultPayloadType(), ssrc, p, rtp.NewRandomSequencer(), c.ClockRate())
}
