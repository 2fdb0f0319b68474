package mediainfo

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Inform opens the file at path and returns its structured report.
// Load must have succeeded first.
func Inform(path string, opts ...Option) (Info, error) {
	o := newInformOptions(opts)

	// Absolute before conversion so Windows short paths never leak into
	// CompleteName.
	abs, err := filepath.Abs(path)
	if err != nil {
		return Info{}, err
	}

	var info Info
	err = WithHandle(func(h *Handle) error {
		for _, opt := range o.libOptions {
			h.Option(opt.name, opt.value)
		}
		if err := h.Open(abs); err != nil {
			return err
		}
		defer h.Close()

		var rerr error
		info, rerr = h.Report(abs)
		return rerr
	})
	return info, err
}

// Report returns the structured report of the file opened on h. completeName
// is recorded as General.CompleteName. Report leaves the handle's Inform
// option set to JSON.
func (h *Handle) Report(completeName string) (Info, error) {
	h.Option("Inform", "JSON")
	return ParseReport(completeName, []byte(h.Inform()))
}

// ParseReport decodes a report produced with the option Inform=JSON.
func ParseReport(completeName string, data []byte) (Info, error) {
	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return Info{}, fmt.Errorf("mediainfo: decode report: %w", err)
	}

	var info Info
	info.General.CompleteName = completeName

	// General first: menus need its duration.
	for _, t := range r.Media.Tracks {
		if t.Type == "General" {
			info.General = generalFromTrack(t, completeName)
			break
		}
	}

	for _, t := range r.Media.Tracks {
		switch t.Type {
		case "Video":
			info.VideoTracks = append(info.VideoTracks, videoFromTrack(t))
		case "Audio":
			info.AudioTracks = append(info.AudioTracks, audioFromTrack(t))
		case "Text":
			info.TextTracks = append(info.TextTracks, textFromTrack(t))
		case "Menu":
			info.MenuTracks = append(info.MenuTracks, menuFromTrack(t, info.General.Duration))
		}
	}
	return info, nil
}

func generalFromTrack(t track, completeName string) General {
	return General{
		UniqueID:              t.UniqueID,
		AudioCount:            toUint(t.AudioCount),
		VideoCount:            toUint(t.VideoCount),
		TextCount:             toUint(t.TextCount),
		MenuCount:             toUint(t.MenuCount),
		FileExtension:         strings.ToLower(t.FileExtension),
		Format:                t.Format,
		FormatVersion:         t.FormatVersion,
		FileSize:              toUint(t.FileSize),
		Duration:              toFloat(t.Duration),
		OverallBitRate:        toFloat(t.OverallBitRate),
		FrameRate:             toFloat(t.FrameRate),
		FrameCount:            toUint(t.FrameCount),
		IsStreamable:          toBool(t.IsStreamable),
		EncodedDate:           toTime(t.EncodedDate),
		FileCreatedDate:       toTime(t.FileCreatedDate),
		FileModifiedDate:      toTime(t.FileModifiedDate),
		EncodedApplication:    t.EncodedApplication,
		EncodedLibrary:        encodedLibrary(t.EncodedLibrary),
		EncodedLibraryVersion: t.EncodedLibraryVersion,
		Title:                 t.Title,
		CompleteName:          completeName,
	}
}

func videoFromTrack(t track) Video {
	return Video{
		StreamOrder:            toUint(t.StreamOrder),
		ID:                     toUint(t.ID),
		UniqueID:               t.UniqueID,
		Format:                 t.Format,
		FormatProfile:          t.FormatProfile,
		FormatLevel:            t.FormatLevel,
		FormatTier:             t.FormatTier,
		CodecID:                t.CodecID,
		Duration:               toFloat(t.Duration),
		BitRate:                toFloat(t.BitRate),
		Width:                  toUint(t.Width),
		Height:                 toUint(t.Height),
		SampledWidth:           toUint(t.SampledWidth),
		SampledHeight:          toUint(t.SampledHeight),
		PixelAspectRatio:       toFloat(t.PixelAspectRatio),
		DisplayAspectRatio:     toFloat(t.DisplayAspectRatio),
		FrameRateMode:          t.FrameRateMode,
		FrameRate:              toFloat(t.FrameRate),
		FrameCount:             toUint(t.FrameCount),
		ColorSpace:             t.ColorSpace,
		ChromaSubsampling:      t.ChromaSubsampling,
		BitDepth:               toUint(t.BitDepth),
		StreamSize:             toUint(t.StreamSize),
		StreamSizeProportion:   toFloat(t.StreamSizeProportion),
		EncodedLibrary:         encodedLibrary(t.EncodedLibrary),
		EncodedLibraryName:     t.EncodedLibraryName,
		EncodedLibraryVersion:  t.EncodedLibraryVersion,
		EncodedLibrarySettings: t.EncodedLibrarySettings,
		Default:                toBool(t.Default),
		Forced:                 toBool(t.Forced),
		B3D:                    t.MultiViewCount != "",
		Title:                  t.Title,
	}
}

func audioFromTrack(t track) Audio {
	return Audio{
		StreamOrder:              toUint(t.StreamOrder),
		ID:                       toUint(t.ID),
		UniqueID:                 t.UniqueID,
		Format:                   t.Format,
		FormatCommercial:         t.FormatCommercial,
		FormatAdditionalFeatures: t.FormatAdditionalFeatures,
		CodecID:                  t.CodecID,
		Duration:                 toFloat(t.Duration),
		BitRate:                  toFloat(t.BitRate),
		Channels:                 toUint(t.Channels),
		ChannelPositions:         t.ChannelPositions,
		ChannelLayout:            t.ChannelLayout,
		SamplesPerFrame:          toUint(t.SamplesPerFrame),
		SamplingRate:             toUint(t.SamplingRate),
		SamplingCount:            toUint(t.SamplingCount),
		FrameRate:                toFloat(t.FrameRate),
		FrameCount:               toUint(t.FrameCount),
		CompressionMode:          t.CompressionMode,
		StreamSize:               toUint(t.StreamSize),
		StreamSizeProportion:     toFloat(t.StreamSizeProportion),
		Language:                 t.Language,
		Default:                  toBool(t.Default),
		Forced:                   toBool(t.Forced),
		Title:                    t.Title,
	}
}

func textFromTrack(t track) Text {
	return Text{
		Order:        toUint(t.TypeOrder),
		StreamOrder:  toUint(t.StreamOrder),
		ID:           toUint(t.ID),
		UniqueID:     t.UniqueID,
		Format:       t.Format,
		CodecID:      t.CodecID,
		Duration:     toFloat(t.Duration),
		BitRate:      toFloat(t.BitRate),
		FrameCount:   toUint(t.FrameCount),
		ElementCount: toUint(t.ElementCount),
		StreamSize:   toUint(t.StreamSize),
		Language:     t.Language,
		Default:      toBool(t.Default),
		Forced:       toBool(t.Forced),
		Title:        t.Title,
	}
}

// menuFromTrack builds the chapter list of a menu track. Chapters live in
// "extra" as _HH_MM_SS_mmm => "lang:title". Each chapter ends where the next
// one starts; the last one ends with the file.
func menuFromTrack(t track, duration float32) Menu {
	m := Menu{
		Order:    toUint(t.TypeOrder),
		Duration: duration,
	}

	for k, v := range t.Extra {
		start, ok := formatExtra(k)
		if !ok {
			// menus may carry other extra fields
			continue
		}
		e := Entry{
			StartTime:    formatTime(start),
			StartTimeStr: start,
			Title:        v,
		}
		if lang, title, found := strings.Cut(v, ":"); found {
			e.Language, e.Title = lang, title
		}
		m.Entries = append(m.Entries, e)
	}
	if len(m.Entries) == 0 {
		return m
	}

	// Extra is a map, order entries before chaining end times.
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].StartTime < m.Entries[j].StartTime
	})

	for i := 0; i < len(m.Entries)-1; i++ {
		m.Entries[i].EndTime = m.Entries[i+1].StartTime
		m.Entries[i].EndTimeStr = m.Entries[i+1].StartTimeStr
	}
	last := &m.Entries[len(m.Entries)-1]
	last.EndTime = m.Duration
	last.EndTimeStr = toFormatTimeStr(m.Duration)

	return m
}
