// Package mediainfo reads technical metadata of media files through
// libmediainfo (MediaArea's MediaInfoLib).
//
// Key pieces include:
//   - Handle: one library instance with Open, Get, Option, Inform and Count
//   - Inform/InformMany: structured reports decoded into Info
//   - Codec helpers mapping tracks to pion/webrtc codec parameters and
//     RTP packetizers
//
// # Usage
//
//	if err := mediainfo.Load(); err != nil {
//		return err
//	}
//	info, err := mediainfo.Inform("movie.mkv")
//
// Handles are safe for concurrent use but serialise their calls; use one
// handle per goroutine for parallel work, as InformMany does.
//
// # Native Library
//
// By default the package uses purego (CGO_ENABLED=0) and searches for
// libmediainfo at runtime. Set MEDIAINFO_LIB_PATH to the library file or
// MEDIAINFO_LIB_DIR to its directory to override the search. With CGO
// enabled it links against libmediainfo at build time instead.
//
// Windows requires CGO. Other platforms without CGO fall back to a stub whose
// Load returns ErrUnsupportedPlatform.
//
// # Locale
//
// Load sets a UTF-8 locale (en_US.UTF-8, then C.UTF-8) so the library
// converts file names and text correctly. This changes the locale of the
// whole process.
package mediainfo
