package id3meta

import (
	"github.com/simonhull/id3meta/internal/id3v1"
	"github.com/simonhull/id3meta/internal/id3v2"
	"github.com/simonhull/id3meta/internal/mpeg"
	"github.com/simonhull/id3meta/internal/types"
)

// Metadata is an alias to types.Metadata.
type Metadata = types.Metadata

// Picture is an alias to types.Picture.
type Picture = types.Picture

// PictureType is an alias to types.PictureType.
type PictureType = types.PictureType

// Re-export all picture type constants
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// DefaultPictureMIME is reported for pictures that do not declare a MIME type.
const DefaultPictureMIME = types.DefaultPictureMIME

// ID3v1Tag is the fixed 128-byte tag at the end of a file.
type ID3v1Tag = id3v1.Tag

// TagHeader is a located ID3v2 tag header.
type TagHeader = id3v2.Header

// FrameHeader is the header of one frame inside an ID3v2 tag.
type FrameHeader = id3v2.FrameHeader

// AudioFrame is a decoded MPEG audio frame header.
type AudioFrame = mpeg.Frame
