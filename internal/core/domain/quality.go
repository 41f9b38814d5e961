package domain

// Quality grades the resolution of a still image.
type Quality string

const (
	QualityHD      Quality = "hd"
	QualitySD      Quality = "sd"
	QualityLow     Quality = "low"
	QualityUnknown Quality = "unknown"
)

// ClassifyQuality grades pixel dimensions. Both orientations count, so a
// 720x1280 story asset is as HD as a 1280x720 landscape one. Missing or
// non-positive dimensions yield QualityUnknown.
func ClassifyQuality(width, height *int) Quality {
	if width == nil || height == nil {
		return QualityUnknown
	}
	w, h := *width, *height
	switch {
	case (w >= 1280 && h >= 720) || (w >= 720 && h >= 1280):
		return QualityHD
	case (w >= 640 && h >= 480) || (w >= 480 && h >= 640):
		return QualitySD
	case w > 0 && h > 0:
		return QualityLow
	default:
		return QualityUnknown
	}
}
