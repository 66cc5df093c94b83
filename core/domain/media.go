// ABOUTME: Media domain model for WordPress attachments
// ABOUTME: Exposes rendered size variants with a fallback to the source image

package domain

// Media represents a WordPress media attachment
type Media struct {
	ID           int          `json:"id"`
	Date         string       `json:"date,omitempty"`
	Slug         string       `json:"slug,omitempty"`
	Type         string       `json:"type,omitempty"`
	MediaType    string       `json:"media_type,omitempty"`
	MimeType     string       `json:"mime_type,omitempty"`
	Title        Rendered     `json:"title"`
	MediaDetails MediaDetails `json:"media_details"`
	SourceURL    string       `json:"source_url"`
	AltText      string       `json:"alt_text"`
}

// MediaDetails describes the original dimensions and generated variants
type MediaDetails struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	Sizes  map[string]MediaSize `json:"sizes,omitempty"`
}

// MediaSize is one rendered size variant of an attachment
type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type,omitempty"`
	SourceURL string `json:"source_url"`
}

// Size returns the named variant ("medium", "large", ...). When the variant
// does not exist the canonical source with the original dimensions is returned.
func (m *Media) Size(name string) MediaSize {
	if size, ok := m.MediaDetails.Sizes[name]; ok && size.SourceURL != "" {
		return size
	}
	return MediaSize{
		Width:     m.MediaDetails.Width,
		Height:    m.MediaDetails.Height,
		MimeType:  m.MimeType,
		SourceURL: m.SourceURL,
	}
}
