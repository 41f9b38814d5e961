package domain

// The types below mirror the subset of the ad platform's response shapes
// that creative resolution has to reconcile. Field names follow the
// upstream JSON.

// Ad is an advertisement with its creative expanded.
type Ad struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	AccountID string      `json:"account_id"`
	Creative  *AdCreative `json:"creative"`
}

// AdCreative is the creative attached to an ad. Different ad formats expose
// their asset through different sub-objects.
type AdCreative struct {
	ID                     string           `json:"id"`
	Name                   string           `json:"name"`
	Title                  string           `json:"title"`
	Body                   string           `json:"body"`
	ImageURL               string           `json:"image_url"`
	ImageHash              string           `json:"image_hash"`
	ThumbnailURL           string           `json:"thumbnail_url"`
	VideoID                string           `json:"video_id"`
	ObjectType             string           `json:"object_type"`
	CallToActionType       string           `json:"call_to_action_type"`
	LinkURL                string           `json:"link_url"`
	ObjectStoryID          string           `json:"object_story_id"`
	EffectiveObjectStoryID string           `json:"effective_object_story_id"`
	ObjectStorySpec        *ObjectStorySpec `json:"object_story_spec"`
	AssetFeedSpec          *AssetFeedSpec   `json:"asset_feed_spec"`
}

// StoryID returns the originating post id, preferring the effective one.
func (c *AdCreative) StoryID() string {
	if c.EffectiveObjectStoryID != "" {
		return c.EffectiveObjectStoryID
	}
	return c.ObjectStoryID
}

type ObjectStorySpec struct {
	PageID       string     `json:"page_id"`
	LinkData     *LinkData  `json:"link_data"`
	VideoData    *VideoData `json:"video_data"`
	PhotoData    *PhotoData `json:"photo_data"`
	TemplateData *LinkData  `json:"template_data"`
}

// LinkData describes link ads and, through ChildAttachments, carousels.
type LinkData struct {
	Link             string            `json:"link"`
	Message          string            `json:"message"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Caption          string            `json:"caption"`
	Picture          string            `json:"picture"`
	ImageHash        string            `json:"image_hash"`
	CallToAction     *CallToAction     `json:"call_to_action"`
	ChildAttachments []ChildAttachment `json:"child_attachments"`
}

type ChildAttachment struct {
	Link         string        `json:"link"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Picture      string        `json:"picture"`
	ImageHash    string        `json:"image_hash"`
	VideoID      string        `json:"video_id"`
	CallToAction *CallToAction `json:"call_to_action"`
}

type VideoData struct {
	VideoID         string        `json:"video_id"`
	Title           string        `json:"title"`
	Message         string        `json:"message"`
	LinkDescription string        `json:"link_description"`
	ImageURL        string        `json:"image_url"`
	ImageHash       string        `json:"image_hash"`
	CallToAction    *CallToAction `json:"call_to_action"`
}

type PhotoData struct {
	ImageHash string `json:"image_hash"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
}

type CallToAction struct {
	Type  string             `json:"type"`
	Value *CallToActionValue `json:"value"`
}

type CallToActionValue struct {
	Link string `json:"link"`
}

// AssetFeedSpec is the templated asset pool of a dynamic creative.
type AssetFeedSpec struct {
	Images            []AssetFeedImage `json:"images"`
	Videos            []AssetFeedVideo `json:"videos"`
	Titles            []AssetFeedText  `json:"titles"`
	Bodies            []AssetFeedText  `json:"bodies"`
	Descriptions      []AssetFeedText  `json:"descriptions"`
	LinkURLs          []AssetFeedLink  `json:"link_urls"`
	CallToActionTypes []string         `json:"call_to_action_types"`
}

type AssetFeedImage struct {
	Hash string `json:"hash"`
	URL  string `json:"url"`
}

type AssetFeedVideo struct {
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type AssetFeedText struct {
	Text string `json:"text"`
}

type AssetFeedLink struct {
	WebsiteURL string `json:"website_url"`
}

// Post is the social post an ad was created from.
type Post struct {
	ID          string           `json:"id"`
	FullPicture string           `json:"full_picture"`
	Picture     string           `json:"picture"`
	Message     string           `json:"message"`
	Attachments *PostAttachments `json:"attachments"`
}

// FirstAttachment returns the first attachment or nil.
func (p *Post) FirstAttachment() *PostAttachment {
	if p == nil || p.Attachments == nil || len(p.Attachments.Data) == 0 {
		return nil
	}
	return &p.Attachments.Data[0]
}

type PostAttachments struct {
	Data []PostAttachment `json:"data"`
}

type PostAttachment struct {
	Type           string           `json:"type"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	URL            string           `json:"url"`
	Media          *PostMedia       `json:"media"`
	Subattachments *PostAttachments `json:"subattachments"`
}

type PostMedia struct {
	Image *PostImage `json:"image"`
}

type PostImage struct {
	Src    string `json:"src"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageAsset is an ad image looked up by its content hash. PermalinkURL does
// not expire and points at the full-resolution original.
type ImageAsset struct {
	Hash         string `json:"hash"`
	URL          string `json:"url"`
	PermalinkURL string `json:"permalink_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// VideoMeta is the video-metadata lookup result.
type VideoMeta struct {
	ID         string           `json:"id"`
	Source     string           `json:"source"`
	Picture    string           `json:"picture"`
	Length     float64          `json:"length"`
	Thumbnails *VideoThumbnails `json:"thumbnails"`
}

type VideoThumbnails struct {
	Data []VideoThumbnail `json:"data"`
}

type VideoThumbnail struct {
	URI         string `json:"uri"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	IsPreferred bool   `json:"is_preferred"`
}

// AdResult is one item of a batched ad fetch. Exactly one of Ad and Err is
// set.
type AdResult struct {
	AdID   string
	Status int
	Ad     *Ad
	Err    *UpstreamError
}
