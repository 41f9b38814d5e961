package usecase

import "adpulse/internal/core/domain"

// ExtractText pulls the copy fields of a creative from its prioritized
// locations. The originating post is consulted only when the creative's own
// fields are empty.
func ExtractText(cr *domain.AdCreative, post *domain.Post) domain.TextFields {
	var link, template domain.LinkData
	var videoData domain.VideoData
	var photo domain.PhotoData
	if spec := cr.ObjectStorySpec; spec != nil {
		if spec.LinkData != nil {
			link = *spec.LinkData
		}
		if spec.VideoData != nil {
			videoData = *spec.VideoData
		}
		if spec.PhotoData != nil {
			photo = *spec.PhotoData
		}
		if spec.TemplateData != nil {
			template = *spec.TemplateData
		}
	}

	var feed domain.AssetFeedSpec
	if cr.AssetFeedSpec != nil {
		feed = *cr.AssetFeedSpec
	}
	var child domain.ChildAttachment
	if c := firstChild(cr); c != nil {
		child = *c
	}
	var att domain.PostAttachment
	var postMessage string
	if post != nil {
		postMessage = post.Message
		if a := post.FirstAttachment(); a != nil {
			att = *a
		}
	}

	return domain.TextFields{
		Title: firstNonEmpty(
			cr.Title, link.Name, videoData.Title, feedText(feed.Titles), template.Name, child.Name,
			att.Title,
		),
		Body: firstNonEmpty(
			cr.Body, link.Message, videoData.Message, photo.Caption, feedText(feed.Bodies), template.Message,
			postMessage,
		),
		Description: firstNonEmpty(
			link.Description, videoData.LinkDescription, feedText(feed.Descriptions), template.Description, child.Description,
			att.Description,
		),
		CallToAction: firstNonEmpty(
			cr.CallToActionType, ctaType(link.CallToAction), ctaType(videoData.CallToAction), firstString(feed.CallToActionTypes),
			ctaType(template.CallToAction), ctaType(child.CallToAction),
		),
		LinkURL: firstNonEmpty(
			cr.LinkURL, link.Link, ctaLink(link.CallToAction), ctaLink(videoData.CallToAction), feedLink(feed.LinkURLs),
			template.Link, child.Link,
			att.URL,
		),
	}
}

func feedText(items []domain.AssetFeedText) string {
	for _, it := range items {
		if it.Text != "" {
			return it.Text
		}
	}
	return ""
}

func feedLink(items []domain.AssetFeedLink) string {
	for _, it := range items {
		if it.WebsiteURL != "" {
			return it.WebsiteURL
		}
	}
	return ""
}

func firstString(items []string) string {
	for _, it := range items {
		if it != "" {
			return it
		}
	}
	return ""
}

func ctaType(c *domain.CallToAction) string {
	if c == nil {
		return ""
	}
	return c.Type
}

func ctaLink(c *domain.CallToAction) string {
	if c == nil || c.Value == nil {
		return ""
	}
	return c.Value.Link
}
