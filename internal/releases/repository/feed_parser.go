package repository

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

const maxFeedItems = 20

type rssFeed struct {
	XMLName     xml.Name
	Code        string `xml:"code,attr"`
	Description string `xml:"description,attr"`
	Channel     struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title     string        `xml:"title"`
	Link      string        `xml:"link"`
	GUID      string        `xml:"guid"`
	PubDate   string        `xml:"pubDate"`
	Size      string        `xml:"size"`
	Enclosure enclosure     `xml:"enclosure"`
	Attrs     []newznabAttr `xml:"attr"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// newznabAttr matches both newznab:attr and torznab:attr.
type newznabAttr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type token struct {
	needles []string
	value   string
}

var (
	qualityTokens = []token{
		{needles: []string{"4k", "2160p", "uhd"}, value: "4K"},
		{needles: []string{"1080p"}, value: "1080p"},
		{needles: []string{"720p"}, value: "720p"},
		{needles: []string{"480p", "sd"}, value: "480p"},
	}
	resolutionByQuality = map[string]string{
		"4K":    "2160p",
		"1080p": "1080p",
		"720p":  "720p",
		"480p":  "480p",
	}
	codecTokens = []token{
		{needles: []string{"x265", "hevc", "h265"}, value: "x265"},
		{needles: []string{"x264", "h264", "avc"}, value: "x264"},
		{needles: []string{"xvid"}, value: "XviD"},
	}
	sourceTokens = []token{
		{needles: []string{"bluray", "bdrip"}, value: "BluRay"},
		{needles: []string{"web-dl"}, value: "WEB-DL"},
		{needles: []string{"webrip"}, value: "WEBRip"},
		{needles: []string{"hdtv"}, value: "HDTV"},
		{needles: []string{"dvd"}, value: "DVD"},
		{needles: []string{"cam", "hdcam"}, value: "CAM"},
		{needles: []string{"hdts", "telesync"}, value: "HDTS"},
	}
	groupPattern = regexp.MustCompile(`-([A-Za-z0-9]+)$`)
)

// ParseFeed turns a Newznab RSS document into release records, in feed
// order, capped at 20 entries.
func ParseFeed(raw []byte) ([]*models.Release, error) {
	var feed rssFeed
	if err := xml.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if strings.EqualFold(feed.XMLName.Local, "error") {
		return nil, fmt.Errorf("indexer error %s: %s", feed.Code, feed.Description)
	}

	releases := make([]*models.Release, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		id := strings.TrimSpace(item.GUID)
		title := strings.TrimSpace(item.Title)
		if id == "" && title == "" {
			continue
		}
		attrs := make(map[string]string, len(item.Attrs))
		for _, a := range item.Attrs {
			attrs[strings.ToLower(a.Name)] = a.Value
		}
		if id == "" {
			id = attrs["guid"]
		}

		release := &models.Release{
			ID:          id,
			Title:       title,
			Size:        parseSize(item.Enclosure.Length, item.Size, attrs["size"]),
			DownloadURL: pickDownloadURL(item),
			PublishedAt: parsePubDate(item.PubDate),
		}
		InferMetadata(release)
		releases = append(releases, release)
		if len(releases) == maxFeedItems {
			break
		}
	}
	return releases, nil
}

// InferMetadata fills quality, resolution, codec, source and group from the title.
func InferMetadata(r *models.Release) {
	lower := strings.ToLower(r.Title)
	r.Quality = match(lower, qualityTokens)
	r.Resolution = resolutionByQuality[r.Quality]
	r.Codec = match(lower, codecTokens)
	r.Source = match(lower, sourceTokens)
	r.Group = ParseGroup(r.Title)
}

// ParseGroup returns the trailing -TOKEN of a release title.
func ParseGroup(title string) string {
	m := groupPattern.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(title), "web-dl") {
		return ""
	}
	return m[1]
}

func match(lower string, tokens []token) string {
	for _, t := range tokens {
		for _, n := range t.needles {
			if strings.Contains(lower, n) {
				return t.value
			}
		}
	}
	return ""
}

func parseSize(candidates ...string) int64 {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if v, err := strconv.ParseInt(c, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

func pickDownloadURL(item rssItem) string {
	if u := strings.TrimSpace(item.Enclosure.URL); u != "" {
		return u
	}
	return strings.TrimSpace(item.Link)
}

func parsePubDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
