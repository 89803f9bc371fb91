package product

import "strings"

const inlinePrefix = "data:image/jpeg;base64,"

// Image is either inline base64 data or a URL; exactly one of the two is set.
type Image struct {
	data string
	url  string
}

func NewInlineImage(data string) Image {
	return Image{data: strings.TrimSpace(data)}
}

func NewURLImage(url string) Image {
	return Image{url: strings.TrimSpace(url)}
}

func (i Image) IsInline() bool { return i.data != "" }
func (i Image) IsEmpty() bool  { return i.data == "" && i.url == "" }
func (i Image) Data() string   { return i.data }
func (i Image) URL() string    { return i.url }

// Src returns a value usable as an <img> source. Relative URLs are resolved against baseURL.
func (i Image) Src(baseURL string) string {
	switch {
	case i.IsInline():
		if strings.HasPrefix(i.data, "data:") {
			return i.data
		}
		return inlinePrefix + i.data
	case i.url == "":
		return ""
	case strings.HasPrefix(i.url, "http://"), strings.HasPrefix(i.url, "https://"):
		return i.url
	default:
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(i.url, "/")
	}
}
