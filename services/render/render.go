package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/webtor-io/video-feed/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	ContainerID = "video-container"
	SearchID    = "search-input"
)

var cssURLReplacer = strings.NewReplacer(
	`\`, "%5C",
	`'`, "%27",
	`"`, "%22",
	"\n", "",
	"\r", "",
)

// NewContainer creates an empty mount container for cards.
func NewContainer() *html.Node {
	return el(atom.Div, []html.Attribute{
		attr("id", ContainerID),
		class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4 gap-6"),
	})
}

// Videos replaces all children of container with one card per video.
func Videos(container *html.Node, videos []models.Video) {
	for c := container.FirstChild; c != nil; c = container.FirstChild {
		container.RemoveChild(c)
	}
	for _, v := range videos {
		container.AppendChild(Card(v))
	}
}

// Card builds a clickable card: thumbnail block on top, then the content
// block with the header and the metrics row.
func Card(v models.Video) *html.Node {
	return el(atom.A, []html.Attribute{
		attr("href", v.WatchURL),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
		class("block"),
	},
		el(atom.Div, []html.Attribute{
			class("rounded-lg overflow-hidden shadow-lg bg-[#1E1E1E] flex flex-col h-full"),
		},
			thumbnail(v),
			el(atom.Div, []html.Attribute{class("p-4 flex flex-col flex-grow")},
				header(v),
				metrics(v),
			),
		),
	)
}

func thumbnail(v models.Video) *html.Node {
	return el(atom.Div, []html.Attribute{
		class("w-full h-48 bg-cover bg-center relative"),
		attr("style", fmt.Sprintf("background-image: url('%s')", cssURLReplacer.Replace(v.ThumbnailURL))),
	},
		el(atom.Div, []html.Attribute{
			class("absolute bottom-2 right-2 bg-[#0C0806] text-white text-xs px-2 py-1 rounded"),
		}, text(v.Duration)),
	)
}

func header(v models.Video) *html.Node {
	return el(atom.Div, []html.Attribute{class("flex items-center mb-3")},
		el(atom.Div, []html.Attribute{class("w-12 h-12 rounded-full overflow-hidden mr-3 flex-shrink-0")},
			el(atom.Img, []html.Attribute{
				attr("src", v.AvatarURL),
				attr("alt", v.ChannelName+" avatar"),
				class("w-full h-full object-cover"),
			}),
		),
		el(atom.Div, []html.Attribute{class("flex flex-col")},
			el(atom.H3, []html.Attribute{class("text-lg font-semibold text-white")}, text(v.Title)),
			el(atom.P, []html.Attribute{class("text-sm text-gray-400")}, text(v.ChannelName)),
		),
	)
}

func metrics(v models.Video) *html.Node {
	return el(atom.Div, []html.Attribute{class("mt-auto flex justify-between items-center")},
		label(v.Views),
		label(v.Likes),
		label(v.Comments),
	)
}

func label(s string) *html.Node {
	return el(atom.Span, []html.Attribute{class("text-xs text-gray-400")}, text(s))
}

// Inner serializes children of n.
func Inner(n *html.Node) (template.HTML, error) {
	var b bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", errors.Wrap(err, "failed to render node")
		}
	}
	return template.HTML(b.String()), nil
}

// Outer serializes n itself.
func Outer(n *html.Node) (template.HTML, error) {
	var b bytes.Buffer
	if err := html.Render(&b, n); err != nil {
		return "", errors.Wrap(err, "failed to render node")
	}
	return template.HTML(b.String()), nil
}

func el(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}

func attr(k, v string) html.Attribute {
	return html.Attribute{Key: k, Val: v}
}

func class(v string) html.Attribute {
	return attr("class", v)
}
