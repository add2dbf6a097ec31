package main

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

const (
	reviewPanelSelector  = "div.m6QErb.DxyBCb.kA9KIf.dS8AEf"
	reviewNodeSelector   = "div.jJc9Ad"
	reviewAuthorSelector = ".d4r55"
	reviewRatingSelector = ".kvMYJc"
	reviewDateSelector   = ".rsqaWe"
	reviewTextSelector   = ".wiI7pd"
)

type review struct {
	Author     string
	Rating     string
	Date       string
	Content    string
	ParsedDate *time.Time
}

// extractReviews reads every review node out of a snapshot of the listing
// page. Fields that cannot be read are left empty. Nodes sharing a
// data-review-id are emitted once; nodes without one are always emitted.
func extractReviews(html string) ([]review, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var reviews []review
	doc.Find(reviewNodeSelector).Each(func(i int, node *goquery.Selection) {
		r := readReview(node)
		if r.empty() {
			log.Debug().Int("index", i).Msg("empty review node, skipping")
			return
		}
		if id := reviewID(node); id != "" {
			if _, dup := seen[id]; dup {
				return
			}
			seen[id] = struct{}{}
		}
		reviews = append(reviews, r)
	})
	return reviews, nil
}

func readReview(node *goquery.Selection) review {
	var r review
	var ok bool

	if r.Author, ok = pickText(node, reviewAuthorSelector); !ok {
		log.Debug().Str("field", "author").Msg("review field missing")
	}
	if r.Rating, ok = pickRating(node); !ok {
		log.Debug().Str("field", "rating").Msg("review field missing")
	}
	if r.Date, ok = pickText(node, reviewDateSelector); !ok {
		log.Debug().Str("field", "date").Msg("review field missing")
	}
	r.Content, _ = pickText(node, reviewTextSelector)
	return r
}

func pickText(root *goquery.Selection, selector string) (string, bool) {
	sel := root.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(sel.Text())
	return text, text != ""
}

// pickRating returns the leading number of the star widget's aria-label,
// e.g. "5 stars" -> "5".
func pickRating(root *goquery.Selection) (string, bool) {
	label, exists := root.Find(reviewRatingSelector).First().Attr("aria-label")
	if !exists {
		return "", false
	}
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// reviewID returns the data-review-id of the node's review card, if any.
func reviewID(node *goquery.Selection) string {
	id, _ := node.Closest("[data-review-id]").Attr("data-review-id")
	return strings.TrimSpace(id)
}

func (r review) empty() bool {
	return r.Author == "" && r.Rating == "" && r.Date == "" && r.Content == ""
}
