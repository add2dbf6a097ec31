package main

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestParseReviewDate_Relative(t *testing.T) {
	for n := 0; n <= 24; n++ {
		got, err := parseReviewDate(fmt.Sprintf("%d months ago", n), testNow)
		if err != nil {
			t.Fatalf("%d months ago: %v", n, err)
		}
		want := testNow.Add(-time.Duration(n*30) * 24 * time.Hour)
		if !got.Equal(want) {
			t.Fatalf("%d months ago: got %v want %v", n, got, want)
		}
	}

	cases := []struct {
		in   string
		days int
	}{
		{"a month ago", 30},
		{"a week ago", 7},
		{"1 weeks ago", 7},
		{"3 weeks ago", 21},
		{"a day ago", 1},
		{"4 days ago", 4},
		{"0 days ago", 0},
		{"  2 months ago ", 60},
	}
	for _, tc := range cases {
		got, err := parseReviewDate(tc.in, testNow)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		want := testNow.Add(-time.Duration(tc.days) * 24 * time.Hour)
		if !got.Equal(want) {
			t.Errorf("%q: got %v want %v", tc.in, got, want)
		}
	}
}

func TestParseReviewDate_Absolute(t *testing.T) {
	got, err := parseReviewDate("March 5, 2024", testNow)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got, err = parseReviewDate("december 25, 2023", testNow)
	if err != nil {
		t.Fatalf("lowercase month: %v", err)
	}
	if got.Month() != time.December || got.Day() != 25 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseReviewDate_Unrecognized(t *testing.T) {
	inputs := []string{
		"",
		"yesterday",
		"a year ago",
		"2 years ago",
		"March 32, 2024",
		"Marchh 5, 2024",
		"5 March 2024",
		"many months ago",
	}
	for _, in := range inputs {
		_, err := parseReviewDate(in, testNow)
		if !errors.Is(err, errUnrecognizedDate) {
			t.Errorf("%q: expected errUnrecognizedDate, got %v", in, err)
		}
	}
}

func TestInWindow_Bounds(t *testing.T) {
	oldest, newest := reviewWindow(testNow)
	cases := []struct {
		daysAgo int
		want    bool
	}{
		{299, false},
		{300, true},
		{330, true},
		{365, true},
		{366, false},
	}
	for _, tc := range cases {
		d := testNow.Add(-time.Duration(tc.daysAgo) * 24 * time.Hour)
		if got := inWindow(d, oldest, newest); got != tc.want {
			t.Errorf("%d days ago: got %v want %v", tc.daysAgo, got, tc.want)
		}
	}
}

func TestFilterReviews(t *testing.T) {
	reviews := []review{
		{Author: "edge-new", Date: "300 days ago"},
		{Author: "too-new", Date: "299 days ago"},
		{Author: "edge-old", Date: "365 days ago"},
		{Author: "too-old", Date: "366 days ago"},
		{Author: "months", Date: "11 months ago"},
		{Author: "recent", Date: "2 months ago"},
		{Author: "garbage", Date: "sometime", Rating: "5", Content: "great"},
		{Author: "no-date", Rating: "5", Content: "great"},
	}

	kept := filterReviews(reviews, testNow, testNow)
	got := make([]string, 0, len(kept))
	for _, r := range kept {
		got = append(got, r.Author)
		if r.ParsedDate == nil {
			t.Errorf("%s: parsed date not set", r.Author)
		}
	}
	want := []string{"edge-new", "edge-old", "months"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilterReviews_PinnedAnchor(t *testing.T) {
	// A review posted on a fixed day is kept when the window is anchored
	// 10 months after it, whatever the current clock says.
	anchor := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	reviews := []review{{Author: "pinned", Date: "March 5, 2024"}}

	kept := filterReviews(reviews, testNow, anchor)
	if len(kept) != 1 {
		t.Fatalf("expected pinned review to be kept, got %d", len(kept))
	}
	if kept := filterReviews(reviews, testNow, testNow); len(kept) != 0 {
		t.Fatalf("expected review outside rolling window, got %d", len(kept))
	}
}

func TestParseReviewDate_OutOfRange(t *testing.T) {
	inputs := []string{
		"106762 months ago",
		"400000 months ago",
		"99999999 weeks ago",
		"999999999999 days ago",
		"99999999999999999999 months ago",
	}
	for _, in := range inputs {
		_, err := parseReviewDate(in, testNow)
		if !errors.Is(err, errUnrecognizedDate) {
			t.Errorf("%q: expected errUnrecognizedDate, got %v", in, err)
		}
	}

	// The largest representable month count still parses exactly.
	got, err := parseReviewDate("3558 months ago", testNow)
	if err != nil {
		t.Fatalf("3558 months ago: %v", err)
	}
	if want := testNow.Add(-3558 * 30 * 24 * time.Hour); !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	kept := filterReviews([]review{{Author: "wrapped", Date: "106762 months ago"}}, testNow, testNow)
	if len(kept) != 0 {
		t.Fatalf("out-of-range date must not be kept, got %+v", kept)
	}
}
