// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// urlPattern matches http/https URLs as a single greedy run of URL-ish
// characters or percent-encoded octets. `$-_` is a character range, not
// three literals: it spans 0x24-0x5F and so admits '/', ':', '?', '=',
// digits, and uppercase, which is what lets full path, port, and query
// URLs match. The class also admits trailing punctuation such as ',' and
// ')', so a comma or parenthesis immediately following a URL is captured
// as part of it. That looseness is intentional and covered by tests;
// tightening it would change reported URLs.
var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z0-9$-_@.&+!*(),]|%[0-9a-fA-F]{2})+`)

// numberPattern matches integers and decimals with an optional leading
// minus. The trailing digits are optional, so a bare "3." is a valid match.
var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

// FindURLs scans one page's text and returns the URLs found, deduplicated
// and in first-occurrence order.
func FindURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var urls []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			urls = append(urls, m)
		}
	}
	return urls
}

// FindNumbers scans one page's text and returns every numeric token in
// left-to-right order, not deduplicated. Tokens containing a decimal point
// parse as floats ("3." yields 3.0); all others parse as integers.
func FindNumbers(text string) []Number {
	matches := numberPattern.FindAllString(text, -1)
	var nums []Number
	for _, m := range matches {
		if m == "" {
			continue
		}
		if strings.Contains(m, ".") {
			f, err := strconv.ParseFloat(m, 64)
			if err != nil {
				continue
			}
			nums = append(nums, Number{Float: f, IsFloat: true})
			continue
		}
		i, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			// Integer overflow; keep the token as a float so it is
			// still counted rather than dropped.
			f, ferr := strconv.ParseFloat(m, 64)
			if ferr != nil {
				continue
			}
			nums = append(nums, Number{Float: f, IsFloat: true})
			continue
		}
		nums = append(nums, Number{Int: i})
	}
	return nums
}
