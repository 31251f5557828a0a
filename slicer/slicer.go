// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicer

// StringExists checks if the given string exists in the string slice.
// If it exists, the position and a boolean `true` will return
func StringExists(slice []string, search string) (int, bool) {
	for i, s := range slice {
		if s == search {
			return i, true
		}
	}
	return 0, false
}

// StringDuplicates returns every string which occurs more than once, in the order of the second occurrence.
func StringDuplicates(slice []string) []string {
	seen := make(map[string]int, len(slice))
	var rv []string
	for _, entry := range slice {
		seen[entry]++
		if seen[entry] == 2 {
			rv = append(rv, entry)
		}
	}
	return rv
}
