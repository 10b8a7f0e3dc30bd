package colors

import "sort"

// ColorCount pairs a color with its occurrence count.
type ColorCount struct {
	Color RGB `json:"color"`
	Count int `json:"count"`
}

// Stats summarizes color usage across a pixel sequence.
type Stats struct {
	TotalPixels       int          `json:"total_pixels"`
	UniqueColors      int          `json:"unique_colors"`
	MostCommon        []ColorCount `json:"most_common"`
	AverageBrightness float64      `json:"average_brightness"`
}

// PaletteStats computes usage statistics over decoded pixel data: total and
// unique color counts, the ten most common colors, and average brightness.
func PaletteStats(pixels []RGB) Stats {
	if len(pixels) == 0 {
		return Stats{MostCommon: []ColorCount{}}
	}

	counts := make(map[RGB]int)
	var brightnessSum float64
	for _, p := range pixels {
		counts[p]++
		brightnessSum += luminance(p)
	}

	mostCommon := make([]ColorCount, 0, len(counts))
	for c, n := range counts {
		mostCommon = append(mostCommon, ColorCount{Color: c, Count: n})
	}
	sort.Slice(mostCommon, func(i, j int) bool {
		if mostCommon[i].Count != mostCommon[j].Count {
			return mostCommon[i].Count > mostCommon[j].Count
		}
		return lessRGB(mostCommon[i].Color, mostCommon[j].Color)
	})
	if len(mostCommon) > 10 {
		mostCommon = mostCommon[:10]
	}

	return Stats{
		TotalPixels:       len(pixels),
		UniqueColors:      len(counts),
		MostCommon:        mostCommon,
		AverageBrightness: brightnessSum / float64(len(pixels)),
	}
}

// ExtractPalette returns the unique colors in the pixel sequence, sorted by
// brightness ascending and truncated to maxColors.
func ExtractPalette(pixels []RGB, maxColors int) []RGB {
	seen := make(map[RGB]bool)
	unique := []RGB{}
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}

	sort.Slice(unique, func(i, j int) bool {
		bi, bj := luminance(unique[i]), luminance(unique[j])
		if bi != bj {
			return bi < bj
		}
		return lessRGB(unique[i], unique[j])
	})

	if maxColors >= 0 && len(unique) > maxColors {
		unique = unique[:maxColors]
	}
	return unique
}

// Diversity returns the ratio of unique colors to total pixels (0.0..1.0).
func Diversity(pixels []RGB) float64 {
	if len(pixels) == 0 {
		return 0.0
	}
	seen := make(map[RGB]bool, len(pixels))
	for _, p := range pixels {
		seen[p] = true
	}
	return float64(len(seen)) / float64(len(pixels))
}

func lessRGB(a, b RGB) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
