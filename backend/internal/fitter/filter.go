package fitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

const DefaultFilter = "nearest"

var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"lanczos":    imaging.Lanczos,
}

// FilterByName resolves a resampling filter. Names are case insensitive
// and an empty name is the nearest neighbor default.
func FilterByName(name string) (imaging.ResampleFilter, error) {
	if name == "" {
		name = DefaultFilter
	}
	if filter, ok := filters[strings.ToLower(strings.ReplaceAll(name, "-", ""))]; ok {
		return filter, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("unknown resampling filter '%s', expected one of %s",
		name, strings.Join(FilterNames(), ", "))
}

func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
