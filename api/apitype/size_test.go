package apitype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)
	type args struct {
		sourceWidth  int
		sourceHeight int
		targetWidth  int
		targetHeight int
	}
	tests := []struct {
		name   string
		args   args
		width  int
		height int
	}{
		{name: "100x100->100x100", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		// Downscale
		{name: "200x200->100x100", args: args{sourceWidth: 200, sourceHeight: 200, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		{name: "400x300->100x100", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 100}, width: 100, height: 75},
		{name: "400x300->100x50", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 50}, width: 66, height: 50},
		{name: "300x400->100x100", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 100}, width: 75, height: 100},
		{name: "300x400->100x50", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 50}, width: 37, height: 50},
		// Upscale
		{name: "100x100->200x200", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 200, targetHeight: 200}, width: 200, height: 200},
		{name: "40x30  ->400x400", args: args{sourceWidth: 40, sourceHeight: 30, targetWidth: 400, targetHeight: 400}, width: 400, height: 300},
		{name: "30x40  ->400x400", args: args{sourceWidth: 30, sourceHeight: 40, targetWidth: 400, targetHeight: 400}, width: 300, height: 400},
		{name: "30x40  ->400x100", args: args{sourceWidth: 30, sourceHeight: 40, targetWidth: 400, targetHeight: 100}, width: 75, height: 100},
		{name: "40x30  ->400x100", args: args{sourceWidth: 40, sourceHeight: 30, targetWidth: 400, targetHeight: 100}, width: 133, height: 100},
		// Print area
		{name: "100x100->1619x1087", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 1619, targetHeight: 1087}, width: 1087, height: 1087},
		{name: "149x100->1619x1087", args: args{sourceWidth: 149, sourceHeight: 100, targetWidth: 1619, targetHeight: 1087}, width: 1619, height: 1086},
		{name: "100x149->1087x1619", args: args{sourceWidth: 100, sourceHeight: 149, targetWidth: 1087, targetHeight: 1619}, width: 1086, height: 1619},
		{name: "3000x2013->1619x1087", args: args{sourceWidth: 3000, sourceHeight: 2013, targetWidth: 1619, targetHeight: 1087}, width: 1619, height: 1086},
		{name: "6000x10->1619x1087", args: args{sourceWidth: 6000, sourceHeight: 10, targetWidth: 1619, targetHeight: 1087}, width: 1619, height: 2},
		{name: "90000x1->1619x1087", args: args{sourceWidth: 90000, sourceHeight: 1, targetWidth: 1619, targetHeight: 1087}, width: 1619, height: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaleToFit(tt.args.sourceWidth, tt.args.sourceHeight, tt.args.targetWidth, tt.args.targetHeight)
			a.Equal(tt.width, w)
			a.Equal(tt.height, h)
		})
	}
}

func TestScaleToFit_NeverExceedsTarget(t *testing.T) {
	a := assert.New(t)

	for width := 1; width < 60; width += 7 {
		for height := 1; height < 60; height += 5 {
			w, h := ScaleToFit(width, height, 1619, 1087)
			a.LessOrEqual(w, 1619)
			a.LessOrEqual(h, 1087)
			a.True(w == 1619 || h == 1087, "%dx%d did not fill either axis", width, height)

			// Aspect ratio within one pixel of rounding
			a.InDelta(float64(width)/float64(height)*float64(h), float64(w), 1.0+float64(width)/float64(height))
		}
	}
}

func TestSizeOf(t *testing.T) {
	a := assert.New(t)
	type args struct {
		width  int
		height int
	}
	tests := []struct {
		name          string
		args          args
		width, height int
	}{
		{name: "Size", args: args{width: 200, height: 100}, width: 200, height: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeOf(tt.args.width, tt.args.height)
			a.Equal(tt.width, got.Width())
			a.Equal(tt.height, got.Height())
		})
	}
}

func TestSize_CenterIn(t *testing.T) {
	a := assert.New(t)

	a.Equal(342, SizeOf(1087, 1087).CenterIn(SizeOf(1771, 1181)).X)
	a.Equal(47, SizeOf(1087, 1087).CenterIn(SizeOf(1771, 1181)).Y)
	a.Equal(0, SizeOf(10, 10).CenterIn(SizeOf(11, 11)).X)
	a.Equal(-2, SizeOf(12, 12).CenterIn(SizeOf(9, 9)).X)
}

func TestSize_Shrink(t *testing.T) {
	a := assert.New(t)

	shrunk := SizeOf(1619, 1087).Shrink(354)
	a.Equal(911, shrunk.Width())
	a.Equal(379, shrunk.Height())
	a.True(shrunk.IsPositive())
	a.False(SizeOf(1619, 1087).Shrink(544).IsPositive())
}
