package rotplot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteCycles(t *testing.T) {
	a := assert.New(t)

	p := NewPalette()
	l := p.Len()
	a.Equal(10, l)

	var got []string
	for i := 0; i < 3*l+2; i++ {
		got = append(got, p.Select())
	}

	for i := 0; i < len(got); i += l {
		a.Equal("tab:blue", got[i])
	}
	a.Equal(TableauColours(), got[:l])
	a.Equal(got[:l], got[l:2*l])
	a.Equal([]string{"tab:blue", "tab:orange"}, got[3*l:])
}

func TestPaletteResetsWhenExhausted(t *testing.T) {
	a := assert.New(t)

	p := NewPalette("k", "m")
	a.Equal("k", p.Select())
	a.Equal([]string{"m"}, p.Remaining())
	a.Equal("m", p.Select())
	a.Equal([]string{"k", "m"}, p.Remaining())

	single := NewPalette("r")
	for i := 0; i < 3; i++ {
		a.Equal("r", single.Select())
	}
}

func TestZeroPalette(t *testing.T) {
	a := assert.New(t)

	var p Palette
	a.Equal("tab:blue", p.Select())
	a.Equal(10, p.Len())
	a.Equal(TableauColours()[1:], p.Remaining())
}

func TestPaletteCopiesNames(t *testing.T) {
	names := []string{"r", "g"}
	p := NewPalette(names...)
	names[0] = "b"

	assert.Equal(t, "r", p.Select())
}

func TestParseColour(t *testing.T) {
	a := assert.New(t)

	c, err := ParseColour("r")
	require.NoError(t, err)
	a.Equal(color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(c))

	c, err = ParseColour("tab:blue")
	require.NoError(t, err)
	a.Equal(color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, color.RGBAModel.Convert(c))

	_, err = ParseColour("#00ff00")
	a.NoError(err)

	_, err = ParseColour("chartreuse-ish")
	a.ErrorIs(err, ErrUnknownColour)

	_, err = ParseColour("#zz")
	a.ErrorIs(err, ErrUnknownColour)
}
