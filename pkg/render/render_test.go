package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 0xff}, hexColor("#ff4757"))
	assert.Equal(t, color.RGBA{R: 0x0f, G: 0x0f, B: 0x23, A: 0xff}, hexColor("#0F0F23"))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, hexColor("nope"))
}

func TestWithAlphaPremultiplied(t *testing.T) {
	c := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, c)
	assert.Equal(t, color.RGBA{}, withAlpha(c, -1))
}

func TestPlayerBlink(t *testing.T) {
	assert.True(t, PlayerVisible(false, 0))
	assert.False(t, PlayerVisible(true, 50*time.Millisecond))
	assert.True(t, PlayerVisible(true, 150*time.Millisecond))
	assert.False(t, PlayerVisible(true, 250*time.Millisecond))
}

func TestTouchControlsHitTest(t *testing.T) {
	tc := NewTouchControls()
	fire, skill := tc.Layout(800, 600)

	assert.Equal(t, TouchFire, tc.HitTest(800, 600, fire.CenterX(), fire.CenterY()))
	assert.Equal(t, TouchSkill, tc.HitTest(800, 600, skill.CenterX(), skill.CenterY()))
	assert.Equal(t, TouchNone, tc.HitTest(800, 600, 100, 100))
	assert.False(t, fire.Overlaps(skill))
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))))
	fsys := fstest.MapFS{
		ImagePlayer:     {Data: buf.Bytes()},
		ImageEnemyElite: {Data: []byte("not a png")},
	}

	img, err := decodeImage(fsys, ImagePlayer)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = decodeImage(fsys, ImageEnemyElite)
	assert.Error(t, err)
	_, err = decodeImage(fsys, ImageEnemyNormal)
	assert.Error(t, err)
	_, err = decodeImage(nil, ImagePlayer)
	assert.Error(t, err)
}

func TestResourceManagerFallbackIsPermanent(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil)

	assert.Nil(t, rm.Image(ImageEnemyNormal))
	assert.Nil(t, rm.Image(ImageEnemyNormal))
	assert.Len(t, rm.Failed(), 1)
}
