package buffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
	"github.com/zhijia2/DancingLogo/internal/engine/gpu/gputest"
	"github.com/zhijia2/DancingLogo/internal/scene"
)

func TestUpload(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)

	mesh := scene.GenerateLogo(2)
	require.NoError(t, s.Upload(mesh))

	assert.Equal(t, int32(30), s.Count())
	assert.Zero(t, dev.BoundVAO, "vertex array left unbound")
	assert.Zero(t, dev.BoundBuffer)

	pos := dev.Buffers[s.positionVBO]
	col := dev.Buffers[s.colorVBO]
	assert.Equal(t, mesh.Positions, pos.Data)
	assert.Equal(t, gpu.DynamicDraw, pos.Usage)
	assert.Equal(t, mesh.Colors, col.Data)
	assert.Equal(t, gpu.StaticDraw, col.Usage)

	assert.Equal(t, gputest.Pointer{Buffer: s.positionVBO, Size: 3}, dev.Pointers[0])
	assert.Equal(t, gputest.Pointer{Buffer: s.colorVBO, Size: 4}, dev.Pointers[1])
	assert.True(t, dev.Enabled[0])
	assert.True(t, dev.Enabled[1])
}

func TestUploadReusesObjects(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)
	live := dev.Live()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Upload(scene.GenerateLogo(float64(i))))
	}
	assert.Equal(t, live, dev.Live(), "no objects allocated per upload")
	assert.Equal(t, 5, dev.Buffers[s.positionVBO].Uploads)
}

func TestCountFollowsSceneSwitch(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)

	require.NoError(t, s.Upload(scene.GenerateLogo(0)))
	assert.Equal(t, int32(30), s.Count())

	require.NoError(t, s.Upload(scene.GenerateTree(0)))
	assert.Equal(t, int32(21), s.Count())

	err := s.Bound(func(count int32) error {
		dev.DrawTriangles(0, count)
		return nil
	})
	require.NoError(t, err)

	draw, ok := dev.LastDraw()
	require.True(t, ok)
	assert.Equal(t, int32(21), draw.Count)
	assert.Equal(t, s.vao, draw.VAO)
}

func TestUploadRejectsBadLayout(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)
	require.NoError(t, s.Upload(scene.GenerateTree(0)))

	err := s.Upload(scene.Mesh{Positions: make([]float32, 6), Colors: make([]float32, 4)})
	assert.Error(t, err)
	assert.Equal(t, int32(21), s.Count(), "count untouched by a rejected upload")
	assert.Zero(t, dev.BoundVAO)
}

func TestBoundUnbindsOnError(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)
	boom := errors.New("boom")

	var boundDuring uint32
	err := s.Bound(func(int32) error {
		boundDuring = dev.BoundVAO
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, s.vao, boundDuring)
	assert.Zero(t, dev.BoundVAO)
}

func TestDelete(t *testing.T) {
	dev := gputest.New()
	s := New(dev, 0, 1)
	s.Delete()
	assert.Zero(t, dev.Live())
	s.Delete()
}
