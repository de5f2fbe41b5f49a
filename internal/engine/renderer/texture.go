package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deskscene/internal/engine/texture"
)

// UploadTexture creates a mipmapped 2D texture with repeat wrapping and
// linear filtering. Images are bottom row first, matching GL.
func (r *Renderer) UploadTexture(img *texture.Image) (uint32, error) {
	var internal int32
	var format uint32
	switch img.Channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("%d channels: %w", img.Channels, texture.ErrUnsupportedChannels)
	}

	// Create texture object
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Wrap and filter parameters
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// Generate mipmaps
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.textures[id] = true
	return id, nil
}

// BindTextures binds slot i to texture unit i.
func (r *Renderer) BindTextures(slots []texture.Slot) {
	for i, s := range slots {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, s.ID)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// DeleteTexture releases a texture created by UploadTexture.
func (r *Renderer) DeleteTexture(id uint32) {
	if !r.textures[id] {
		return
	}
	gl.DeleteTextures(1, &id)
	delete(r.textures, id)
}
