package video

// Framebuffer dimensions of the 160x144 LCD.
const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
)

// Shade is a 2-bit monochrome color (0-3) after palette mapping.
// 0 is the lightest shade, 3 the darkest. Mapping shades to actual
// display colors is left to the frontends.
type Shade = byte

// FrameBuffer holds one full frame as palette-mapped shades.
type FrameBuffer struct {
	buffer []byte
}

// NewFrameBuffer creates an empty 160x144 frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]byte, FramebufferWidth*FramebufferHeight),
	}
}

func (fb *FrameBuffer) GetPixel(x, y int) Shade {
	return fb.buffer[y*FramebufferWidth+x]
}

func (fb *FrameBuffer) SetPixel(x, y int, shade Shade) {
	fb.buffer[y*FramebufferWidth+x] = shade
}

// ToSlice exposes the underlying pixel data in row-major order.
// Callers must treat the slice as read-only.
func (fb *FrameBuffer) ToSlice() []byte {
	return fb.buffer
}

// Copy returns an independent snapshot of the frame.
func (fb *FrameBuffer) Copy() *FrameBuffer {
	clone := NewFrameBuffer()
	copy(clone.buffer, fb.buffer)
	return clone
}

// Fill sets every pixel to the given shade.
func (fb *FrameBuffer) Fill(shade Shade) {
	for i := range fb.buffer {
		fb.buffer[i] = shade
	}
}
