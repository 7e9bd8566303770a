package bcn

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// SurfaceRGBA8 is fully decoded 8-bit RGBA pixel data with the same
// layer and mipmap layout as Surface.
type SurfaceRGBA8 struct {
	Width, Height, Depth int
	Layers               int
	Mipmaps              int
	Data                 []uint8
}

// SurfaceRGBAF32 is fully decoded float RGBA pixel data with the same
// layer and mipmap layout as Surface.
type SurfaceRGBAF32 struct {
	Width, Height, Depth int
	Layers               int
	Mipmaps              int
	Data                 []float32
}

// Get returns the pixel range of one layer and mip level.
func (s *SurfaceRGBA8) Get(layer, mipmap int) ([]uint8, error) {
	offset, size, err := rgbaRange(s.Width, s.Height, s.Depth, s.Layers, s.Mipmaps, layer, mipmap)
	if err != nil {
		return nil, err
	}
	return s.Data[offset*4 : (offset+size)*4], nil
}

// Get returns the pixel range of one layer and mip level.
func (s *SurfaceRGBAF32) Get(layer, mipmap int) ([]float32, error) {
	offset, size, err := rgbaRange(s.Width, s.Height, s.Depth, s.Layers, s.Mipmaps, layer, mipmap)
	if err != nil {
		return nil, err
	}
	return s.Data[offset*4 : (offset+size)*4], nil
}

// rgbaRange returns the pixel offset and pixel count of a layer and mip
// level in a decoded surface.
func rgbaRange(width, height, depth, layers, mipmaps, layer, mipmap int) (offset, size int, err error) {
	if layer < 0 || layer >= layers || mipmap < 0 || mipmap >= mipmaps {
		return 0, 0, newError(ErrMipmapOutOfBounds,
			fmt.Sprintf("bcn: layer %d mipmap %d outside surface with %d layers and %d mipmaps",
				layer, mipmap, layers, mipmaps))
	}
	layerSize := 0
	for m := 0; m < mipmaps; m++ {
		n := MipDimension(width, m) * MipDimension(height, m) * MipDimension(depth, m)
		if m < mipmap {
			offset += n
		}
		layerSize += n
	}
	offset += layer * layerSize
	size = MipDimension(width, mipmap) * MipDimension(height, mipmap) * MipDimension(depth, mipmap)
	return offset, size, nil
}

// DecodeSurfaceRGBA8 decodes every layer and mip level of a surface to
// 8-bit RGBA pixels.
func DecodeSurfaceRGBA8(s *Surface, opts *DecodeOptions) (*SurfaceRGBA8, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := &SurfaceRGBA8{
		Width:   s.Width,
		Height:  s.Height,
		Depth:   s.Depth,
		Layers:  s.Layers,
		Mipmaps: s.Mipmaps,
	}
	total := 0
	for l := 0; l < s.Layers; l++ {
		for m := 0; m < s.Mipmaps; m++ {
			n := MipDimension(s.Width, m) * MipDimension(s.Height, m) * MipDimension(s.Depth, m)
			total += n
		}
	}
	out.Data = make([]uint8, total*4)

	for l := 0; l < s.Layers; l++ {
		for m := 0; m < s.Mipmaps; m++ {
			src, err := s.Get(l, m)
			if err != nil {
				return nil, err
			}
			dst, err := out.Get(l, m)
			if err != nil {
				return nil, err
			}
			w := MipDimension(s.Width, m)
			h := MipDimension(s.Height, m)
			d := MipDimension(s.Depth, m)
			if s.Format.IsCompressed() {
				err = decodeBlocksRGBA8(s.Format, src, w, h, d, dst, opts)
			} else {
				err = decodePixelsRGBA8(s.Format, src, dst)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// DecodeSurfaceRGBAF32 decodes every layer and mip level of a surface
// to float RGBA pixels.
func DecodeSurfaceRGBAF32(s *Surface, opts *DecodeOptions) (*SurfaceRGBAF32, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := &SurfaceRGBAF32{
		Width:   s.Width,
		Height:  s.Height,
		Depth:   s.Depth,
		Layers:  s.Layers,
		Mipmaps: s.Mipmaps,
	}
	total := 0
	for l := 0; l < s.Layers; l++ {
		for m := 0; m < s.Mipmaps; m++ {
			total += MipDimension(s.Width, m) * MipDimension(s.Height, m) * MipDimension(s.Depth, m)
		}
	}
	out.Data = make([]float32, total*4)

	for l := 0; l < s.Layers; l++ {
		for m := 0; m < s.Mipmaps; m++ {
			src, err := s.Get(l, m)
			if err != nil {
				return nil, err
			}
			dst, err := out.Get(l, m)
			if err != nil {
				return nil, err
			}
			w := MipDimension(s.Width, m)
			h := MipDimension(s.Height, m)
			d := MipDimension(s.Depth, m)
			if s.Format.IsCompressed() {
				err = decodeBlocksRGBAF32(s.Format, src, w, h, d, dst, opts)
			} else {
				err = decodePixelsRGBAF32(s.Format, src, dst)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// putRGBA8Block copies a decoded tile into the pixel buffer, truncating
// at the right and bottom edges of partial blocks.
func putRGBA8Block(dst []uint8, width, height int, x0, y0 int, tile *TileRGBA8) {
	for y := 0; y < blockHeight && y0+y < height; y++ {
		row := ((y0+y)*width + x0) * 4
		n := blockWidth
		if x0+n > width {
			n = width - x0
		}
		copy(dst[row:row+n*4], tile[y*blockWidth*4:(y*blockWidth+n)*4])
	}
}

func putRGBAF32Block(dst []float32, width, height int, x0, y0 int, tile *TileRGBAF32) {
	for y := 0; y < blockHeight && y0+y < height; y++ {
		row := ((y0+y)*width + x0) * 4
		n := blockWidth
		if x0+n > width {
			n = width - x0
		}
		copy(dst[row:row+n*4], tile[y*blockWidth*4:(y*blockWidth+n)*4])
	}
}

// decodeBlocksRGBA8 expands one mip level's block data into pixels.
// Blocks are independent, so large levels decode across GOMAXPROCS
// goroutines with a shared atomic cursor.
func decodeBlocksRGBA8(format Format, src []byte, width, height, depth int, dst []uint8, opts *DecodeOptions) error {
	blocksX := divRoundUp(width, blockWidth)
	blocksY := divRoundUp(height, blockHeight)
	blockSize := format.BlockSizeInBytes()
	totalBlocks := blocksX * blocksY * depth

	if len(src) < totalBlocks*blockSize {
		return newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: mip level needs %d bytes, got %d", totalBlocks*blockSize, len(src)))
	}

	sliceSize := width * height * 4

	decodeOne := func(idx int) error {
		z := idx / (blocksX * blocksY)
		rem := idx % (blocksX * blocksY)
		by := rem / blocksX
		bx := rem % blocksX

		tile, err := DecodeBlockRGBA8(format, src[idx*blockSize:(idx+1)*blockSize], opts)
		if err != nil {
			return err
		}
		putRGBA8Block(dst[z*sliceSize:], width, height, bx*blockWidth, by*blockHeight, &tile)
		return nil
	}

	procs := runtime.GOMAXPROCS(0)
	if procs > totalBlocks {
		procs = totalBlocks
	}

	// Small levels are faster to decode sequentially.
	if procs <= 1 || totalBlocks < 32 {
		for idx := 0; idx < totalBlocks; idx++ {
			if err := decodeOne(idx); err != nil {
				return err
			}
		}
		return nil
	}

	var next uint32
	var stop uint32
	var firstErr error
	var errOnce sync.Once

	var wg sync.WaitGroup
	wg.Add(procs)
	for w := 0; w < procs; w++ {
		go func() {
			defer wg.Done()
			for {
				if atomic.LoadUint32(&stop) != 0 {
					return
				}
				idx := int(atomic.AddUint32(&next, 1) - 1)
				if idx >= totalBlocks {
					return
				}
				if err := decodeOne(idx); err != nil {
					errOnce.Do(func() {
						firstErr = err
						atomic.StoreUint32(&stop, 1)
					})
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func decodeBlocksRGBAF32(format Format, src []byte, width, height, depth int, dst []float32, opts *DecodeOptions) error {
	blocksX := divRoundUp(width, blockWidth)
	blocksY := divRoundUp(height, blockHeight)
	blockSize := format.BlockSizeInBytes()
	totalBlocks := blocksX * blocksY * depth

	if len(src) < totalBlocks*blockSize {
		return newError(ErrNotEnoughData,
			fmt.Sprintf("bcn: mip level needs %d bytes, got %d", totalBlocks*blockSize, len(src)))
	}

	sliceSize := width * height * 4

	for idx := 0; idx < totalBlocks; idx++ {
		z := idx / (blocksX * blocksY)
		rem := idx % (blocksX * blocksY)
		by := rem / blocksX
		bx := rem % blocksX

		tile, err := DecodeBlockRGBAF32(format, src[idx*blockSize:(idx+1)*blockSize], opts)
		if err != nil {
			return err
		}
		putRGBAF32Block(dst[z*sliceSize:], width, height, bx*blockWidth, by*blockHeight, &tile)
	}
	return nil
}
