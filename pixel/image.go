// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixel

import (
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/geom"
)

// Data is a stride-aware view over pixel storage: a flat slice of T
// components addressed as Size.Height rows of Size.Width pixels, each
// Components wide, with Stride components between the start of one row and
// the next. Unlike the original's byte-stride-over-raw-pointer design, the
// stride here is counted in elements of T so the view stays a plain typed
// Go slice — no unsafe.Pointer arithmetic needed to walk rows.
type Data[T Component] struct {
	Pixels     []T
	Size       geom.SizeOf[int]
	Stride     int
	Components int
}

// NewData allocates a tightly packed (Stride == Size.Width*components)
// [Data] view of the given size.
func NewData[T Component](size geom.SizeOf[int], components int) Data[T] {
	stride := size.Width * components
	return Data[T]{
		Pixels:     make([]T, size.Height*stride),
		Size:       size,
		Stride:     stride,
		Components: components,
	}
}

// Line returns the slice of components making up row y.
func (d Data[T]) Line(y int) []T {
	start := y * d.Stride
	return d.Pixels[start : start+d.MemoryWidth()]
}

// Pixel returns the slice of Components components at (x, y).
func (d Data[T]) Pixel(x, y int) []T {
	line := d.Line(y)
	start := x * d.Components
	return line[start : start+d.Components]
}

// MemoryWidth returns the number of live components per row (Size.Width *
// Components), which may be less than Stride if rows are padded.
func (d Data[T]) MemoryWidth() int { return d.Size.Width * d.Components }

// Area returns Size.Width * Size.Height.
func (d Data[T]) Area() int { return d.Size.Area() }

// Subrect returns the view of d restricted to rect, which must lie within
// d's bounds.
func (d Data[T]) Subrect(rect geom.RectangleOf[int]) (Data[T], error) {
	bounds := geom.RectFromPosSize(geom.Pt(0, 0), d.Size)
	if rect.Intersection(bounds) != rect {
		return Data[T]{}, errors.NewRange("pixel.Data.Subrect", "rectangle %v outside image bounds %v", rect, bounds)
	}
	size := rect.Size()
	sub := Data[T]{Size: size, Stride: d.Stride, Components: d.Components}
	sub.Pixels = d.Pixels[rect.Min.Y*d.Stride+rect.Min.X*d.Components:]
	return sub, nil
}

// CopyFrom copies src into d row by row; src and d must have equal Size and
// Components.
func (d Data[T]) CopyFrom(src Data[T]) error {
	if src.Size != d.Size {
		return errors.NewArgument("pixel.Data.CopyFrom", "source size %v does not match destination size %v", src.Size, d.Size)
	}
	if src.Components != d.Components {
		return errors.NewArgument("pixel.Data.CopyFrom", "source components %d does not match destination components %d", src.Components, d.Components)
	}
	w := d.MemoryWidth()
	for y := 0; y < d.Size.Height; y++ {
		copy(d.Line(y)[:w], src.Line(y)[:w])
	}
	return nil
}

// Clear sets every pixel in d to value, which must have len(value) ==
// d.Components.
func (d Data[T]) Clear(value []T) {
	for y := 0; y < d.Size.Height; y++ {
		line := d.Line(y)
		for x := 0; x < d.Size.Width; x++ {
			copy(line[x*d.Components:x*d.Components+d.Components], value)
		}
	}
}

// Backend is the pluggable GPU-side strategy an [Image] optionally carries.
// Begin is called before CPU mapping so the backend can copy fresh data
// down from the GPU; End is called after, so the backend can copy written
// data back up.
type Backend interface {
	Begin(mode AccessMode, rect geom.RectangleOf[int])
	End(mode AccessMode, rect geom.RectangleOf[int])
}

// AccessMode says how a mapped region of an [Image] will be used.
type AccessMode uint8

const (
	AccessRead AccessMode = iota
	AccessWrite
	AccessReadWrite
)

// Image owns (or references) pixel storage of component type T, tagged
// with a runtime [Type] and [Format], with an optional GPU [Backend].
type Image[T Component] struct {
	data    Data[T]
	typ     Type
	format  Format
	backend Backend
}

// New allocates an Image of the given size, component type, and channel
// format.
func New[T Component](size geom.SizeOf[int], typ Type, format Format) (*Image[T], error) {
	if err := validate(typ, format); err != nil {
		return nil, err
	}
	return &Image[T]{data: NewData[T](size, format.Components()), typ: typ, format: format}, nil
}

// Wrap builds an Image over caller-owned storage without copying; the
// caller is responsible for pixels' lifetime.
func Wrap[T Component](pixels []T, size geom.SizeOf[int], stride int, typ Type, format Format) (*Image[T], error) {
	if err := validate(typ, format); err != nil {
		return nil, err
	}
	components := format.Components()
	if stride < size.Width*components {
		return nil, errors.NewArgument("pixel.Wrap", "stride %d too small for width %d with %d components", stride, size.Width, components)
	}
	return &Image[T]{
		data:   Data[T]{Pixels: pixels, Size: size, Stride: stride, Components: components},
		typ:    typ,
		format: format,
	}, nil
}

func validate(typ Type, format Format) error {
	if typ == UnknownType || typ.Size() == 0 {
		return errors.NewImage("pixel.validate", "unsupported pixel type %v", typ)
	}
	if format != Raw && (format == UnknownFormat || format.Components() == 0) {
		return errors.NewImage("pixel.validate", "unsupported pixel format %v", format)
	}
	return nil
}

// SetBackend installs img's GPU-side strategy, replacing any previous one.
func (img *Image[T]) SetBackend(b Backend) { img.backend = b }

// Size returns img's pixel dimensions.
func (img *Image[T]) Size() geom.SizeOf[int] { return img.data.Size }

// Bounds returns the rectangle {0,0}-{Size}.
func (img *Image[T]) Bounds() geom.RectangleOf[int] {
	return geom.RectFromPosSize(geom.Pt(0, 0), img.data.Size)
}

// Type returns img's component storage type.
func (img *Image[T]) Type() Type { return img.typ }

// Format returns img's channel layout.
func (img *Image[T]) Format() Format { return img.format }

// IsLinear reports whether img's samples are linear light (everything
// except [U8Gamma]).
func (img *Image[T]) IsLinear() bool { return img.typ != U8Gamma }

// Data returns a view over img's entire backing storage, bypassing the
// GPU-backend Begin/End hooks — callers that need those should use [Map].
func (img *Image[T]) Data() Data[T] { return img.data }

// Access is a scoped mapped-region handle produced by [Image.Map]. It must
// be released with [Access.Commit] once the caller is done reading or
// writing, mirroring the original's RAII destructor-commits-on-scope-exit;
// Go has no destructors, so the caller is responsible for the matching
// call (typically via defer).
type Access[T Component] struct {
	img       *Image[T]
	data      Data[T]
	mode      AccessMode
	rect      geom.RectangleOf[int]
	committed bool
}

// Map begins a mapped access to rect of img in mode, invoking the backend's
// Begin hook first if a backend is installed.
func (img *Image[T]) Map(mode AccessMode, rect geom.RectangleOf[int]) (*Access[T], error) {
	sub, err := img.data.Subrect(rect)
	if err != nil {
		return nil, err
	}
	if img.backend != nil {
		img.backend.Begin(mode, rect)
	}
	return &Access[T]{img: img, data: sub, mode: mode, rect: rect}, nil
}

// MapAll is [Image.Map] over img's full bounds.
func (img *Image[T]) MapAll(mode AccessMode) (*Access[T], error) {
	return img.Map(mode, img.Bounds())
}

// Data returns the mapped region's pixel view.
func (a *Access[T]) Data() Data[T] { return a.data }

// Mode returns the access mode this region was mapped with.
func (a *Access[T]) Mode() AccessMode { return a.mode }

// Clear fills the mapped region with value; requires a write-capable mode.
func (a *Access[T]) Clear(value []T) {
	a.data.Clear(value)
}

// CopyFrom copies src's mapped region into a's; requires a write-capable
// mode and equal sizes.
func (a *Access[T]) CopyFrom(src *Access[T]) error {
	return a.data.CopyFrom(src.data)
}

// Commit releases the mapped region, invoking the backend's End hook if a
// backend is installed. Commit must be called exactly once per [Access];
// calling it more than once is a no-op.
func (a *Access[T]) Commit() {
	if a.committed {
		return
	}
	a.committed = true
	if a.img.backend != nil {
		a.img.backend.End(a.mode, a.rect)
	}
}
