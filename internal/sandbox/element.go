package sandbox

import (
	"fmt"
	"image/color"
	"strings"
)

// Element identifies the substance occupying a cell.
type Element uint8

const (
	Air Element = iota
	Sand
	Rock
	Wood
	Iron
	Rust
	Water
	Acid
	Oil
	Lava
	Fire
	Ash
	Smoke
	Life
	Plant
	Drain
	WaterSource
	AcidSource
	OilSource
	LavaSource
	FireSource
	Indestructible
)

const elementCount = int(Indestructible) + 1

// Form classifies how an element participates in the physics rules.
type Form uint8

const (
	FormSolid Form = iota
	FormLiquid
	FormGas
	FormSpecial
)

// properties is one row of the static element catalog.
type properties struct {
	name     string
	form     Form
	strength uint8
	// colorVariance > 0 draws a fresh random variant on placement and scales
	// how strongly the variant shades the base color.
	colorVariance float64
	burns         bool
	causesRust    bool
	growsPlant    bool
	dissolves     bool
	color         color.NRGBA
}

var catalog = [elementCount]properties{
	Air:            {name: "air", form: FormGas, color: color.NRGBA{R: 8, G: 8, B: 12, A: 255}},
	Sand:           {name: "sand", form: FormSolid, strength: 8, colorVariance: 0.25, dissolves: true, color: color.NRGBA{R: 215, G: 186, B: 125, A: 255}},
	Rock:           {name: "rock", form: FormSolid, strength: 32, colorVariance: 0.15, color: color.NRGBA{R: 130, G: 130, B: 130, A: 255}},
	Wood:           {name: "wood", form: FormSolid, strength: 16, colorVariance: 0.1, burns: true, dissolves: true, color: color.NRGBA{R: 98, G: 66, B: 34, A: 255}},
	Iron:           {name: "iron", form: FormSolid, strength: 64, colorVariance: 0.05, dissolves: true, color: color.NRGBA{R: 160, G: 162, B: 172, A: 255}},
	Rust:           {name: "rust", form: FormSolid, strength: 8, colorVariance: 0.2, dissolves: true, color: color.NRGBA{R: 150, G: 82, B: 42, A: 255}},
	Water:          {name: "water", form: FormLiquid, strength: 8, colorVariance: 0.15, causesRust: true, growsPlant: true, color: color.NRGBA{R: 40, G: 100, B: 220, A: 255}},
	Acid:           {name: "acid", form: FormLiquid, strength: 16, colorVariance: 0.2, causesRust: true, color: color.NRGBA{R: 120, G: 220, B: 60, A: 255}},
	Oil:            {name: "oil", form: FormLiquid, strength: 8, colorVariance: 0.1, burns: true, color: color.NRGBA{R: 64, G: 52, B: 42, A: 255}},
	Lava:           {name: "lava", form: FormLiquid, strength: 128, colorVariance: 0.3, color: color.NRGBA{R: 255, G: 90, B: 40, A: 255}},
	Fire:           {name: "fire", form: FormGas, strength: 24, colorVariance: 0.5, color: color.NRGBA{R: 255, G: 150, B: 40, A: 255}},
	Ash:            {name: "ash", form: FormSolid, strength: 8, colorVariance: 0.2, dissolves: true, color: color.NRGBA{R: 110, G: 110, B: 100, A: 255}},
	Smoke:          {name: "smoke", form: FormGas, strength: 32, colorVariance: 0.3, color: color.NRGBA{R: 90, G: 90, B: 94, A: 255}},
	Life:           {name: "life", form: FormSolid, strength: 8, color: color.NRGBA{R: 0, G: 220, B: 120, A: 255}},
	Plant:          {name: "plant", form: FormSolid, strength: 8, colorVariance: 0.2, burns: true, dissolves: true, color: color.NRGBA{R: 30, G: 160, B: 50, A: 255}},
	Drain:          {name: "drain", form: FormSpecial, strength: 8, color: color.NRGBA{R: 40, G: 40, B: 60, A: 255}},
	WaterSource:    {name: "water-source", form: FormSpecial, strength: 8, color: color.NRGBA{R: 110, G: 160, B: 255, A: 255}},
	AcidSource:     {name: "acid-source", form: FormSpecial, strength: 8, color: color.NRGBA{R: 180, G: 255, B: 120, A: 255}},
	OilSource:      {name: "oil-source", form: FormSpecial, strength: 8, color: color.NRGBA{R: 110, G: 92, B: 78, A: 255}},
	LavaSource:     {name: "lava-source", form: FormSpecial, strength: 8, color: color.NRGBA{R: 255, G: 140, B: 90, A: 255}},
	FireSource:     {name: "fire-source", form: FormSpecial, strength: 8, color: color.NRGBA{R: 255, G: 190, B: 90, A: 255}},
	Indestructible: {name: "indestructible", form: FormSpecial, strength: 255, color: color.NRGBA{R: 64, G: 64, B: 64, A: 255}},
}

func (e Element) props() *properties {
	if int(e) >= elementCount {
		return &catalog[Air]
	}
	return &catalog[e]
}

// String returns the lower-case catalog name of the element.
func (e Element) String() string { return e.props().name }

// Form reports whether the element behaves as a solid, liquid, gas or special.
func (e Element) Form() Form { return e.props().form }

// InitialStrength is the strength a freshly placed cell of this element gets.
func (e Element) InitialStrength() uint8 { return e.props().strength }

// ColorVariance reports how strongly the cell variant shades the base color.
// A value above zero also makes SetElement draw a fresh random variant.
func (e Element) ColorVariance() float64 { return e.props().colorVariance }

// Burns reports whether fire and lava can ignite this element.
func (e Element) Burns() bool { return e.props().burns }

// CausesRust reports whether contact with this element corrodes iron.
func (e Element) CausesRust() bool { return e.props().causesRust }

// GrowsPlant reports whether a plant can claim this element.
func (e Element) GrowsPlant() bool { return e.props().growsPlant }

// DissolvesInAcid reports whether acid eats through this element.
func (e Element) DissolvesInAcid() bool { return e.props().dissolves }

// Color is the base display color, before variant shading.
func (e Element) Color() color.NRGBA { return e.props().color }

// IsSource reports whether the element is one of the emitting source kinds.
func (e Element) IsSource() bool {
	return e >= WaterSource && e <= FireSource
}

// Emits returns the element a source kind spawns below itself.
func (e Element) Emits() Element {
	switch e {
	case WaterSource:
		return Water
	case AcidSource:
		return Acid
	case OilSource:
		return Oil
	case LavaSource:
		return Lava
	case FireSource:
		return Fire
	default:
		return Air
	}
}

// Elements lists every element kind in catalog order.
func Elements() []Element {
	all := make([]Element, elementCount)
	for i := range all {
		all[i] = Element(i)
	}
	return all
}

// ParseElement resolves a catalog name (case-insensitive) to an element.
func ParseElement(name string) (Element, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := 0; i < elementCount; i++ {
		if catalog[i].name == needle {
			return Element(i), nil
		}
	}
	return Air, fmt.Errorf("unknown element %q", name)
}
