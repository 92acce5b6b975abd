package render

import (
	"fmt"
	"strconv"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

// measurement iterates the four supported measures in fixed order: height,
// width and thickness in millimeters, weight in grams. Absent values are
// skipped; map products additionally report their scale.
func (r *batch) measurement(p *product.Product) {
	if !p.Kind.Measurable() {
		return
	}

	measures := []struct {
		value    *int
		typeCode string
		unitCode string
		label    string
	}{
		{p.Height, dict.MeasureHeight, dict.UnitMillimeters, "Height"},
		{p.Width, dict.MeasureWidth, dict.UnitMillimeters, "Width"},
		{p.Thickness, dict.MeasureThickness, dict.UnitMillimeters, "Thickness"},
		{p.Weight, dict.MeasureUnitWeight, dict.UnitGrams, "Weight"},
	}

	for _, m := range measures {
		if m.value == nil {
			continue
		}
		value := *m.value
		r.b.Block("Measure", func() {
			r.comment(fmt.Sprintf("%s: %d%s", m.label, value, m.unitCode), KindMeasurement)
			r.b.Text("MeasureType", m.typeCode)
			r.b.Text("Measurement", strconv.Itoa(value))
			r.b.Text("MeasureUnitCode", m.unitCode)
		})
	}

	if p.Kind == product.KindMap && p.MapScale != nil {
		r.comment("Map scale - map products only", KindMeasurement)
		r.b.Text("MapScale", strconv.Itoa(*p.MapScale))
	}
}
